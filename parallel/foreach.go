package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Indices from 0 to length are fed to a fixed pool of limit workers.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 0 {
		limit = 1
	}
	if limit > length {
		limit = length
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				body(i)
			}
		}()
	}
	for i := 0; i < length; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()
}
