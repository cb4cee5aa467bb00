package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	const n = 1000
	var seen [n]int32
	ForEach(n, 7, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestForEachRespectsLimit(t *testing.T) {
	var active, peak int32
	ForEach(200, 4, func(i int) {
		cur := atomic.AddInt32(&active, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		atomic.AddInt32(&active, -1)
	})
	if p := atomic.LoadInt32(&peak); p > 4 {
		t.Errorf("observed %d concurrent bodies, limit was 4", p)
	}
}

func TestForEachEdgeCases(t *testing.T) {
	var count int32
	ForEach(0, 8, func(i int) { atomic.AddInt32(&count, 1) })
	if count != 0 {
		t.Errorf("zero length ran %d bodies", count)
	}
	ForEach(5, -1, func(i int) { atomic.AddInt32(&count, 1) })
	if count != 5 {
		t.Errorf("negative limit ran %d of 5 bodies", count)
	}
	ForEach(3, 100, func(i int) { atomic.AddInt32(&count, 1) })
	if count != 8 {
		t.Errorf("limit above length ran %d of 3 extra bodies", count-5)
	}
}

func TestWorkersPositive(t *testing.T) {
	if Workers() < 1 {
		t.Fatal("Workers returned less than 1")
	}
}
