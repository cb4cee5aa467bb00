package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Workers returns the goroutine count used by the loaders and trainers.
// Physical cores are preferred over hyperthreads for the float-heavy loops.
func Workers() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
