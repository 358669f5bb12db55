// Package parallel provides a minimal fork-join helper for splitting an
// index range across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Execute splits [0, n) into contiguous chunks and runs work on each chunk
// concurrently, returning once every chunk has finished. maxTasks caps the
// number of goroutines; omitted or non-positive values mean
// runtime.GOMAXPROCS(0).
func Execute(n int, work func(start, end int), maxTasks ...int) {
	if n <= 0 {
		return
	}
	tasks := runtime.GOMAXPROCS(0)
	if len(maxTasks) > 0 && maxTasks[0] > 0 {
		tasks = maxTasks[0]
	}
	if tasks > n {
		tasks = n
	}
	if tasks == 1 {
		work(0, n)
		return
	}

	chunk := n / tasks
	extra := n % tasks

	var wg sync.WaitGroup
	start := 0
	for t := 0; t < tasks; t++ {
		end := start + chunk
		if t < extra {
			end++
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			work(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}
