package msm

import "runtime"

// Config tunes the parallel kernel routines. The zero value is ready to use.
type Config struct {
	// NbTasks caps the number of concurrent tasks. Values <= 0 mean
	// runtime.GOMAXPROCS(0).
	NbTasks int
}

func (c Config) tasks() int {
	if c.NbTasks <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.NbTasks
}
