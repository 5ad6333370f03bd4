// Package parallel fans out independent scalar evaluations across goroutines.
//
// It is used for work items that build their own computation graphs and
// share nothing, such as the perturbed evaluations of a numerical gradient.
// Nothing in the autodiff engine itself runs concurrently.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Below this many items, run sequentially.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8, // Each item is a whole forward pass.
	}
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// Map evaluates f(i) for i in [0, n) and returns the results in index order.
// f must not touch state shared with other indices.
func Map(n int, f func(i int) float64, cfg Config) []float64 {
	out := make([]float64, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}

// For executes f(i) for i in [0, n), split into contiguous chunks of at
// least MinChunkSize items. It returns after every call completes.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 2 || n < cfg.MinChunkSize || n < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
