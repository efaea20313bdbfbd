// Package parallel splits index domains into contiguous partitions and runs them
// on a bounded pool of worker goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of partitions running at once.
	MinChunkSize int  // Minimum items per partition to avoid overhead.
	Partitions   int  // Number of partitions to split into; 0 means NumWorkers.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1024,
	}
}

// Serial returns a configuration that runs everything on the caller's goroutine.
func Serial() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

var defaultConfig = sync.OnceValue(func() Config {
	return FromEnv(DefaultConfig())
})

// Default returns DefaultConfig adjusted by the NDBUF_* environment variables.
// It is computed once per process.
func Default() Config { return defaultConfig() }

func (c Config) workers() int {
	if !c.Enabled || c.NumWorkers < 1 {
		return 1
	}
	return c.NumWorkers
}

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Split divides [0, n) into contiguous, ordered, non-empty partitions. It returns
// nil for n <= 0 and a single partition when parallelism is disabled or n is too
// small to be worth splitting.
func Split(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	parts := cfg.Partitions
	if parts <= 0 {
		parts = cfg.workers()
	}
	if !cfg.Enabled && cfg.Partitions <= 0 {
		parts = 1
	}
	if cfg.MinChunkSize > 1 {
		parts = min(parts, (n+cfg.MinChunkSize-1)/cfg.MinChunkSize)
	}
	parts = max(1, min(parts, n))

	out := make([]Range, parts)
	size, rem := n/parts, n%parts
	start := 0
	for i := range out {
		end := start + size
		if i < rem {
			end++
		}
		out[i] = Range{Start: start, End: end}
		start = end
	}
	return out
}

// Run calls fn once per partition, with at most cfg.NumWorkers calls in flight.
//
// The first error cancels the context passed to the remaining calls; partitions
// not yet started are skipped. Run returns only after every started call has
// returned, and then reports the first error.
func Run(ctx context.Context, parts []Range, cfg Config, fn func(ctx context.Context, part int, r Range) error) error {
	log := Logger()
	workers := cfg.workers()
	log.Debug("parallel run", "partitions", len(parts), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range parts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i, r)
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Debug("parallel run failed", "error", err)
	}
	return err
}

// ForRange calls f on each partition of [0, n) and waits for all of them.
func ForRange(n int, f func(start, end int), cfg Config) {
	parts := Split(n, cfg)
	if len(parts) <= 1 {
		for _, r := range parts {
			f(r.Start, r.End)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.workers())
	for _, r := range parts {
		wg.Add(1)
		sem <- struct{}{}
		go func(s, e int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			f(s, e)
		}(r.Start, r.End)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
