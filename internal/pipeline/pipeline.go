// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"herd/core/evolve"
	"herd/core/star"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Star is one unit of work.
type Star struct {
	ID     string
	Params evolve.Parameters
}

// Result is the trajectory of one star. Points holds whatever was emitted
// before Err.
type Result struct {
	Index  int
	Star   Star
	Points []star.TrackPoint
	Err    error
}

// Evolve runs one trajectory, stopping early when ctx is cancelled.
func Evolve(ctx context.Context, s Star) ([]star.TrackPoint, error) {
	var pts []star.TrackPoint
	err := evolve.Run(ctx, s.Params, func(p star.TrackPoint) error {
		pts = append(pts, p)
		return nil
	})
	return pts, err
}

// ForEachStar evolves stars concurrently and calls visit once per star in
// input order, so the output does not depend on Threads. It returns the
// first visit error, or ctx.Err() if the context was cancelled.
func ForEachStar(ctx context.Context, cfg Config, stars []Star, visit func(Result) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					pts, err := Evolve(ctx, stars[i])
					if ctx.Err() != nil {
						return
					}
					select {
					case results <- Result{Index: i, Star: stars[i], Points: pts, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-orders by index.
	var (
		cerr    error
		cwg     sync.WaitGroup
		pending = make(map[int]Result)
		next    int
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				ready, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(ready); err != nil {
					cerr = err
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range stars {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
