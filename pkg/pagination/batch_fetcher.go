package pagination

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config holds batch fetcher configuration
type Config struct {
	// MaxConcurrency bounds parallel fetches. Zero or less means one
	// goroutine per input.
	MaxConcurrency int
	// Timeout per input fetch. Zero leaves the parent context in charge.
	Timeout time.Duration
}

// DefaultConfig returns an unbounded configuration with no per-item timeout.
func DefaultConfig() Config {
	return Config{}
}

// FetchFunc loads the output for a single input.
type FetchFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// Result is the outcome of fetching a single input.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// BatchFetcher fans a fetch function out over many inputs.
type BatchFetcher[In, Out any] struct {
	fetch  FetchFunc[In, Out]
	config Config
}

// NewBatchFetcher creates a new batch fetcher
func NewBatchFetcher[In, Out any](fetch FetchFunc[In, Out], config Config) *BatchFetcher[In, Out] {
	if config.Timeout < 0 {
		config.Timeout = 0
	}
	return &BatchFetcher[In, Out]{
		fetch:  fetch,
		config: config,
	}
}

// FetchAll fetches every input in parallel and returns one result per
// input, in input order. A failed input is reported in its Result and does
// not affect the others.
func (bf *BatchFetcher[In, Out]) FetchAll(ctx context.Context, inputs []In) []Result[Out] {
	start := time.Now()
	results := make([]Result[Out], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	var g errgroup.Group
	if bf.config.MaxConcurrency > 0 {
		g.SetLimit(bf.config.MaxConcurrency)
	}

	for i, in := range inputs {
		g.Go(func() error {
			results[i] = bf.fetchOne(ctx, i, in)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	log.Debug().
		Int("inputs", len(inputs)).
		Int("failed", failed).
		Int("max_concurrency", bf.config.MaxConcurrency).
		Dur("duration", time.Since(start)).
		Msg("Batch fetch complete")

	return results
}

func (bf *BatchFetcher[In, Out]) fetchOne(ctx context.Context, index int, in In) Result[Out] {
	if err := ctx.Err(); err != nil {
		return Result[Out]{Index: index, Err: err}
	}

	itemCtx := ctx
	if bf.config.Timeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(ctx, bf.config.Timeout)
		defer cancel()
	}

	out, err := bf.fetch(itemCtx, in)
	if err != nil {
		log.Warn().
			Err(err).
			Int("index", index).
			Msg("Batch item fetch failed")
		return Result[Out]{Index: index, Err: err}
	}
	return Result[Out]{Index: index, Value: out}
}

// Values returns the successful values in input order and the number of
// failed results.
func Values[T any](results []Result[T]) ([]T, int) {
	values := make([]T, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		values = append(values, r.Value)
	}
	return values, failed
}
