package sim

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Default run controls. DefaultBatchSize trades vectorization efficiency
// (larger amortizes per-call overhead over more years) against memory
// footprint and load-balancing granularity near the tail of the sample count.
const (
	DefaultBatchSize = 100000
	DefaultSamples   = 1000
)

// Config controls how a run is executed. It is a throughput knob only: for a
// fixed Seed and BatchSize the result is bit-identical at any Workers value.
type Config struct {
	Seed      int64         // top-level seed for all random streams
	BatchSize int           // simulated years per batch (0 = DefaultBatchSize)
	Workers   int           // worker goroutines (0 = one per CPU)
	Observer  BatchObserver // optional per-batch timing hook
}

// Engine estimates the mean annual hurricane loss for a parameter set by
// simulating batches of years across a bounded worker pool and reducing the
// partial sums into one sample mean.
type Engine struct {
	params ParameterSet
	cfg    Config

	// runBatch executes one spec on a worker's runner. Overridable in tests
	// to drive the failure path through the pool.
	runBatch func(*BatchRunner, BatchSpec) (BatchResult, error)
}

// NewEngine builds an engine over a validated parameter set, applying Config
// defaults for unset fields.
func NewEngine(params ParameterSet, cfg Config) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if cfg.BatchSize < 0 {
		return nil, fmt.Errorf("%w: batch size %d, should be a positive number", ErrInvalidParameter, cfg.BatchSize)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Engine{params: params, cfg: cfg, runBatch: (*BatchRunner).Run}, nil
}

// Run simulates samples years and returns the estimated mean annual loss.
//
// The sample range [0, samples) is partitioned into ceil(samples/BatchSize)
// contiguous batches (the last possibly short), fed through a channel to the
// worker pool. Each worker owns one BatchRunner, so workers share nothing
// mutable; partial results land in a slice indexed by batch. On the first
// failure the group context cancels dispatch, in-flight batches are abandoned
// and no partial result is returned.
func (e *Engine) Run(ctx context.Context, samples int64) (Result, error) {
	if samples < 1 {
		return Result{}, fmt.Errorf("%w: number of Monte Carlo samples %d, should be a positive number", ErrInvalidParameter, samples)
	}

	batchSize := int64(e.cfg.BatchSize)
	batches := int((samples + batchSize - 1) / batchSize)
	workers := e.cfg.Workers
	if workers > batches {
		workers = batches
	}
	logrus.Debugf("dispatching %d samples as %d batches of <=%d years across %d workers",
		samples, batches, batchSize, workers)

	results := make([]BatchResult, batches)
	specs := make(chan BatchSpec)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(specs)
		for i := 0; i < batches; i++ {
			start := int64(i) * batchSize
			size := batchSize
			if remaining := samples - start; remaining < size {
				size = remaining
			}
			spec := BatchSpec{Index: i, Start: start, Size: int(size), Seed: uint64(e.cfg.Seed)}
			select {
			case specs <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			runner, err := NewBatchRunner(e.params)
			if err != nil {
				return err
			}
			for spec := range specs {
				begin := time.Now()
				res, err := e.runBatch(runner, spec)
				if err != nil {
					return fmt.Errorf("batch %d: %w", spec.Index, err)
				}
				// Distinct indices per batch: no two workers write the
				// same slot, and g.Wait orders these writes before the
				// reduction below.
				results[spec.Index] = res
				if e.cfg.Observer != nil {
					e.cfg.Observer(BatchTiming{Index: spec.Index, Years: spec.Size, Duration: time.Since(begin)})
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Reduce(results)
}
