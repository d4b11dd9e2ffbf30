package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BatchSpec identifies one contiguous, independently seeded slice of simulated
// years: a unit of parallel work. Created by the engine at dispatch time,
// consumed entirely by one worker.
type BatchSpec struct {
	Index int    // position in the run's batch sequence, orders reduction
	Start int64  // global index of the first simulated year
	Size  int    // number of simulated years, must be > 0
	Seed  uint64 // top-level seed all sub-streams derive from
}

// BatchResult carries the partial statistic for one executed batch. Keeping
// sum and count, rather than a materialized mean, lets unequal batch sizes
// reduce without weighting errors.
type BatchResult struct {
	Index int
	Sum   float64 // sum of annual losses across the batch's years
	Count int64   // number of simulated years in the batch
}

// BatchRunner simulates batches of years for one parameter set. It owns its
// sampling streams and scratch buffers and touches no shared mutable state,
// so distinct runners run concurrently without locks. A BatchResult depends
// only on the BatchSpec: any runner built from the same parameters produces
// the same result for the same spec.
type BatchRunner struct {
	samplers [2]*EventSampler

	counts []int64
	losses []float64
	annual []float64
}

// NewBatchRunner builds a runner (and its per-region samplers) for params.
func NewBatchRunner(params ParameterSet) (*BatchRunner, error) {
	florida, err := NewEventSampler(regionFlorida, params.Florida)
	if err != nil {
		return nil, err
	}
	gulf, err := NewEventSampler(regionGulf, params.Gulf)
	if err != nil {
		return nil, err
	}
	return &BatchRunner{samplers: [2]*EventSampler{florida, gulf}}, nil
}

// Run simulates spec.Size years starting at spec.Start: vectorized count and
// loss draws per region, per-year aggregation, then one batch sum.
func (r *BatchRunner) Run(spec BatchSpec) (BatchResult, error) {
	if spec.Size <= 0 {
		return BatchResult{}, fmt.Errorf("%w: batch size %d, should be a positive number", ErrInvalidParameter, spec.Size)
	}

	r.counts = growInt64(r.counts, spec.Size)
	r.annual = growFloat64(r.annual, spec.Size)
	clear(r.annual)

	for _, sampler := range r.samplers {
		sampler.Counts(spec.Seed, spec.Start, r.counts)
		events := TotalEvents(r.counts)
		r.losses = growFloat64(r.losses, events)
		sampler.Losses(spec.Seed, spec.Start, r.counts, r.losses[:events])
		AnnualLosses(r.counts, r.losses[:events], r.annual)
	}

	return BatchResult{
		Index: spec.Index,
		Sum:   floats.Sum(r.annual),
		Count: int64(spec.Size),
	}, nil
}

// growInt64 returns a slice of length n, reusing capacity when possible.
func growInt64(s []int64, n int) []int64 {
	if cap(s) < n {
		return make([]int64, n)
	}
	return s[:n]
}

func growFloat64(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
