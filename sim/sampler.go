package sim

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// EventSampler draws landfall event counts and per-event losses for one region
// over contiguous ranges of simulated years. It is vectorized at the API
// boundary: one call fills a whole batch's count slice, one call fills the
// whole loss slice, and callers reuse both slices across batches.
//
// Each (purpose, year) pair is drawn from its own derived sub-stream, so the
// values for a given year are the same no matter how years are grouped into
// batches. An EventSampler owns its PCG source and must not be shared across
// goroutines; each worker builds its own.
type EventSampler struct {
	params RegionParams
	region string

	src     *rand.PCG
	poisson distuv.Poisson
	lognorm distuv.LogNormal
}

// NewEventSampler builds a sampler for one region, re-asserting the parameter
// invariants even though upstream validation should already have rejected them.
func NewEventSampler(region string, params RegionParams) (*EventSampler, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("sampler for region %q: %w", region, err)
	}
	src := rand.NewPCG(0, 0)
	return &EventSampler{
		params:  params,
		region:  region,
		src:     src,
		poisson: distuv.Poisson{Lambda: params.LandfallRate, Src: src},
		lognorm: distuv.LogNormal{Mu: params.LossLocation, Sigma: params.LossScale, Src: src},
	}, nil
}

// Counts fills counts[i] with the event count for simulated year start+i,
// drawn from Poisson(LandfallRate). seed is the run's top-level seed.
func (s *EventSampler) Counts(seed uint64, start int64, counts []int64) {
	for i := range counts {
		s.src.Seed(seed, deriveSeed(s.region, streamCounts, start+int64(i)))
		counts[i] = int64(s.poisson.Rand())
	}
}

// Losses fills losses with one LogNormal draw per event, year-major: the first
// counts[0] entries belong to year start, the next counts[1] to start+1, and
// so on. len(losses) must equal the sum of counts. Years with a zero count
// consume nothing, contributing zero loss for that year.
func (s *EventSampler) Losses(seed uint64, start int64, counts []int64, losses []float64) {
	k := 0
	for i, c := range counts {
		if c == 0 {
			continue
		}
		s.src.Seed(seed, deriveSeed(s.region, streamLosses, start+int64(i)))
		for j := int64(0); j < c; j++ {
			losses[k] = s.lognorm.Rand()
			k++
		}
	}
}

// TotalEvents sums a count slice, giving the loss-slice length for a batch.
func TotalEvents(counts []int64) int {
	var total int64
	for _, c := range counts {
		total += c
	}
	return int(total)
}
