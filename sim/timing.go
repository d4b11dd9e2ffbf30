package sim

import "time"

// BatchTiming records the wall-clock cost of one executed batch, for external
// benchmarking harnesses.
type BatchTiming struct {
	Index    int
	Years    int
	Duration time.Duration
}

// BatchObserver receives one BatchTiming per completed batch. Observers may be
// invoked concurrently from worker goroutines and should return quickly.
// Observation never alters the computed result.
type BatchObserver func(BatchTiming)
