// Package sim implements the Monte Carlo engine that estimates the expected
// average annual economic loss (in currency billions) from landfalling
// hurricanes in the Florida and Gulf regions.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - sampler.go: vectorized Poisson event counts and LogNormal per-event losses
//   - batch.go: a batch as an independent, seedable, vectorizable unit of work
//   - engine.go: batch partitioning, the worker pool, and result reduction
//
// # Determinism
//
// Every random draw comes from a sub-stream derived from the top-level seed,
// a region label, a stream purpose, and the global simulated-year index
// (rng.go). Because no stream is shared, the sampled data depends only on the
// seed and the year index — not on batch size, worker count, or scheduling
// order. Worker count is therefore a pure throughput knob: the same seed and
// batch size produce a bit-identical result at any parallelism.
package sim
