package sim

import "gonum.org/v1/gonum/floats"

// AnnualLosses folds a region's per-event losses into per-year annual totals.
// counts describes the year-major segmentation of losses; annual[i] receives
// the sum of the i-th year's segment added to its existing value, so both
// regions fold into the same slice. A zero-count year adds nothing (the sum
// over an empty segment is zero). Purely deterministic; no randomness here.
func AnnualLosses(counts []int64, losses []float64, annual []float64) {
	k := 0
	for i, c := range counts {
		n := int(c)
		annual[i] += floats.Sum(losses[k : k+n])
		k += n
	}
}
