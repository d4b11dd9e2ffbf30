package sim

import (
	"errors"
	"sort"
)

// Result is the sole output of one engine invocation.
type Result struct {
	MeanAnnualLoss float64 // expected annual loss, currency billions
}

// Reduce combines batch partials into the final sample mean:
// (Σ sums) / (Σ counts), never a mean of per-batch means. Results may be
// passed in any order; reduction always folds them in batch-index order, so
// the output is bit-identical for any permutation of the same set.
func Reduce(results []BatchResult) (Result, error) {
	if len(results) == 0 {
		return Result{}, errors.New("no batch results to reduce")
	}

	ordered := make([]BatchResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	var sum float64
	var count int64
	for _, r := range ordered {
		sum += r.Sum
		count += r.Count
	}
	if count <= 0 {
		return Result{}, errors.New("batch results cover zero simulated years")
	}
	return Result{MeanAnnualLoss: sum / float64(count)}, nil
}
