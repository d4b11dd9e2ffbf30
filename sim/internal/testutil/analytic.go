// Package testutil provides shared analytic reference values for the
// hurricane-sim test suites: closed-form expectations of the compound
// Poisson-LogNormal loss model, used to bound Monte Carlo estimates.
package testutil

import (
	"math"

	"github.com/hurricane-sim/hurricane-sim/sim"
)

// ExpectedEventLoss returns E[exp(Normal(location, scale))]
// = exp(location + scale²/2).
func ExpectedEventLoss(location, scale float64) float64 {
	return math.Exp(location + scale*scale/2)
}

// ExpectedAnnualLoss returns the analytic mean annual loss for a parameter
// set: Σ over regions of rate × E[single-event loss].
func ExpectedAnnualLoss(ps sim.ParameterSet) float64 {
	total := 0.0
	for _, p := range []sim.RegionParams{ps.Florida, ps.Gulf} {
		total += p.LandfallRate * ExpectedEventLoss(p.LossLocation, p.LossScale)
	}
	return total
}

// AnnualLossStdDev returns the analytic standard deviation of one year's
// total loss. For a compound Poisson sum, Var = λ·E[X²] per region, with
// E[X²] = exp(2·location + 2·scale²) for LogNormal event losses; regions are
// independent so variances add.
func AnnualLossStdDev(ps sim.ParameterSet) float64 {
	variance := 0.0
	for _, p := range []sim.RegionParams{ps.Florida, ps.Gulf} {
		secondMoment := math.Exp(2*p.LossLocation + 2*p.LossScale*p.LossScale)
		variance += p.LandfallRate * secondMoment
	}
	return math.Sqrt(variance)
}

// MeanTolerance returns z standard errors of the sample mean over n simulated
// years: z·σ/√n. Tests use it to derive tolerance bands instead of asserting
// exact literals.
func MeanTolerance(ps sim.ParameterSet, n int64, z float64) float64 {
	return z * AnnualLossStdDev(ps) / math.Sqrt(float64(n))
}
