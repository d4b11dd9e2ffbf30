package sim_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurricane-sim/hurricane-sim/sim"
	"github.com/hurricane-sim/hurricane-sim/sim/internal/testutil"
)

// TestExampleScenario_Baseline verifies that examples/baseline.yaml loads,
// validates, and drives a run whose estimate lands inside the analytic band.
func TestExampleScenario_Baseline(t *testing.T) {
	// GIVEN the shipped baseline scenario
	path := filepath.Join("..", "examples", "baseline.yaml")
	sc, err := sim.LoadScenario(path)
	require.NoError(t, err, "failed to load baseline.yaml")

	assert.Equal(t, int64(100000), sc.Samples)
	assert.Equal(t, int64(42), sc.Seed)

	params, err := sc.ParameterSet()
	require.NoError(t, err)

	// WHEN running it
	engine, err := sim.NewEngine(params, sim.Config{Seed: sc.Seed, BatchSize: 10000})
	require.NoError(t, err)
	result, err := engine.Run(context.Background(), sc.Samples)
	require.NoError(t, err)

	// THEN the estimate is within 5 standard errors of the analytic mean
	want := testutil.ExpectedAnnualLoss(params)
	assert.InDelta(t, want, result.MeanAnnualLoss, testutil.MeanTolerance(params, sc.Samples, 5))
}
