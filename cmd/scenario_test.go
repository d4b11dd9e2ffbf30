package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScenarioTestCmd builds a throwaway command carrying the flags
// resolveInputs consults, bound to the returned locals.
func newScenarioTestCmd() (*cobra.Command, *int64, *int64) {
	var samples, runSeed int64
	c := &cobra.Command{}
	c.Flags().Int64VarP(&samples, "num-monte-carlo-samples", "n", 1000, "")
	c.Flags().Int64Var(&runSeed, "seed", 42, "")
	return c, &samples, &runSeed
}

// TestResolveInputs_ScenarioValuesAndFlagOverrides verifies that scenario
// samples/seed apply by default and that explicitly set CLI flags win.
func TestResolveInputs_ScenarioValuesAndFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
florida: {landfall_rate: 1.7, mean: 0.5, stddev: 0.3}
gulf: {landfall_rate: 0.9, mean: 0.3, stddev: 0.2}
samples: 5000
seed: 7
`), 0o644))

	// GIVEN no explicitly set flags, scenario values apply
	cmd, flagSamples, flagSeed := newScenarioTestCmd()
	params, samples, runSeed, err := resolveInputs(cmd, nil, path, *flagSamples, *flagSeed)
	require.NoError(t, err)
	assert.Equal(t, 1.7, params.Florida.LandfallRate)
	assert.Equal(t, int64(5000), samples)
	assert.Equal(t, int64(7), runSeed)

	// WHEN the seed and sample flags are set explicitly
	require.NoError(t, cmd.Flags().Set("seed", "99"))
	require.NoError(t, cmd.Flags().Set("num-monte-carlo-samples", "250"))

	// THEN they override the scenario
	_, samples, runSeed, err = resolveInputs(cmd, nil, path, *flagSamples, *flagSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(250), samples)
	assert.Equal(t, int64(99), runSeed)
}

func TestResolveInputs_ScenarioAndArgsAreExclusive(t *testing.T) {
	cmd, flagSamples, flagSeed := newScenarioTestCmd()
	_, _, _, err := resolveInputs(cmd, []string{"1.7"}, "whatever.yaml", *flagSamples, *flagSeed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}
