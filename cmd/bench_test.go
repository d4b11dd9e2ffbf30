package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleFlagDefaultsMatchBoundVars verifies that each command's
// -n/--num-monte-carlo-samples default is actually held by its bound variable
// after init. With a variable shared across commands, whichever init ran last
// would overwrite the other command's default, so bench invoked without -n
// would silently run run's 1000 samples instead of its advertised 1000000.
func TestSampleFlagDefaultsMatchBoundVars(t *testing.T) {
	benchFlag := benchCmd.Flags().Lookup("num-monte-carlo-samples")
	runFlag := runCmd.Flags().Lookup("num-monte-carlo-samples")
	require.NotNil(t, benchFlag)
	require.NotNil(t, runFlag)

	assert.Equal(t, "1000000", benchFlag.DefValue)
	assert.Equal(t, int64(1000000), benchSamples, "bench must run the sample count its help text promises")

	assert.Equal(t, "1000", runFlag.DefValue)
	assert.Equal(t, int64(1000), numSamples)
}

// TestBenchFlagsIndependentOfRunFlags verifies that setting a bench flag
// never leaks into run's variables (and vice versa).
func TestBenchFlagsIndependentOfRunFlags(t *testing.T) {
	defer func() {
		benchSamples = 1000000
		benchSeed = 42
		numSamples = 1000
		seed = 42
	}()

	require.NoError(t, benchCmd.Flags().Set("num-monte-carlo-samples", "777"))
	require.NoError(t, benchCmd.Flags().Set("seed", "9"))
	assert.Equal(t, int64(777), benchSamples)
	assert.Equal(t, int64(9), benchSeed)
	assert.Equal(t, int64(1000), numSamples, "run's sample count must be untouched")
	assert.Equal(t, int64(42), seed, "run's seed must be untouched")

	require.NoError(t, runCmd.Flags().Set("num-monte-carlo-samples", "55"))
	assert.Equal(t, int64(55), numSamples)
	assert.Equal(t, int64(777), benchSamples, "bench's sample count must be untouched")
}
