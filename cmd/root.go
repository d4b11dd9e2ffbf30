package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/hurricane-sim/hurricane-sim/sim"
)

var (
	// CLI flags for the run command. Each command binds its own variables
	// (bench's live in bench.go): pflag writes a flag's default into its
	// bound variable at registration time, so a variable shared across
	// commands would end up holding whichever init ran last.
	numSamples   int64  // Total number of simulated years
	seed         int64  // Top-level seed controlling all randomness
	workers      int    // Worker goroutines (0 = one per CPU)
	batchSize    int    // Simulated years per vectorized batch
	logLevel     string // Log verbosity level
	scenarioPath string // Optional YAML scenario file
)

// argNames labels the six positional inputs for error messages, in order.
var argNames = [6]string{
	"Florida landfall rate", "Florida mean", "Florida stddev",
	"Gulf landfall rate", "Gulf mean", "Gulf stddev",
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hurricane-sim",
	Short: "Monte Carlo estimator of average annual hurricane losses",
	Long: "Calculates the average annual hurricane loss in $Billions for a simple " +
		"two-region (Florida and Gulf states) hurricane model.",
}

// runCmd executes one simulation using parameters from positional arguments
// or a YAML scenario file.
var runCmd = &cobra.Command{
	Use:   "run [florida_landfall_rate florida_mean florida_stddev gulf_landfall_rate gulf_mean gulf_stddev]",
	Short: "Estimate the mean annual loss for the Florida and Gulf regions",
	Args:  cobra.RangeArgs(0, 6),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params, samples, runSeed, err := resolveInputs(cmd, args, scenarioPath, numSamples, seed)
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}

		engine, err := sim.NewEngine(params, sim.Config{Seed: runSeed, BatchSize: batchSize, Workers: workers})
		if err != nil {
			logrus.Fatalf("Invalid input: %v", err)
		}

		logrus.Infof("Starting hurricane loss calculation: samples=%d seed=%d workers=%d batch-size=%d",
			samples, runSeed, workers, batchSize)
		startTime := time.Now()

		result, err := engine.Run(context.Background(), samples)
		if err != nil {
			logrus.Fatalf("Error during hurricane loss calculation: %v", err)
		}

		logrus.Infof("Hurricane loss calculation complete in %v.", time.Since(startTime))
		fmt.Printf("Expected annual economic loss: $%.4f billion\n", result.MeanAnnualLoss)
	},
}

// parsePositive parses a positional argument that must be a positive number.
func parsePositive(value, name string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %q", name, value)
	}
	if !(f > 0) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s should be a positive number, got %v", name, f)
	}
	return f, nil
}

// parameterSetFromArgs builds a validated ParameterSet from the six
// positional CLI arguments.
func parameterSetFromArgs(args []string) (sim.ParameterSet, error) {
	if len(args) != len(argNames) {
		return sim.ParameterSet{}, fmt.Errorf("expected %d positional arguments, got %d", len(argNames), len(args))
	}
	var vals [6]float64
	for i, arg := range args {
		v, err := parsePositive(arg, argNames[i])
		if err != nil {
			return sim.ParameterSet{}, err
		}
		vals[i] = v
	}
	return sim.NewParameterSet(
		sim.RegionParams{LandfallRate: vals[0], LossLocation: vals[1], LossScale: vals[2]},
		sim.RegionParams{LandfallRate: vals[3], LossLocation: vals[4], LossScale: vals[5]},
	)
}

// resolveInputs returns the parameter set, sample count and seed for one run,
// from either a scenario file or positional arguments. flagSamples and
// flagSeed carry the calling command's own flag values; explicitly set CLI
// flags override scenario values.
func resolveInputs(cmd *cobra.Command, args []string, scenario string, flagSamples, flagSeed int64) (sim.ParameterSet, int64, int64, error) {
	if scenario != "" {
		if len(args) != 0 {
			return sim.ParameterSet{}, 0, 0, fmt.Errorf("pass either --scenario or positional arguments, not both")
		}
		sc, err := sim.LoadScenario(scenario)
		if err != nil {
			return sim.ParameterSet{}, 0, 0, err
		}
		params, err := sc.ParameterSet()
		if err != nil {
			return sim.ParameterSet{}, 0, 0, err
		}
		samples, runSeed := sc.Samples, sc.Seed
		if cmd.Flags().Changed("num-monte-carlo-samples") {
			samples = flagSamples
		}
		if cmd.Flags().Changed("seed") {
			runSeed = flagSeed
		}
		if samples < 1 {
			return sim.ParameterSet{}, 0, 0, fmt.Errorf("number of Monte Carlo samples should be a positive number, got %d", samples)
		}
		return params, samples, runSeed, nil
	}

	params, err := parameterSetFromArgs(args)
	if err != nil {
		return sim.ParameterSet{}, 0, 0, err
	}
	if flagSamples < 1 {
		return sim.ParameterSet{}, 0, 0, fmt.Errorf("number of Monte Carlo samples should be a positive number, got %d", flagSamples)
	}
	return params, flagSamples, flagSeed, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64VarP(&numSamples, "num-monte-carlo-samples", "n", sim.DefaultSamples, "Number of simulated years")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random event and loss generation")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	runCmd.Flags().IntVar(&batchSize, "batch-size", sim.DefaultBatchSize, "Simulated years per vectorized batch")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (alternative to positional arguments)")

	rootCmd.AddCommand(runCmd)
}
