// Command artbench benchmarks ART-1 learning over seeded random binary
// patterns and prints per-configuration timing and clustering reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hupe1980/artgo/bench"
)

var (
	verbose       bool
	inputSize     int
	numPatterns   int
	vigilance     float64
	maxCategories int
	learningRate  float64
	seed          int64
	rateLimit     float64
	parallelism   int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "artbench",
	Short: "Benchmark ART-1 unsupervised category learning",
	Long: `artbench runs the sequential ART-1 baseline over streams of seeded
random binary patterns and reports categories created, learning time and
throughput per configuration.

Without flags it runs the standard sweep (8x100, 64x1000, 256x1000 at
vigilance 0.7). Pass --input-size to run a single custom configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfgs := bench.DefaultConfigs
		if inputSize > 0 {
			cfgs = []bench.Config{{
				InputSize:     inputSize,
				NumPatterns:   numPatterns,
				Vigilance:     vigilance,
				MaxCategories: maxCategories,
				LearningRate:  learningRate,
				Seed:          seed,
				Rate:          rateLimit,
			}}
		}

		logger.Info("starting benchmark", zap.Int("configs", len(cfgs)), zap.Int("parallelism", parallelism))

		start := time.Now()
		reports, err := bench.Sweep(ctx, cfgs, parallelism)
		if err != nil {
			return err
		}

		for _, r := range reports {
			fmt.Printf("Configuration: input_size=%d patterns=%d vigilance=%g\n",
				r.Config.InputSize, r.Config.NumPatterns, r.Config.Vigilance)
			fmt.Printf("  Categories created:   %d\n", r.Stats.Categories)
			fmt.Printf("  Recognitions:         %d\n", r.Stats.Recognized)
			if r.Stats.Exhausted > 0 {
				fmt.Printf("  Degraded assignments: %d\n", r.Stats.Exhausted)
			}
			fmt.Printf("  Learning time:        %.2f ms\n", float64(r.LearningTime.Microseconds())/1000)
			fmt.Printf("  Throughput:           %.1f patterns/sec\n", r.Throughput)
			fmt.Printf("  Avg time/pattern:     %.3f ms\n", float64(r.AvgPerPattern.Nanoseconds())/1e6)
			fmt.Println()
		}

		logger.Info("benchmark complete", zap.Duration("elapsed", time.Since(start)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&inputSize, "input-size", 0, "pattern length (0 runs the standard sweep)")
	rootCmd.Flags().IntVar(&numPatterns, "patterns", 1000, "number of patterns to present")
	rootCmd.Flags().Float64Var(&vigilance, "vigilance", 0.7, "vigilance parameter in [0,1]")
	rootCmd.Flags().IntVar(&maxCategories, "max-categories", 100, "category capacity")
	rootCmd.Flags().Float64Var(&learningRate, "learning-rate", 1.0, "learning rate in [0,1]")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "pattern generator seed")
	rootCmd.Flags().Float64Var(&rateLimit, "rate", 0, "pace presentations to this many per second (0 = unpaced)")
	rootCmd.Flags().IntVar(&parallelism, "parallel", 1, "concurrent configurations (each on its own network)")
}

func main() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
