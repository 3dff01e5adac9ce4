// Package bench is the benchmarking shell around an ART-1 network: it
// generates seeded random binary patterns, feeds them through a network,
// and reports timing and clustering statistics.
package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/pattern"
)

// Config describes a single benchmark run.
type Config struct {
	// InputSize is the binary pattern length.
	InputSize int

	// NumPatterns is the number of patterns presented.
	NumPatterns int

	// Vigilance is the network vigilance parameter.
	Vigilance float64

	// MaxCategories bounds the category store. Zero means 100.
	MaxCategories int

	// LearningRate is the network learning rate. Zero means fast
	// learning (1.0).
	LearningRate float64

	// Seed drives the pattern generator. Zero means 42.
	Seed int64

	// Rate throttles the presentation loop to this many patterns per
	// second, simulating a streaming feed. Zero disables pacing.
	Rate float64
}

// DefaultConfigs is the standard configuration sweep: small, medium and
// large inputs at vigilance 0.7.
var DefaultConfigs = []Config{
	{InputSize: 8, NumPatterns: 100, Vigilance: 0.7},
	{InputSize: 64, NumPatterns: 1000, Vigilance: 0.7},
	{InputSize: 256, NumPatterns: 1000, Vigilance: 0.7},
}

func (c Config) withDefaults() Config {
	if c.MaxCategories == 0 {
		c.MaxCategories = 100
	}
	if c.LearningRate == 0 {
		c.LearningRate = 1.0
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	return c
}

// Report holds the outcome of a benchmark run.
type Report struct {
	Config Config

	// Stats is the network's final statistics snapshot.
	Stats artgo.Stats

	// LearningTime is the wall time of the presentation loop, excluding
	// pattern generation.
	LearningTime time.Duration

	// Throughput is presentations per second.
	Throughput float64

	// AvgPerPattern is the mean presentation latency.
	AvgPerPattern time.Duration
}

// String renders a short single-line summary.
func (r Report) String() string {
	return fmt.Sprintf("size=%d patterns=%d vigilance=%g categories=%d time=%s throughput=%.1f/s",
		r.Config.InputSize, r.Config.NumPatterns, r.Config.Vigilance,
		r.Stats.Categories, r.LearningTime.Round(time.Microsecond), r.Throughput)
}

// Run executes one benchmark configuration on a fresh network. Patterns
// are generated up front so that only the presentation loop is timed.
func Run(ctx context.Context, cfg Config) (Report, error) {
	cfg = cfg.withDefaults()

	net, err := artgo.New(cfg.InputSize,
		artgo.WithMaxCategories(cfg.MaxCategories),
		artgo.WithVigilance(cfg.Vigilance),
		artgo.WithLearningRate(cfg.LearningRate),
	)
	if err != nil {
		return Report{}, fmt.Errorf("create network: %w", err)
	}

	patterns := pattern.NewGenerator(cfg.InputSize, cfg.Seed).Batch(cfg.NumPatterns)

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	start := time.Now()

	for _, p := range patterns {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return Report{}, err
			}
		} else if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		if _, err := net.PresentBinary(p); err != nil {
			return Report{}, fmt.Errorf("present pattern: %w", err)
		}
	}

	elapsed := time.Since(start)

	report := Report{
		Config:       cfg,
		Stats:        net.Stats(),
		LearningTime: elapsed,
	}
	if elapsed > 0 {
		report.Throughput = float64(cfg.NumPatterns) / elapsed.Seconds()
	}
	if cfg.NumPatterns > 0 {
		report.AvgPerPattern = elapsed / time.Duration(cfg.NumPatterns)
	}

	return report, nil
}

// Sweep runs several configurations concurrently, one independent network
// per goroutine, and returns the reports in config order. parallelism
// bounds the number of simultaneous runs; values < 1 mean unbounded.
func Sweep(ctx context.Context, cfgs []Config, parallelism int) ([]Report, error) {
	reports := make([]Report, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			report, err := Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("config %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
