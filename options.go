package artgo

import "fmt"

// Options contains configuration options for a network. InputSize is
// passed to New directly; the remaining fields are immutable after
// construction.
type Options struct {
	// MaxCategories bounds the number of categories the network may
	// create. Must be > 0.
	MaxCategories int

	// Vigilance is the minimum acceptable match ratio between an input
	// and a category's prototype for that category to be accepted without
	// triggering search for another. Must be in [0, 1]; higher values
	// produce more fine-grained categories.
	Vigilance float64

	// LearningRate controls the weight update on resonance. 1.0 is ART-1
	// fast learning (exact intersection); values below move the prototype
	// toward the intersection by convex interpolation. Must be in [0, 1].
	LearningRate float64

	// Logger receives structured debug/warn output. Defaults to a silent
	// logger.
	Logger *Logger

	// Metrics receives per-presentation timing. Defaults to a no-op
	// collector.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for a network.
var DefaultOptions = Options{
	MaxCategories: 100,
	Vigilance:     0.7,
	LearningRate:  1.0,
}

// WithMaxCategories sets the category capacity.
func WithMaxCategories(n int) func(o *Options) {
	return func(o *Options) {
		o.MaxCategories = n
	}
}

// WithVigilance sets the vigilance parameter.
func WithVigilance(v float64) func(o *Options) {
	return func(o *Options) {
		o.Vigilance = v
	}
}

// WithLearningRate sets the learning rate.
func WithLearningRate(r float64) func(o *Options) {
	return func(o *Options) {
		o.LearningRate = r
	}
}

// WithLogger sets the logger. Passing nil restores the silent default.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the metrics collector. Passing nil restores the no-op
// default.
func WithMetrics(m MetricsCollector) func(o *Options) {
	return func(o *Options) {
		o.Metrics = m
	}
}

func validateOptions(inputSize int, opts Options) error {
	if inputSize <= 0 {
		return &ErrInvalidInputSize{InputSize: inputSize}
	}
	if opts.MaxCategories <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxCategories, opts.MaxCategories)
	}
	if opts.Vigilance < 0 || opts.Vigilance > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVigilance, opts.Vigilance)
	}
	if opts.LearningRate < 0 || opts.LearningRate > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidLearningRate, opts.LearningRate)
	}
	return nil
}
