package artgo

import (
	"sync/atomic"
	"time"
)

// Outcome classifies how a presentation terminated.
type Outcome int

const (
	// OutcomeResonance means an existing category accepted the pattern.
	OutcomeResonance Outcome = iota
	// OutcomeCreated means a new category was created for the pattern.
	OutcomeCreated
	// OutcomeExhausted means the degraded fallback was taken.
	OutcomeExhausted
	// OutcomeError means the presentation failed at the boundary.
	OutcomeError
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeResonance:
		return "resonance"
	case OutcomeCreated:
		return "created"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "error"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPresent is called after each presentation. duration is the
	// total time taken by the search loop, resets is the number of
	// inhibit-and-retry iterations before termination.
	RecordPresent(outcome Outcome, resets int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPresent(Outcome, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResonanceCount    atomic.Int64
	CreatedCount      atomic.Int64
	ExhaustedCount    atomic.Int64
	ErrorCount        atomic.Int64
	ResetCount        atomic.Int64
	PresentTotalNanos atomic.Int64
}

// RecordPresent implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPresent(outcome Outcome, resets int, duration time.Duration) {
	switch outcome {
	case OutcomeResonance:
		b.ResonanceCount.Add(1)
	case OutcomeCreated:
		b.CreatedCount.Add(1)
	case OutcomeExhausted:
		b.ExhaustedCount.Add(1)
	default:
		b.ErrorCount.Add(1)
	}
	b.ResetCount.Add(int64(resets))
	b.PresentTotalNanos.Add(int64(duration))
}

// AveragePresentLatency returns the mean presentation duration, or zero if
// nothing has been recorded.
func (b *BasicMetricsCollector) AveragePresentLatency() time.Duration {
	n := b.ResonanceCount.Load() + b.CreatedCount.Load() + b.ExhaustedCount.Load() + b.ErrorCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.PresentTotalNanos.Load() / n)
}
