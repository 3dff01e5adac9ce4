package artgo

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/artgo/category"
	"github.com/hupe1980/artgo/pattern"
)

// Result is the outcome of a single presentation.
type Result struct {
	// Category is the id of the category the pattern was assigned to.
	Category int

	// New is true when the category was created for this pattern.
	New bool

	// Match is the final match degree in [0, 1]. It is exactly 1.0 for a
	// created category and exactly 0.0 for a degraded assignment.
	Match float64

	// Degraded is true when every category was rejected during search and
	// capacity was also exhausted, so the assignment is a zero-confidence
	// best-effort fallback. It usually means the vigilance is too strict
	// for MaxCategories.
	Degraded bool
}

// Network is a single ART-1 network instance: a category store plus the
// match-reset-search controller and its statistics. A Network is
// exclusively owned by one caller; Present must not be invoked
// concurrently. Independent networks share nothing.
type Network struct {
	inputSize int
	opts      Options
	store     *category.Store

	// inhibited marks categories rejected during the current presentation
	// only; it is cleared at every entry to the search loop.
	inhibited bitset.BitSet

	// assignments[id] holds the ordinals of the patterns category id has
	// absorbed, in presentation order.
	assignments []*roaring.Bitmap

	total      uint64
	created    uint64
	recognized uint64
	exhausted  uint64

	logger  *Logger
	metrics MetricsCollector
}

// New creates a network for binary patterns of length inputSize.
func New(inputSize int, optFns ...func(o *Options)) (*Network, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := validateOptions(inputSize, opts); err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Network{
		inputSize: inputSize,
		opts:      opts,
		store:     category.NewStore(inputSize, opts.MaxCategories),
		logger:    opts.Logger.WithVigilance(opts.Vigilance),
		metrics:   opts.Metrics,
	}, nil
}

// InputSize returns the configured pattern length.
func (n *Network) InputSize() int {
	return n.inputSize
}

// Options returns a copy of the network's configuration.
func (n *Network) Options() Options {
	return n.opts
}

// Category returns the category with the given id, or nil if the id is out
// of range.
func (n *Network) Category(id int) *category.Category {
	if id < 0 || id >= n.store.Len() {
		return nil
	}
	return n.store.Category(id)
}

// Present binarizes a numeric vector (components > 0.5 are active) and
// runs it through the match-reset-search loop.
func (n *Network) Present(vec []float32) (Result, error) {
	if len(vec) != n.inputSize {
		return Result{}, &ErrDimensionMismatch{Expected: n.inputSize, Actual: len(vec)}
	}
	return n.PresentBinary(pattern.Binarize(vec))
}

// PresentBinary presents an already-binary pattern to the network.
//
// The search loop selects the non-inhibited category with the highest
// activation, tests it against vigilance, and either commits (resonance)
// or inhibits it and retries. When no candidate remains a new category is
// created, or, with capacity also exhausted, the lowest-indexed inhibited
// category is returned as a flagged degraded result. The loop runs at most
// len(store)+1 iterations.
func (n *Network) PresentBinary(p *pattern.Binary) (Result, error) {
	if p.Len() != n.inputSize {
		return Result{}, &ErrDimensionMismatch{Expected: n.inputSize, Actual: p.Len()}
	}

	start := time.Now()

	ordinal := n.total
	n.total++

	n.inhibited.ClearAll()

	resets := 0
	for iter := 0; iter <= n.store.Len(); iter++ {
		winner, found := n.selectWinner(p)

		if !found {
			if !n.store.Full() {
				id, err := n.store.Create(p)
				if err != nil {
					n.metrics.RecordPresent(OutcomeError, resets, time.Since(start))
					return Result{}, translateError(fmt.Errorf("create category: %w", err))
				}

				n.assignments = append(n.assignments, roaring.New())
				n.assign(id, ordinal)
				n.created++

				n.logger.LogCreation(id, n.store.Len(), n.store.Max())
				n.metrics.RecordPresent(OutcomeCreated, resets, time.Since(start))
				return Result{Category: id, New: true, Match: 1.0}, nil
			}

			// Every category was tried and rejected and capacity is full.
			// Fall back to the numerically-first inhibited category as a
			// flagged zero-confidence assignment.
			first, ok := n.inhibited.NextSet(0)
			if !ok {
				n.metrics.RecordPresent(OutcomeError, resets, time.Since(start))
				return Result{}, ErrNoCategory
			}

			fallback := int(first)
			n.assign(fallback, ordinal)
			n.exhausted++

			n.logger.LogExhausted(fallback, n.store.Len(), n.opts.Vigilance)
			n.metrics.RecordPresent(OutcomeExhausted, resets, time.Since(start))
			return Result{Category: fallback, Degraded: true}, nil
		}

		match := n.store.Match(p, winner)
		if match >= n.opts.Vigilance {
			n.store.Update(winner, p, n.opts.LearningRate)
			n.assign(winner, ordinal)
			n.recognized++

			n.logger.LogResonance(winner, match, resets)
			n.metrics.RecordPresent(OutcomeResonance, resets, time.Since(start))
			return Result{Category: winner, Match: match}, nil
		}

		n.inhibited.Set(uint(winner))
		resets++
	}

	// Unreachable: every iteration either returns or inhibits one more
	// category, and the loop outlasts the store size.
	n.metrics.RecordPresent(OutcomeError, resets, time.Since(start))
	return Result{}, ErrNoCategory
}

// selectWinner scans categories in ascending id order and returns the one
// with the strictly highest activation among those not inhibited. Ties
// keep the lowest id.
func (n *Network) selectWinner(p *pattern.Binary) (int, bool) {
	winner := -1
	best := math.Inf(-1)

	for id := 0; id < n.store.Len(); id++ {
		if n.inhibited.Test(uint(id)) {
			continue
		}
		if activation := n.store.Activation(p, id); activation > best {
			winner, best = id, activation
		}
	}

	return winner, winner >= 0
}

func (n *Network) assign(id int, ordinal uint64) {
	n.assignments[id].Add(uint32(ordinal))
}
