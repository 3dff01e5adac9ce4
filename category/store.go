// Package category implements the prototype store of an ART-1 network: an
// ordered, append-only collection of category weight vectors with the
// activation, match and learning rules defined by Carpenter & Grossberg
// (1987).
package category

import (
	"github.com/hupe1980/artgo/pattern"
)

// Alpha is the choice parameter used in the activation rule. It breaks
// activation ties in favor of categories with less accumulated weight mass
// and keeps the denominator nonzero for an all-zero prototype.
const Alpha = 0.1

// fastLearningThreshold is the learning rate at or above which the update
// rule degenerates to the exact set intersection of ART-1 fast learning.
const fastLearningThreshold = 0.99

// Category is a learned prototype. Weights are in [0,1]; fast learning
// keeps them exactly binary.
type Category struct {
	weights       []float32
	presentations uint64
}

// Weights returns a copy of the category's weight vector.
func (c *Category) Weights() []float32 {
	out := make([]float32, len(c.weights))
	copy(out, c.weights)
	return out
}

// Presentations returns the number of patterns this category has absorbed,
// including the one that created it.
func (c *Category) Presentations() uint64 {
	return c.presentations
}

// active reports whether component i contributes to intersections. A
// component counts as active while its weight is nonzero, which under slow
// learning can be fractional.
func (c *Category) active(i int) bool {
	return c.weights[i] != 0
}

// Store is the ordered category collection of a single network. Category
// ids are assigned densely at creation and are never reused or reordered;
// categories are never deleted or merged. A Store is exclusively owned by
// one network and is not safe for concurrent use.
type Store struct {
	inputSize  int
	max        int
	categories []*Category
}

// NewStore creates an empty store for patterns of the given length,
// bounded by maxCategories entries.
func NewStore(inputSize, maxCategories int) *Store {
	return &Store{
		inputSize: inputSize,
		max:       maxCategories,
	}
}

// Len returns the number of categories.
func (s *Store) Len() int {
	return len(s.categories)
}

// Max returns the category capacity.
func (s *Store) Max() int {
	return s.max
}

// Full reports whether the store is at capacity.
func (s *Store) Full() bool {
	return len(s.categories) >= s.max
}

// Category returns the category with the given id.
func (s *Store) Category(id int) *Category {
	return s.categories[id]
}

// Activation scores how strongly a pattern activates a category:
//
//	T_j = |pattern ∧ weights| / (α + |weights|)
//
// where |weights| is the summed weight mass. Activation only ranks
// candidates for trial order; acceptance is gated by Match.
func (s *Store) Activation(p *pattern.Binary, id int) float64 {
	c := s.categories[id]

	var intersection int
	var mass float64
	for i, w := range c.weights {
		if w == 0 {
			continue
		}
		mass += float64(w)
		if p.Test(i) {
			intersection++
		}
	}

	return float64(intersection) / (Alpha + mass)
}

// Match computes the match degree between a pattern and a category's
// prototype:
//
//	match = |pattern ∧ weights| / |pattern|
//
// An all-zero pattern trivially matches any expectation and yields 1.0.
func (s *Store) Match(p *pattern.Binary, id int) float64 {
	magnitude := p.Count()
	if magnitude == 0 {
		return 1.0
	}

	c := s.categories[id]
	var intersection int
	for i := range c.weights {
		if c.active(i) && p.Test(i) {
			intersection++
		}
	}

	return float64(intersection) / float64(magnitude)
}

// Create appends a new category whose prototype is a copy of the pattern
// and returns its id. It fails with *ErrCapacityExceeded when the store is
// full and with *ErrDimensionMismatch when the pattern length does not
// match the store's input size.
func (s *Store) Create(p *pattern.Binary) (int, error) {
	if p.Len() != s.inputSize {
		return 0, &ErrDimensionMismatch{Expected: s.inputSize, Actual: p.Len()}
	}
	if s.Full() {
		return 0, &ErrCapacityExceeded{Max: s.max}
	}

	weights := make([]float32, s.inputSize)
	for i := 0; i < s.inputSize; i++ {
		if p.Test(i) {
			weights[i] = 1
		}
	}

	s.categories = append(s.categories, &Category{
		weights:       weights,
		presentations: 1,
	})

	return len(s.categories) - 1, nil
}

// Update applies the ART-1 learning rule to the category that won and
// resonated. At learningRate ≥ 0.99 (fast learning) the new prototype is
// exactly pattern ∧ weights, so a category's active set only ever shrinks.
// Below that the new weights are the convex interpolation
//
//	w' = rate·(pattern ∧ w) + (1 − rate)·w
//
// Update also increments the category's presentation count.
func (s *Store) Update(id int, p *pattern.Binary, learningRate float64) {
	c := s.categories[id]

	if learningRate >= fastLearningThreshold {
		for i := range c.weights {
			if c.active(i) && p.Test(i) {
				c.weights[i] = 1
			} else {
				c.weights[i] = 0
			}
		}
	} else {
		rate := float32(learningRate)
		for i, w := range c.weights {
			var intersection float32
			if c.active(i) && p.Test(i) {
				intersection = 1
			}
			c.weights[i] = rate*intersection + (1-rate)*w
		}
	}

	c.presentations++
}
