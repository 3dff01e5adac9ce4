package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/pattern"
)

func TestStore(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		s := NewStore(4, 2)

		id, err := s.Create(pattern.FromBools([]bool{true, true, false, false}))
		require.NoError(t, err)
		assert.Equal(t, 0, id)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, []float32{1, 1, 0, 0}, s.Category(0).Weights())
		assert.Equal(t, uint64(1), s.Category(0).Presentations())

		id, err = s.Create(pattern.FromBools([]bool{false, false, true, true}))
		require.NoError(t, err)
		assert.Equal(t, 1, id)
		assert.True(t, s.Full())

		// Capacity is enforced.
		_, err = s.Create(pattern.FromBools([]bool{true, false, true, false}))
		require.Error(t, err)
		var ce *ErrCapacityExceeded
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 2, ce.Max)
	})

	t.Run("CreateDimensionMismatch", func(t *testing.T) {
		s := NewStore(4, 2)

		_, err := s.Create(pattern.FromBools([]bool{true, false}))
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 4, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("Activation", func(t *testing.T) {
		s := NewStore(4, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, false, false}))
		require.NoError(t, err)

		// |p ∧ w| = 1, |w| = 2 => 1 / (0.1 + 2)
		p := pattern.FromBools([]bool{true, false, true, false})
		assert.InDelta(t, 1.0/2.1, s.Activation(p, 0), 1e-9)

		// Disjoint pattern activates at zero.
		p = pattern.FromBools([]bool{false, false, true, true})
		assert.InDelta(t, 0.0, s.Activation(p, 0), 1e-9)
	})

	t.Run("ActivationFavorsSmallerMass", func(t *testing.T) {
		// Two categories both fully contain the pattern; the one with less
		// weight mass must score higher.
		s := NewStore(4, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, true, true}))
		require.NoError(t, err)
		_, err = s.Create(pattern.FromBools([]bool{true, true, false, false}))
		require.NoError(t, err)

		p := pattern.FromBools([]bool{true, true, false, false})
		assert.Greater(t, s.Activation(p, 1), s.Activation(p, 0))
	})

	t.Run("Match", func(t *testing.T) {
		s := NewStore(4, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, false, false}))
		require.NoError(t, err)

		assert.InDelta(t, 1.0, s.Match(pattern.FromBools([]bool{true, true, false, false}), 0), 1e-9)
		assert.InDelta(t, 0.5, s.Match(pattern.FromBools([]bool{true, true, true, true}), 0), 1e-9)
		assert.InDelta(t, 0.0, s.Match(pattern.FromBools([]bool{false, false, true, true}), 0), 1e-9)

		// An all-zero pattern trivially matches anything.
		assert.InDelta(t, 1.0, s.Match(pattern.New(4), 0), 1e-9)
	})

	t.Run("UpdateFastLearning", func(t *testing.T) {
		s := NewStore(4, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, true, false}))
		require.NoError(t, err)

		s.Update(0, pattern.FromBools([]bool{true, true, false, true}), 1.0)

		// Prototype shrinks to the exact intersection.
		assert.Equal(t, []float32{1, 1, 0, 0}, s.Category(0).Weights())
		assert.Equal(t, uint64(2), s.Category(0).Presentations())
	})

	t.Run("UpdateFastLearningMonotone", func(t *testing.T) {
		s := NewStore(8, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, true, true, true, true, true, true}))
		require.NoError(t, err)

		active := func() int {
			n := 0
			for _, w := range s.Category(0).Weights() {
				if w != 0 {
					n++
				}
			}
			return n
		}

		prev := active()
		for _, p := range []*pattern.Binary{
			pattern.FromBools([]bool{true, true, true, true, true, true, false, false}),
			pattern.FromBools([]bool{true, true, true, true, false, false, true, true}),
			pattern.FromBools([]bool{true, false, true, false, true, false, true, false}),
		} {
			s.Update(0, p, 1.0)
			cur := active()
			assert.LessOrEqual(t, cur, prev)
			prev = cur
		}
	})

	t.Run("UpdateSlowLearning", func(t *testing.T) {
		s := NewStore(4, 4)
		_, err := s.Create(pattern.FromBools([]bool{true, true, false, false}))
		require.NoError(t, err)

		s.Update(0, pattern.FromBools([]bool{true, false, false, false}), 0.5)

		// Both active: 0.5·1 + 0.5·1 = 1. Weight active, pattern not:
		// 0.5·0 + 0.5·1 = 0.5. Inactive stays zero.
		got := s.Category(0).Weights()
		assert.InDelta(t, 1.0, float64(got[0]), 1e-6)
		assert.InDelta(t, 0.5, float64(got[1]), 1e-6)
		assert.InDelta(t, 0.0, float64(got[2]), 1e-6)
		assert.InDelta(t, 0.0, float64(got[3]), 1e-6)
	})

	t.Run("WeightsCopy", func(t *testing.T) {
		s := NewStore(2, 1)
		_, err := s.Create(pattern.FromBools([]bool{true, true}))
		require.NoError(t, err)

		w := s.Category(0).Weights()
		w[0] = 0

		assert.Equal(t, []float32{1, 1}, s.Category(0).Weights())
	})
}
