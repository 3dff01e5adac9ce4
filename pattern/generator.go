package pattern

import (
	"math/rand"
	"sync"
)

// Generator produces pseudo-random binary patterns from a fixed seed.
// It is deterministic: two generators with the same seed, size and density
// emit identical pattern sequences. It is safe for concurrent use.
type Generator struct {
	rand    *rand.Rand
	seed    int64
	size    int
	density float64
	mu      sync.Mutex
}

// NewGenerator creates a generator for patterns of the given length with
// each component active with probability 0.5.
func NewGenerator(size int, seed int64) *Generator {
	return &Generator{
		rand:    rand.New(rand.NewSource(seed)),
		seed:    seed,
		size:    size,
		density: 0.5,
	}
}

// Seed returns the initial seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetDensity sets the probability that a component is active. Values are
// clamped to [0, 1].
func (g *Generator) SetDensity(p float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.density = min(max(p, 0), 1)
}

// Reset rewinds the generator to its initial seed.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rand.Seed(g.seed)
}

// Next returns the next pattern in the sequence.
func (g *Generator) Next() *Binary {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := New(g.size)
	for i := 0; i < g.size; i++ {
		if g.rand.Float64() < g.density {
			p.bits.Set(uint(i))
		}
	}
	return p
}

// Batch returns the next n patterns in the sequence.
func (g *Generator) Batch(n int) []*Binary {
	out := make([]*Binary, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
