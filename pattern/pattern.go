// Package pattern provides fixed-length binary input patterns for ART-1
// networks, backed by a bitset for cheap popcounts.
package pattern

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BinarizeThreshold is the cutoff applied when converting numeric vectors
// to binary patterns: components strictly greater than the threshold are
// treated as active.
const BinarizeThreshold = 0.5

// Binary is a fixed-length binary pattern. It is read-only once presented
// to a network; none of its methods mutate it.
type Binary struct {
	bits *bitset.BitSet
	size int
}

// New creates an all-zero binary pattern of the given length.
func New(size int) *Binary {
	return &Binary{
		bits: bitset.New(uint(size)),
		size: size,
	}
}

// Binarize converts a numeric vector to a binary pattern by thresholding
// each component against BinarizeThreshold.
func Binarize(v []float32) *Binary {
	p := New(len(v))
	for i, x := range v {
		if x > BinarizeThreshold {
			p.bits.Set(uint(i))
		}
	}
	return p
}

// FromBools creates a binary pattern from a slice of booleans.
func FromBools(v []bool) *Binary {
	p := New(len(v))
	for i, b := range v {
		if b {
			p.bits.Set(uint(i))
		}
	}
	return p
}

// Len returns the pattern length (number of components).
func (p *Binary) Len() int {
	return p.size
}

// Test reports whether component i is active.
func (p *Binary) Test(i int) bool {
	return p.bits.Test(uint(i))
}

// Count returns the number of active components.
func (p *Binary) Count() int {
	return int(p.bits.Count())
}

// Floats returns the pattern as a {0,1}-valued float32 vector.
func (p *Binary) Floats() []float32 {
	out := make([]float32, p.size)
	for i, ok := p.bits.NextSet(0); ok && int(i) < p.size; i, ok = p.bits.NextSet(i + 1) {
		out[i] = 1
	}
	return out
}

// String renders the pattern as a compact bit string, e.g. "1100".
func (p *Binary) String() string {
	var sb strings.Builder
	sb.Grow(p.size)
	for i := 0; i < p.size; i++ {
		if p.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
