package artgo

import "github.com/RoaringBitmap/roaring/v2"

// Stats is a read-only snapshot of a network's accumulated counters.
type Stats struct {
	// TotalPatterns is the number of presentations, counted once at entry
	// regardless of outcome.
	TotalPatterns uint64

	// Categories is the current number of categories in the store.
	Categories int

	// Created is the number of categories created on demand.
	Created uint64

	// Recognized is the number of presentations accepted by an existing
	// category.
	Recognized uint64

	// Exhausted is the number of degraded fallback assignments. A nonzero
	// value usually means the vigilance is too strict for MaxCategories.
	Exhausted uint64

	// Vigilance echoes the configured vigilance parameter.
	Vigilance float64
}

// Stats returns a snapshot of the network's statistics. Inspection never
// mutates the network.
func (n *Network) Stats() Stats {
	return Stats{
		TotalPatterns: n.total,
		Categories:    n.store.Len(),
		Created:       n.created,
		Recognized:    n.recognized,
		Exhausted:     n.exhausted,
		Vigilance:     n.opts.Vigilance,
	}
}

// Assignments returns the ordinals (0-based presentation order) of the
// patterns assigned to the given category, as a copy the caller may
// mutate freely. It returns nil if the category does not exist.
func (n *Network) Assignments(id int) *roaring.Bitmap {
	if id < 0 || id >= len(n.assignments) {
		return nil
	}
	return n.assignments[id].Clone()
}

// AssignmentCounts returns, per category id, how many patterns each
// category has absorbed.
func (n *Network) AssignmentCounts() []uint64 {
	out := make([]uint64, len(n.assignments))
	for id, bm := range n.assignments {
		out[id] = bm.GetCardinality()
	}
	return out
}
