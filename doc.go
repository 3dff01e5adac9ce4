// Package artgo implements the ART-1 (Adaptive Resonance Theory 1)
// unsupervised competitive-learning algorithm for binary patterns.
//
// An ART-1 network incrementally partitions a stream of binary input
// vectors into categories. Each category stores a prototype; a pattern is
// assigned to the first category whose prototype it matches within the
// vigilance tolerance, and a new category is created when no existing one
// qualifies.
//
// # Quick Start
//
//	net, _ := artgo.New(64, artgo.WithVigilance(0.7))
//
//	res, _ := net.Present(vector) // []float32, binarized at > 0.5
//	fmt.Println(res.Category, res.New, res.Match)
//
//	stats := net.Stats()
//	fmt.Println(stats.Categories, stats.Recognized)
//
// # Match-Reset-Search
//
// Each presentation runs a bounded search loop: the non-inhibited category
// with the highest activation is tried first, but only vigilance decides
// acceptance. A rejected category is inhibited for the remainder of that
// single presentation and the search continues; when every candidate is
// rejected a new category is created from the pattern. The loop terminates
// in at most len(store)+1 iterations.
//
// # Learning Modes
//
//   - Fast learning (rate 1.0, the ART-1 canonical case): a resonating
//     category's prototype becomes the exact intersection of itself and
//     the pattern, so its active set only ever shrinks.
//   - Slow learning (rate < 1.0): the prototype moves toward the
//     intersection by convex interpolation.
//
// # Concurrency
//
// A Network is exclusively owned by a single caller; Present mutates the
// category store and must not be called concurrently. Independent networks
// share nothing and may run in parallel freely.
package artgo
