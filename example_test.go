package artgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/pattern"
)

// Example demonstrates the match-reset-search loop on a tiny pattern set.
func Example() {
	net, err := artgo.New(4, artgo.WithVigilance(0.7), artgo.WithMaxCategories(2))
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range [][]float32{{1, 1, 0, 0}, {1, 1, 0, 0}, {0, 0, 1, 1}} {
		res, err := net.Present(v)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("category=%d new=%v match=%.1f\n", res.Category, res.New, res.Match)
	}

	stats := net.Stats()
	fmt.Printf("patterns=%d categories=%d recognized=%d\n", stats.TotalPatterns, stats.Categories, stats.Recognized)
	// Output:
	// category=0 new=true match=1.0
	// category=0 new=false match=1.0
	// category=1 new=true match=1.0
	// patterns=3 categories=2 recognized=1
}

// Example_generator demonstrates learning over seeded random patterns.
func Example_generator() {
	net, err := artgo.New(32, artgo.WithVigilance(0.5))
	if err != nil {
		log.Fatal(err)
	}

	gen := pattern.NewGenerator(32, 42)
	for _, p := range gen.Batch(100) {
		if _, err := net.PresentBinary(p); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(net.Stats().TotalPatterns)
	// Output: 100
}
