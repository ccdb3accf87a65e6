package generate_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
)

// ExampleApply carves a 4×6 maze with Wilson's algorithm and reports the
// spanning-tree invariants.
func ExampleApply() {
	g, _ := grid.New(4, 6)
	if err := generate.Apply(g, generate.Wilsons, generate.WithSeed(42)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("passages:", g.LinkCount())
	fmt.Println("perfect:", g.CheckPerfect() == nil)

	// Output:
	// passages: 23
	// perfect: true
}

// ExampleParseAlgorithm resolves a human-typed algorithm name.
func ExampleParseAlgorithm() {
	alg, err := generate.ParseAlgorithm("Recursive Backtracker")
	fmt.Println(alg, err)

	// Output:
	// recursive-backtracker <nil>
}
