// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/advent/grid"
)

// ExampleGrid_ConnectedComponents counts lakes on a tiny map.
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.New([]string{
		"~~.#",
		"~..#",
		"..~~",
	})
	lakes := g.ConnectedComponents(func(r rune) bool { return r == '~' }, grid.Conn4)
	for i, lake := range lakes {
		fmt.Printf("lake %d: %v\n", i, lake)
	}
	// Output:
	// lake 0: [(0,0) (1,0) (0,1)]
	// lake 1: [(2,2) (3,2)]
}

// ExampleTotalPoints counts every lattice cell dug out by a closed trench.
func ExampleTotalPoints() {
	trench := []grid.Point{{0, 0}, {6, 0}, {6, 5}, {0, 5}}
	fmt.Println(grid.TotalPoints(trench))
	// Output: 42
}
