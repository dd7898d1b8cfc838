package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent/flow"
	"github.com/katalvlaran/advent/graph"
)

// ExampleMinCut splits two triangles joined by a single bridge.
func ExampleMinCut() {
	g := graph.New()
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"},
		{"c", "x"},
	} {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	mf, res, err := flow.EdmondsKarp(context.Background(), g, "a", "z", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	side, _ := flow.MinCut(res, "a")
	fmt.Println(mf, side)
	// Output:
	// 1 [a b c]
}
