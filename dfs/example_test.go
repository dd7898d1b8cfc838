package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/graph"
)

// ExampleTopologicalSort orders a small build pipeline.
func ExampleTopologicalSort() {
	g := graph.New(graph.WithDirected(true))
	_ = g.AddEdge("fetch", "build", 0)
	_ = g.AddEdge("build", "test", 0)
	_ = g.AddEdge("build", "package", 0)
	_ = g.AddEdge("test", "release", 0)
	_ = g.AddEdge("package", "release", 0)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [fetch build test package release]
}
