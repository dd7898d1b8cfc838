package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
)

// ExampleWalk demonstrates shortest distances through a small maze.
func ExampleWalk() {
	g, _ := grid.New([]string{
		"S.#",
		".##",
		"..E",
	})
	start, _ := g.Find('S')
	end, _ := g.Find('E')

	res, err := bfs.Walk([]grid.Point{start}, func(p grid.Point) []grid.Point {
		var out []grid.Point
		for _, nb := range g.Neighbors(p, grid.Conn4) {
			if g.At(nb) != '#' {
				out = append(out, nb)
			}
		}
		return out
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Depth[end])
	// Output:
	// 4
}
