// Package day16 solves 2023 day 16, "The Floor Will Be Lava".
package day16

import (
	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 16, Title: "The Floor Will Be Lava", Part1: Part1, Part2: Part2}
}

// Beam is a beam entering tile At while heading Dir.
type Beam struct {
	At  grid.Point
	Dir grid.Direction
}

// outgoing returns the headings a beam leaves tile r with.
func outgoing(r rune, d grid.Direction) []grid.Direction {
	switch r {
	case '/':
		return []grid.Direction{[4]grid.Direction{grid.Right, grid.Up, grid.Left, grid.Down}[d]}
	case '\\':
		return []grid.Direction{[4]grid.Direction{grid.Left, grid.Down, grid.Right, grid.Up}[d]}
	case '|':
		if d.Horizontal() {
			return []grid.Direction{grid.Up, grid.Down}
		}
	case '-':
		if !d.Horizontal() {
			return []grid.Direction{grid.Left, grid.Right}
		}
	}
	return []grid.Direction{d}
}

// Energized counts the tiles a beam passes through, starting with the
// given beam. Splitters fan the beam out; loops are cut by the visited set.
func Energized(g *grid.Grid, start Beam) (int, error) {
	res, err := bfs.Walk([]Beam{start}, func(b Beam) []Beam {
		var out []Beam
		for _, d := range outgoing(g.At(b.At), b.Dir) {
			if next := b.At.Add(d.Delta()); g.InBounds(next) {
				out = append(out, Beam{next, d})
			}
		}
		return out
	})
	if err != nil {
		return 0, err
	}
	tiles := make(map[grid.Point]struct{}, len(res.Order))
	for _, b := range res.Order {
		tiles[b.At] = struct{}{}
	}
	return len(tiles), nil
}

func parse(in *puzzle.Input) (*grid.Grid, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("contraption: %v", err)
	}
	return g, nil
}

// Part1 energizes from the top-left corner heading right.
func Part1(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	return Energized(g, Beam{grid.Pt(0, 0), grid.Right})
}

// Part2 tries every edge tile, beaming inward, and keeps the best.
func Part2(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	var starts []Beam
	for x := 0; x < g.Width; x++ {
		starts = append(starts, Beam{grid.Pt(x, 0), grid.Down}, Beam{grid.Pt(x, g.Height-1), grid.Up})
	}
	for y := 0; y < g.Height; y++ {
		starts = append(starts, Beam{grid.Pt(0, y), grid.Right}, Beam{grid.Pt(g.Width-1, y), grid.Left})
	}
	best := 0
	for _, s := range starts {
		n, err := Energized(g, s)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}
	return best, nil
}
