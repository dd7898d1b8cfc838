// Package day21 solves 2023 day 21, "Step Counter".
package day21

import (
	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 21, Title: "Step Counter", Part1: Part1, Part2: Part2}
}

const (
	// Part1Steps is the step budget on the finite garden.
	Part1Steps = 64
	// Part2Steps is the step budget on the infinitely tiled garden.
	Part2Steps = 26501365
)

// Garden is the map and the starting plot.
type Garden struct {
	g     *grid.Grid
	start grid.Point
}

// Parse reads the garden map; exactly one S marks the start.
func Parse(in *puzzle.Input) (*Garden, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("garden: %v", err)
	}
	starts := g.FindAll(func(r rune) bool { return r == 'S' })
	if len(starts) != 1 {
		return nil, puzzle.Malformed("want one start, found %d", len(starts))
	}
	return &Garden{g: g, start: starts[0]}, nil
}

// count walks at most steps moves and counts plots reachable in exactly
// steps moves: a plot reached at depth d can be revisited every two moves,
// so it counts when d has the same parity as steps.
func (gd *Garden) count(steps int, infinite bool) (int, error) {
	if steps < 0 {
		return 0, puzzle.Malformed("negative step count %d", steps)
	}
	if steps == 0 {
		return 1, nil
	}
	open := func(p grid.Point) bool {
		if infinite {
			p = gd.g.Wrap(p)
		} else if !gd.g.InBounds(p) {
			return false
		}
		return gd.g.At(p) != '#'
	}
	res, err := bfs.Walk([]grid.Point{gd.start}, func(p grid.Point) []grid.Point {
		var out []grid.Point
		for _, d := range grid.Directions {
			if q := p.Add(d.Delta()); open(q) {
				out = append(out, q)
			}
		}
		return out
	}, bfs.WithMaxDepth[grid.Point](steps))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range res.Depth {
		if d%2 == steps%2 {
			n++
		}
	}
	return n, nil
}

// Reachable counts plots reachable in exactly steps moves on the finite map.
func (gd *Garden) Reachable(steps int) (int, error) { return gd.count(steps, false) }

// ReachableInfinite counts plots reachable in exactly steps moves when the
// map repeats in every direction.
func (gd *Garden) ReachableInfinite(steps int) (int, error) { return gd.count(steps, true) }

// Extrapolate evaluates at n the quadratic through (0, f[0]), (1, f[1]),
// (2, f[2]) using Newton's forward differences.
func Extrapolate(f [3]int, n int) int {
	d1 := f[1] - f[0]
	d2 := f[2] - 2*f[1] + f[0]
	return f[0] + n*d1 + n*(n-1)/2*d2
}

// Part1 counts plots reachable in exactly 64 steps.
func Part1(in *puzzle.Input) (int, error) {
	gd, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return gd.Reachable(Part1Steps)
}

// Part2 counts plots reachable in exactly 26501365 steps on the tiled map.
//
// On a square map the count grows quadratically in the number of whole
// tiles crossed, so three samples at r, r+w and r+2w (w the width, r the
// remainder of the step count) determine it.
func Part2(in *puzzle.Input) (int, error) {
	gd, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return gd.Extrapolated(Part2Steps)
}

// Extrapolated counts plots reachable in exactly steps moves on the tiled
// map via quadratic extrapolation. The map must be square.
func (gd *Garden) Extrapolated(steps int) (int, error) {
	w := gd.g.Width
	if gd.g.Height != w {
		return 0, puzzle.Malformed("garden must be square, got %dx%d", w, gd.g.Height)
	}
	r := steps % w
	var f [3]int
	for i := range f {
		n, err := gd.ReachableInfinite(r + i*w)
		if err != nil {
			return 0, err
		}
		f[i] = n
	}
	return Extrapolate(f, steps/w), nil
}
