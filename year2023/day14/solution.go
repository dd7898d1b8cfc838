// Package day14 solves 2023 day 14, "Parabolic Reflector Dish".
package day14

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 14, Title: "Parabolic Reflector Dish", Part1: Part1, Part2: Part2}
}

// SpinCycles is the number of spin cycles in part 2.
const SpinCycles = 1_000_000_000

func parse(in *puzzle.Input) (*grid.Grid, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("platform: %v", err)
	}
	return g, nil
}

// TiltNorth rolls every round rock ('O') up until it hits a cube rock
// ('#'), another rock, or the edge. The grid is modified in place.
func TiltNorth(g *grid.Grid) {
	for x := 0; x < g.Width; x++ {
		free := 0
		for y := 0; y < g.Height; y++ {
			switch g.At(grid.Pt(x, y)) {
			case '#':
				free = y + 1
			case 'O':
				if free != y {
					g.Set(grid.Pt(x, free), 'O')
					g.Set(grid.Pt(x, y), '.')
				}
				free++
			}
		}
	}
}

// Spin runs one cycle: tilt north, west, south, then east. Rotating the
// grid clockwise after each tilt brings the next side to the top.
func Spin(g *grid.Grid) *grid.Grid {
	for range 4 {
		TiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

// Load sums, for each round rock, its distance from the south edge.
func Load(g *grid.Grid) int {
	total := 0
	for _, p := range g.FindAll(func(r rune) bool { return r == 'O' }) {
		total += g.Height - p.Y
	}
	return total
}

// Part1 returns the north load after a single tilt north.
func Part1(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	TiltNorth(g)
	return Load(g), nil
}

// Part2 returns the north load after SpinCycles cycles. The platform
// settles into a loop; once a layout repeats, the remaining cycles are
// skipped modulo the loop length.
func Part2(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	seen := map[string]int{g.String(): 0}
	for i := 1; i <= SpinCycles; i++ {
		g = Spin(g)
		key := g.String()
		if first, ok := seen[key]; ok {
			period := i - first
			remaining := (SpinCycles - i) % period
			for range remaining {
				g = Spin(g)
			}
			break
		}
		seen[key] = i
	}
	return Load(g), nil
}
