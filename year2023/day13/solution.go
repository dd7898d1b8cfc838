// Package day13 solves 2023 day 13, "Point of Incidence".
package day13

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 13, Title: "Point of Incidence", Part1: Part1, Part2: Part2}
}

// mirrorRow returns the number of rows above a horizontal mirror line whose
// reflection differs in exactly `smudges` cells, or 0 if there is none.
func mirrorRow(g *grid.Grid, smudges int) int {
	for line := 1; line < g.Height; line++ {
		diff := 0
		for up, down := line-1, line; up >= 0 && down < g.Height && diff <= smudges; up, down = up-1, down+1 {
			a, b := g.Row(up), g.Row(down)
			for x := 0; x < len(a); x++ {
				if a[x] != b[x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return line
		}
	}
	return 0
}

// Summarize scores one pattern: columns left of a vertical mirror, or 100
// times the rows above a horizontal one.
func Summarize(g *grid.Grid, smudges int) (int, error) {
	if r := mirrorRow(g, smudges); r > 0 {
		return 100 * r, nil
	}
	if c := mirrorRow(g.Transpose(), smudges); c > 0 {
		return c, nil
	}
	return 0, puzzle.Malformed("pattern has no mirror with %d smudges:\n%s", smudges, g)
}

func total(in *puzzle.Input, smudges int) (int, error) {
	sum := 0
	for _, block := range in.Blocks() {
		g, err := grid.New(block)
		if err != nil {
			return 0, puzzle.Malformed("pattern: %v", err)
		}
		s, err := Summarize(g, smudges)
		if err != nil {
			return 0, err
		}
		sum += s
	}
	return sum, nil
}

// Part1 sums the scores of perfect mirrors.
func Part1(in *puzzle.Input) (int, error) { return total(in, 0) }

// Part2 sums the scores of mirrors that need exactly one smudge fixed.
func Part2(in *puzzle.Input) (int, error) { return total(in, 1) }
