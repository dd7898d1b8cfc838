// Package day11 solves 2023 day 11, "Cosmic Expansion".
package day11

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 11, Title: "Cosmic Expansion", Part1: Part1, Part2: Part2}
}

// SumDistances returns the sum of Manhattan distances between every pair of
// galaxies after each empty row and column grows to `factor` copies.
func SumDistances(in *puzzle.Input, factor int) (int, error) {
	if factor < 1 {
		return 0, puzzle.Malformed("expansion factor %d", factor)
	}
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return 0, puzzle.Malformed("image: %v", err)
	}
	galaxies := g.FindAll(func(r rune) bool { return r == '#' })

	usedX := make([]bool, g.Width)
	usedY := make([]bool, g.Height)
	for _, p := range galaxies {
		usedX[p.X], usedY[p.Y] = true, true
	}
	// prefix[i] = expanded coordinate of original index i
	expand := func(used []bool) []int {
		out := make([]int, len(used))
		pos := 0
		for i, u := range used {
			out[i] = pos
			if u {
				pos++
			} else {
				pos += factor
			}
		}
		return out
	}
	ex, ey := expand(usedX), expand(usedY)

	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += mathx.Abs(ex[a.X]-ex[b.X]) + mathx.Abs(ey[a.Y]-ey[b.Y])
		}
	}
	return total, nil
}

// Part1 uses an expansion factor of 2.
func Part1(in *puzzle.Input) (int, error) { return SumDistances(in, 2) }

// Part2 uses an expansion factor of one million.
func Part2(in *puzzle.Input) (int, error) { return SumDistances(in, 1_000_000) }
