// Package day04 solves 2024 day 4, "Ceres Search".
package day04

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 4, Title: "Ceres Search", Part1: Part1, Part2: Part2}
}

// Word is the string hunted for in part 1.
const Word = "XMAS"

func parse(in *puzzle.Input) (*grid.Grid, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("word search: %v", err)
	}
	return g, nil
}

// spells reports whether word reads from p stepping by d.
func spells(g *grid.Grid, p, d grid.Point, word string) bool {
	for _, r := range word {
		if g.At(p) != r {
			return false
		}
		p = p.Add(d)
	}
	return true
}

// CountWord counts occurrences of word in any of the eight directions,
// overlaps included.
func CountWord(g *grid.Grid, word string) int {
	if word == "" {
		return 0
	}
	first := []rune(word)[0]
	n := 0
	for _, p := range g.FindAll(func(r rune) bool { return r == first }) {
		for _, d := range grid.Conn8.Offsets() {
			if spells(g, p, d, word) {
				n++
			}
		}
	}
	return n
}

// CountCrosses counts A cells whose two diagonals both read MAS in
// either direction.
func CountCrosses(g *grid.Grid) int {
	n := 0
	for _, p := range g.FindAll(func(r rune) bool { return r == 'A' }) {
		if mas(g, p, grid.Pt(1, 1)) && mas(g, p, grid.Pt(1, -1)) {
			n++
		}
	}
	return n
}

// mas checks the diagonal through center along d.
func mas(g *grid.Grid, center, d grid.Point) bool {
	a, b := g.At(center.Sub(d)), g.At(center.Add(d))
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

// Part1 counts XMAS occurrences.
func Part1(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	return CountWord(g, Word), nil
}

// Part2 counts X-MAS crosses.
func Part2(in *puzzle.Input) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	return CountCrosses(g), nil
}
