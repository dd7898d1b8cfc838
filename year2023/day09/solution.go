// Package day09 solves 2023 day 9, "Mirage Maintenance".
package day09

import (
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 9, Title: "Mirage Maintenance", Part1: Part1, Part2: Part2}
}

// Parse reads one history per line.
func Parse(in *puzzle.Input) ([][]int, error) {
	var out [][]int
	for _, line := range in.NonEmptyLines() {
		seq, err := puzzle.Fields(line)
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}

// Next extrapolates one value past the end of seq by summing the last
// element of every difference row. An empty sequence extrapolates to 0.
func Next(seq []int) int {
	row := append([]int(nil), seq...)
	sum := 0
	for len(row) > 0 && !allZero(row) {
		sum += row[len(row)-1]
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return sum
}

// Prev extrapolates one value before the start of seq.
func Prev(seq []int) int {
	rev := make([]int, len(seq))
	for i, v := range seq {
		rev[len(seq)-1-i] = v
	}
	return Next(rev)
}

func allZero(xs []int) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

func sumOf(in *puzzle.Input, f func([]int) int) (int, error) {
	seqs, err := Parse(in)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range seqs {
		total += f(s)
	}
	return total, nil
}

// Part1 sums the forward extrapolations.
func Part1(in *puzzle.Input) (int, error) { return sumOf(in, Next) }

// Part2 sums the backward extrapolations.
func Part2(in *puzzle.Input) (int, error) { return sumOf(in, Prev) }
