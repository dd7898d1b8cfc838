// Package day01 solves 2024 day 1, "Historian Hysteria".
package day01

import (
	"sort"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 1, Title: "Historian Hysteria", Part1: Part1, Part2: Part2}
}

// Parse splits the two whitespace-separated columns into lists.
func Parse(in *puzzle.Input) (left, right []int, err error) {
	for _, line := range in.NonEmptyLines() {
		f, err := puzzle.Fields(line)
		if err != nil {
			return nil, nil, err
		}
		if len(f) != 2 {
			return nil, nil, puzzle.Malformed("want two location IDs in %q", line)
		}
		left = append(left, f[0])
		right = append(right, f[1])
	}
	return left, right, nil
}

// Distance pairs the lists smallest to smallest and sums the gaps.
// Both slices are sorted in place.
func Distance(left, right []int) int {
	sort.Ints(left)
	sort.Ints(right)
	total := 0
	for i := range left {
		total += mathx.Abs(left[i] - right[i])
	}
	return total
}

// Similarity adds each left ID times its number of occurrences on the right.
func Similarity(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}
	total := 0
	for _, v := range left {
		total += v * counts[v]
	}
	return total
}

// Part1 returns the total distance between the lists.
func Part1(in *puzzle.Input) (int, error) {
	l, r, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return Distance(l, r), nil
}

// Part2 returns the similarity score.
func Part2(in *puzzle.Input) (int, error) {
	l, r, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return Similarity(l, r), nil
}
