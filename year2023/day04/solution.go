// Package day04 solves 2023 day 4, "Scratchcards".
package day04

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 4, Title: "Scratchcards", Part1: Part1, Part2: Part2}
}

// Matches parses every card and returns how many of its numbers are winning.
func Matches(in *puzzle.Input) ([]int, error) {
	var out []int
	for _, line := range in.NonEmptyLines() {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformed("card line %q", line)
		}
		winText, haveText, ok := strings.Cut(body, "|")
		if !ok {
			return nil, puzzle.Malformed("card without separator %q", line)
		}
		win, err := puzzle.Fields(winText)
		if err != nil {
			return nil, err
		}
		have, err := puzzle.Fields(haveText)
		if err != nil {
			return nil, err
		}
		winning := make(map[int]bool, len(win))
		for _, n := range win {
			winning[n] = true
		}
		count := 0
		for _, n := range have {
			if winning[n] {
				count++
			}
		}
		out = append(out, count)
	}
	return out, nil
}

// Part1 scores each card 2^(matches-1) and sums the scores.
func Part1(in *puzzle.Input) (int, error) {
	matches, err := Matches(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, m := range matches {
		if m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return sum, nil
}

// Part2 counts cards after each card with m matches copies the next m cards,
// once per copy of itself.
func Part2(in *puzzle.Input) (int, error) {
	matches, err := Matches(in)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
