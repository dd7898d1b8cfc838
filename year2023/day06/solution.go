// Package day06 solves 2023 day 6, "Wait For It".
package day06

import (
	"math"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 6, Title: "Wait For It", Part1: Part1, Part2: Part2}
}

// parse returns the text after "Time:" and "Distance:".
func parse(in *puzzle.Input) (string, string, error) {
	lines := in.NonEmptyLines()
	if len(lines) != 2 {
		return "", "", puzzle.Malformed("want Time and Distance lines, got %d lines", len(lines))
	}
	t, ok1 := strings.CutPrefix(lines[0], "Time:")
	d, ok2 := strings.CutPrefix(lines[1], "Distance:")
	if !ok1 || !ok2 {
		return "", "", puzzle.Malformed("want Time and Distance lines")
	}
	return t, d, nil
}

// Ways counts hold times h in [0, t] with h·(t−h) > record.
//
// The winning holds lie strictly between the roots of h² − t·h + record = 0;
// the float estimate is nudged to the exact integer bounds.
func Ways(t, record int) int {
	disc := float64(t*t - 4*record)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)
	lo := int(math.Floor((float64(t) - root) / 2))
	hi := int(math.Ceil((float64(t) + root) / 2))
	beats := func(h int) bool { return h*(t-h) > record }
	for lo <= t && !beats(lo) {
		lo++
	}
	for hi >= 0 && !beats(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// Part1 multiplies the number of ways to win each race.
func Part1(in *puzzle.Input) (int, error) {
	tText, dText, err := parse(in)
	if err != nil {
		return 0, err
	}
	times, err := puzzle.Fields(tText)
	if err != nil {
		return 0, err
	}
	dists, err := puzzle.Fields(dText)
	if err != nil {
		return 0, err
	}
	if len(times) != len(dists) {
		return 0, puzzle.Malformed("%d times but %d distances", len(times), len(dists))
	}
	product := 1
	for i := range times {
		product *= Ways(times[i], dists[i])
	}
	return product, nil
}

// Part2 ignores the spaces and treats each line as a single race.
func Part2(in *puzzle.Input) (int, error) {
	tText, dText, err := parse(in)
	if err != nil {
		return 0, err
	}
	t, err := puzzle.Atoi(strings.Join(strings.Fields(tText), ""))
	if err != nil {
		return 0, err
	}
	d, err := puzzle.Atoi(strings.Join(strings.Fields(dText), ""))
	if err != nil {
		return 0, err
	}
	return Ways(t, d), nil
}
