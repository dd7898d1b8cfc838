// Package day02 solves 2024 day 2, "Red-Nosed Reports".
package day02

import (
	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 2, Title: "Red-Nosed Reports", Part1: Part1, Part2: Part2}
}

// Allowed step between adjacent levels of a safe report.
const (
	MinStep = 1
	MaxStep = 3
)

// Parse reads one report of levels per line.
func Parse(in *puzzle.Input) ([][]int, error) {
	var reports [][]int
	for _, line := range in.NonEmptyLines() {
		levels, err := puzzle.Fields(line)
		if err != nil {
			return nil, err
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// Safe reports whether levels move strictly in one direction with every
// step between MinStep and MaxStep.
func Safe(levels []int) bool {
	dir := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if step := mathx.Abs(d); step < MinStep || step > MaxStep {
			return false
		}
		s := mathx.Sign(d)
		if dir != 0 && s != dir {
			return false
		}
		dir = s
	}
	return true
}

// Dampened reports whether levels are safe with at most one level removed.
func Dampened(levels []int) bool {
	if Safe(levels) {
		return true
	}
	sub := make([]int, 0, len(levels)-1)
	for skip := range levels {
		sub = sub[:0]
		sub = append(sub, levels[:skip]...)
		sub = append(sub, levels[skip+1:]...)
		if Safe(sub) {
			return true
		}
	}
	return false
}

func count(in *puzzle.Input, ok func([]int) bool) (int, error) {
	reports, err := Parse(in)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range reports {
		if ok(r) {
			n++
		}
	}
	return n, nil
}

// Part1 counts safe reports.
func Part1(in *puzzle.Input) (int, error) { return count(in, Safe) }

// Part2 counts reports made safe by the Problem Dampener.
func Part2(in *puzzle.Input) (int, error) { return count(in, Dampened) }
