// Package day03 solves 2024 day 3, "Mull It Over".
package day03

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 3, Title: "Mull It Over", Part1: Part1, Part2: Part2}
}

var instr = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Scan adds up every well-formed mul(a,b) in memory. With conditionals set,
// don't() disables later multiplications until the next do(). The enabled
// state carries over line breaks.
func Scan(memory string, conditionals bool) int {
	total, enabled := 0, true
	for _, m := range instr.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditionals {
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				total += a * b
			}
		}
	}
	return total
}

// Part1 sums every multiplication.
func Part1(in *puzzle.Input) (int, error) {
	return Scan(in.Raw(), false), nil
}

// Part2 sums only enabled multiplications.
func Part2(in *puzzle.Input) (int, error) {
	return Scan(in.Raw(), true), nil
}
