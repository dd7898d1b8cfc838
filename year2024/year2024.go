// Package year2024 registers every 2024 puzzle.
package year2024

import (
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2024/day01"
	"github.com/katalvlaran/advent/year2024/day02"
	"github.com/katalvlaran/advent/year2024/day03"
	"github.com/katalvlaran/advent/year2024/day04"
	"github.com/katalvlaran/advent/year2024/day05"
	"github.com/katalvlaran/advent/year2024/day06"
)

// Solutions lists the 2024 days in calendar order.
func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		day01.Solution(),
		day02.Solution(),
		day03.Solution(),
		day04.Solution(),
		day05.Solution(),
		day06.Solution(),
	}
}

// Register adds every 2024 day to r. It panics on a duplicate date.
func Register(r *puzzle.Registry) {
	r.MustRegister(Solutions()...)
}
