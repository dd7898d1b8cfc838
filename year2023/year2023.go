// Package year2023 registers every 2023 puzzle.
package year2023

import (
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/year2023/day01"
	"github.com/katalvlaran/advent/year2023/day02"
	"github.com/katalvlaran/advent/year2023/day03"
	"github.com/katalvlaran/advent/year2023/day04"
	"github.com/katalvlaran/advent/year2023/day05"
	"github.com/katalvlaran/advent/year2023/day06"
	"github.com/katalvlaran/advent/year2023/day07"
	"github.com/katalvlaran/advent/year2023/day08"
	"github.com/katalvlaran/advent/year2023/day09"
	"github.com/katalvlaran/advent/year2023/day10"
	"github.com/katalvlaran/advent/year2023/day11"
	"github.com/katalvlaran/advent/year2023/day12"
	"github.com/katalvlaran/advent/year2023/day13"
	"github.com/katalvlaran/advent/year2023/day14"
	"github.com/katalvlaran/advent/year2023/day15"
	"github.com/katalvlaran/advent/year2023/day16"
	"github.com/katalvlaran/advent/year2023/day17"
	"github.com/katalvlaran/advent/year2023/day18"
	"github.com/katalvlaran/advent/year2023/day19"
	"github.com/katalvlaran/advent/year2023/day20"
	"github.com/katalvlaran/advent/year2023/day21"
	"github.com/katalvlaran/advent/year2023/day22"
	"github.com/katalvlaran/advent/year2023/day23"
	"github.com/katalvlaran/advent/year2023/day24"
	"github.com/katalvlaran/advent/year2023/day25"
)

// Solutions lists the 2023 days in calendar order.
func Solutions() []puzzle.Solution {
	return []puzzle.Solution{
		day01.Solution(),
		day02.Solution(),
		day03.Solution(),
		day04.Solution(),
		day05.Solution(),
		day06.Solution(),
		day07.Solution(),
		day08.Solution(),
		day09.Solution(),
		day10.Solution(),
		day11.Solution(),
		day12.Solution(),
		day13.Solution(),
		day14.Solution(),
		day15.Solution(),
		day16.Solution(),
		day17.Solution(),
		day18.Solution(),
		day19.Solution(),
		day20.Solution(),
		day21.Solution(),
		day22.Solution(),
		day23.Solution(),
		day24.Solution(),
		day25.Solution(),
	}
}

// Register adds every 2023 day to r. It panics on a duplicate date.
func Register(r *puzzle.Registry) {
	r.MustRegister(Solutions()...)
}
