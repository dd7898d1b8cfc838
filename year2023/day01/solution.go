// Package day01 solves 2023 day 1, "Trebuchet?!": recovering calibration
// values from the first and last digit of each line.
package day01

import (
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 1, Title: "Trebuchet?!", Part1: Part1, Part2: Part2}
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums the two-digit values formed by each line's first and last digit.
// Lines without digits contribute nothing.
func Part1(in *puzzle.Input) (int, error) {
	return calibrate(in, false), nil
}

// Part2 also accepts spelled-out digits; spellings may overlap ("twone").
func Part2(in *puzzle.Input) (int, error) {
	return calibrate(in, true), nil
}

func calibrate(in *puzzle.Input, spelled bool) int {
	log := in.Logger()
	sum := 0
	for _, line := range in.NonEmptyLines() {
		digits := scanDigits(line, spelled)
		if len(digits) == 0 {
			log.Debug("no digits", zap.String("line", line))
			continue
		}
		v := digits[0]*10 + digits[len(digits)-1]
		log.Debug("calibration", zap.String("line", line), zap.Int("value", v))
		sum += v
	}
	return sum
}

// scanDigits lists every digit in line, left to right. With spelled set,
// a word starting at any index counts, so overlapping words all match.
func scanDigits(line string, spelled bool) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for d, w := range words {
			if strings.HasPrefix(line[i:], w) {
				out = append(out, d+1)
				break
			}
		}
	}
	return out
}
