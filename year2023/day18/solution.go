// Package day18 solves 2023 day 18, "Lavaduct Lagoon".
package day18

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 18, Title: "Lavaduct Lagoon", Part1: Part1, Part2: Part2}
}

// Step is one dig instruction.
type Step struct {
	Dir grid.Direction
	Len int
}

// hexDirs maps the last hex digit of a color to a direction.
var hexDirs = [4]grid.Direction{grid.Right, grid.Down, grid.Left, grid.Up}

// Parse reads "R 6 (#70c710)" lines. With fromColor, the direction and
// length come from the color code instead: five hex digits of length and
// one digit of direction.
func Parse(in *puzzle.Input, fromColor bool) ([]Step, error) {
	var steps []Step
	for _, line := range in.NonEmptyLines() {
		f := strings.Fields(line)
		if len(f) != 3 || len(f[0]) != 1 {
			return nil, puzzle.Malformed("dig step %q", line)
		}
		if !fromColor {
			d, err := grid.ParseDirection(rune(f[0][0]))
			if err != nil {
				return nil, puzzle.Malformed("%v in %q", err, line)
			}
			n, err := puzzle.Atoi(f[1])
			if err != nil {
				return nil, err
			}
			steps = append(steps, Step{d, n})
			continue
		}
		color := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
		if len(color) != 6 {
			return nil, puzzle.Malformed("color %q", f[2])
		}
		n, err := strconv.ParseInt(color[:5], 16, 64)
		if err != nil {
			return nil, puzzle.Malformed("color %q", f[2])
		}
		di := color[5] - '0'
		if di > 3 {
			return nil, puzzle.Malformed("color direction %q", f[2])
		}
		steps = append(steps, Step{hexDirs[di], int(n)})
	}
	return steps, nil
}

// Volume returns the number of cubic meters dug out: the trench plus the
// interior of the loop it forms.
func Volume(steps []Step) int {
	vertices := make([]grid.Point, 0, len(steps))
	p := grid.Pt(0, 0)
	for _, s := range steps {
		p = p.Move(s.Dir, s.Len)
		vertices = append(vertices, p)
	}
	return grid.TotalPoints(vertices)
}

func solve(in *puzzle.Input, fromColor bool) (int, error) {
	steps, err := Parse(in, fromColor)
	if err != nil {
		return 0, err
	}
	if len(steps) == 0 {
		return 0, puzzle.Malformed("empty dig plan")
	}
	return Volume(steps), nil
}

// Part1 follows the plain instructions.
func Part1(in *puzzle.Input) (int, error) { return solve(in, false) }

// Part2 follows the instructions hidden in the color codes.
func Part2(in *puzzle.Input) (int, error) { return solve(in, true) }
