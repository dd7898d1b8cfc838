// Package day17 solves 2023 day 17, "Clumsy Crucible".
package day17

import (
	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 17, Title: "Clumsy Crucible", Part1: Part1, Part2: Part2}
}

// Crucible limits how far a crucible moves in one direction: it may turn
// only after MinRun straight blocks and must turn after MaxRun.
type Crucible struct {
	MinRun, MaxRun int
}

var (
	// Standard is the part 1 crucible.
	Standard = Crucible{MinRun: 0, MaxRun: 3}
	// Ultra is the part 2 crucible.
	Ultra = Crucible{MinRun: 4, MaxRun: 10}
)

type state struct {
	at  grid.Point
	dir grid.Direction
	run int
}

// MinHeatLoss returns the least heat lost moving from the top-left block to
// the bottom-right block. The starting block's loss is not counted.
func MinHeatLoss(g *grid.Grid, c Crucible) (int, error) {
	end := grid.Pt(g.Width-1, g.Height-1)
	next := func(s state) []dijkstra.Edge[state] {
		var out []dijkstra.Edge[state]
		for _, d := range []grid.Direction{s.dir, s.dir.TurnLeft(), s.dir.TurnRight()} {
			run := 1
			if d == s.dir {
				if s.run >= c.MaxRun {
					continue
				}
				run = s.run + 1
			} else if s.run < c.MinRun {
				continue
			}
			p := s.at.Add(d.Delta())
			if !g.InBounds(p) {
				continue
			}
			out = append(out, dijkstra.Edge[state]{To: state{p, d, run}, Cost: int(g.At(p) - '0')})
		}
		return out
	}
	goal := func(s state) bool { return s.at == end && s.run >= c.MinRun }

	sources := []state{{grid.Pt(0, 0), grid.Right, 0}, {grid.Pt(0, 0), grid.Down, 0}}
	p, err := dijkstra.Search(sources, next, goal)
	if err != nil {
		return 0, err
	}
	return p.Cost, nil
}

func parse(in *puzzle.Input) (*grid.Grid, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("city map: %v", err)
	}
	if bad := g.FindAll(func(r rune) bool { return r < '0' || r > '9' }); len(bad) > 0 {
		return nil, puzzle.Malformed("heat loss %q at %v", g.At(bad[0]), bad[0])
	}
	return g, nil
}

func solve(in *puzzle.Input, c Crucible) (int, error) {
	g, err := parse(in)
	if err != nil {
		return 0, err
	}
	return MinHeatLoss(g, c)
}

// Part1 uses the standard crucible.
func Part1(in *puzzle.Input) (int, error) { return solve(in, Standard) }

// Part2 uses the ultra crucible.
func Part2(in *puzzle.Input) (int, error) { return solve(in, Ultra) }
