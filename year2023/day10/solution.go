// Package day10 solves 2023 day 10, "Pipe Maze".
package day10

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 10, Title: "Pipe Maze", Part1: Part1, Part2: Part2}
}

// openings lists the two directions each pipe connects.
var openings = map[rune][2]grid.Direction{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

func opens(r rune, d grid.Direction) bool {
	o, ok := openings[r]
	return ok && (o[0] == d || o[1] == d)
}

// Loop returns every tile of the main loop in walking order, starting at S.
func Loop(in *puzzle.Input) ([]grid.Point, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("maze: %v", err)
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, puzzle.Malformed("no start tile")
	}

	// S connects to neighbors whose pipe opens back towards it.
	var exits []grid.Direction
	for _, d := range grid.Directions {
		if opens(g.At(start.Add(d.Delta())), d.Reverse()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		return nil, puzzle.Malformed("start tile has %d connections, want 2", len(exits))
	}

	loop := []grid.Point{start}
	pos, heading := start.Add(exits[0].Delta()), exits[0]
	for pos != start {
		loop = append(loop, pos)
		o, ok := openings[g.At(pos)]
		if !ok || (o[0] != heading.Reverse() && o[1] != heading.Reverse()) {
			return nil, puzzle.Malformed("loop broken at %v", pos)
		}
		if o[0] == heading.Reverse() {
			heading = o[1]
		} else {
			heading = o[0]
		}
		pos = pos.Add(heading.Delta())
		if len(loop) > g.Width*g.Height {
			return nil, puzzle.Malformed("loop does not close")
		}
	}
	return loop, nil
}

// Part1 returns the distance to the tile farthest along the loop.
func Part1(in *puzzle.Input) (int, error) {
	loop, err := Loop(in)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Part2 counts tiles enclosed by the loop: the loop tiles are the polygon
// vertices, so Pick's theorem on the shoelace area gives the interior.
func Part2(in *puzzle.Input) (int, error) {
	loop, err := Loop(in)
	if err != nil {
		return 0, err
	}
	return grid.InteriorPoints(grid.ShoelaceArea(loop), len(loop)), nil
}
