// Package day06 solves 2024 day 6, "Guard Gallivant".
package day06

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 6, Title: "Guard Gallivant", Part1: Part1, Part2: Part2}
}

const (
	obstacle = '#'
	guard    = '^'
)

type pose struct {
	At  grid.Point
	Dir grid.Direction
}

// Lab is the map with the guard's starting position.
type Lab struct {
	g     *grid.Grid
	Start grid.Point
}

// Parse reads the map; exactly one guard '^' must be present.
func Parse(in *puzzle.Input) (*Lab, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("lab map: %v", err)
	}
	guards := g.FindAll(func(r rune) bool { return r == guard })
	if len(guards) != 1 {
		return nil, puzzle.Malformed("want one guard, found %d", len(guards))
	}
	return &Lab{g: g, Start: guards[0]}, nil
}

// Patrol walks the guard until it leaves the map and returns the cells it
// covered in first-visit order. loops is true if the guard instead repeats
// a position and heading; extra, if in bounds, is treated as an obstacle.
//
// Complexity: O(W×H) steps, since each cell is seen with at most four headings.
func (l *Lab) Patrol(extra grid.Point) (visited []grid.Point, loops bool) {
	seen := make(map[pose]bool)
	cells := make(map[grid.Point]bool)
	p := pose{At: l.Start, Dir: grid.Up}
	for {
		if seen[p] {
			return visited, true
		}
		seen[p] = true
		if !cells[p.At] {
			cells[p.At] = true
			visited = append(visited, p.At)
		}
		ahead := p.At.Move(p.Dir, 1)
		switch {
		case !l.g.InBounds(ahead):
			return visited, false
		case ahead == extra || l.g.At(ahead) == obstacle:
			p.Dir = p.Dir.TurnRight()
		default:
			p.At = ahead
		}
	}
}

// LoopObstructions counts cells where one new obstacle traps the guard.
// Only cells on the original route can change it, and the guard's own
// cell is excluded.
func (l *Lab) LoopObstructions() int {
	route, _ := l.Patrol(grid.Pt(-1, -1))
	n := 0
	for _, c := range route {
		if c == l.Start {
			continue
		}
		if _, loops := l.Patrol(c); loops {
			n++
		}
	}
	return n
}

// Part1 counts distinct positions the guard visits.
func Part1(in *puzzle.Input) (int, error) {
	l, err := Parse(in)
	if err != nil {
		return 0, err
	}
	route, loops := l.Patrol(grid.Pt(-1, -1))
	if loops {
		return 0, puzzle.Malformed("guard never leaves the lab")
	}
	return len(route), nil
}

// Part2 counts positions for a looping obstruction.
func Part2(in *puzzle.Input) (int, error) {
	l, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return l.LoopObstructions(), nil
}
