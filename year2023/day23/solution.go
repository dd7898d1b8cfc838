// Package day23 solves 2023 day 23, "A Long Walk".
package day23

import (
	"strings"

	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 23, Title: "A Long Walk", Part1: Part1, Part2: Part2}
}

// Trails is the parsed map with its entry and exit.
type Trails struct {
	g          *grid.Grid
	start, end grid.Point
}

// Parse reads the map; the start is the single gap in the top row and the
// end the single gap in the bottom row.
func Parse(in *puzzle.Input) (*Trails, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("trail map: %v", err)
	}
	top, bottom := strings.IndexByte(g.Row(0), '.'), strings.IndexByte(g.Row(g.Height-1), '.')
	if top < 0 || bottom < 0 || g.Height < 2 {
		return nil, puzzle.Malformed("trail map needs an entry and an exit")
	}
	return &Trails{g: g, start: grid.Pt(top, 0), end: grid.Pt(bottom, g.Height-1)}, nil
}

func (t *Trails) open(p grid.Point) bool {
	return t.g.InBounds(p) && t.g.At(p) != '#'
}

// canStep reports whether a hiker may move from p in direction d. Slopes
// force the direction both when standing on one and when stepping onto one.
func (t *Trails) canStep(p grid.Point, d grid.Direction, slippery bool) bool {
	q := p.Add(d.Delta())
	if !t.open(q) {
		return false
	}
	if !slippery {
		return true
	}
	for _, c := range []rune{t.g.At(p), t.g.At(q)} {
		if c == '.' {
			continue
		}
		if sd, err := grid.ParseDirection(c); err == nil && sd != d {
			return false
		}
	}
	return true
}

// isJunction reports whether p is the start, the end, or a fork.
func (t *Trails) isJunction(p grid.Point) bool {
	if p == t.start || p == t.end {
		return true
	}
	n := 0
	for _, d := range grid.Directions {
		if t.open(p.Add(d.Delta())) {
			n++
		}
	}
	return n >= 3
}

// Compress builds a directed graph whose vertices are junctions and whose
// edge weights are corridor lengths between them.
func (t *Trails) Compress(slippery bool) (*graph.Graph, error) {
	cg := graph.New(graph.WithDirected(true), graph.WithWeighted())
	var junctions []grid.Point
	for _, p := range t.g.FindAll(func(r rune) bool { return r != '#' }) {
		if t.isJunction(p) {
			junctions = append(junctions, p)
			if err := cg.AddVertex(p.String()); err != nil {
				return nil, err
			}
		}
	}
	for _, j := range junctions {
		for _, d := range grid.Directions {
			if !t.canStep(j, d, slippery) {
				continue
			}
			to, length, ok := t.follow(j, d, slippery)
			if !ok {
				continue
			}
			from, dest := j.String(), to.String()
			if w, err := cg.Weight(from, dest); err == nil && w >= length {
				continue
			}
			if err := cg.AddEdge(from, dest, length); err != nil {
				return nil, err
			}
		}
	}
	return cg, nil
}

// follow walks a corridor from junction j heading d until the next junction.
// ok is false on dead ends and slopes that block the way.
func (t *Trails) follow(j grid.Point, d grid.Direction, slippery bool) (grid.Point, int, bool) {
	prev, cur, length := j, j.Add(d.Delta()), 1
	for !t.isJunction(cur) {
		moved := false
		for _, nd := range grid.Directions {
			next := cur.Add(nd.Delta())
			if next == prev || !t.open(next) {
				continue
			}
			if !t.canStep(cur, nd, slippery) {
				return grid.Point{}, 0, false
			}
			prev, cur = cur, next
			length++
			moved = true
			break
		}
		if !moved {
			return grid.Point{}, 0, false
		}
	}
	return cur, length, true
}

// LongestHike returns the length of the longest route from start to end
// that never visits a tile twice.
func (t *Trails) LongestHike(slippery bool) (int, error) {
	cg, err := t.Compress(slippery)
	if err != nil {
		return 0, err
	}
	return dfs.LongestPath(cg, t.start.String(), t.end.String())
}

// Part1 treats slopes as one-way.
func Part1(in *puzzle.Input) (int, error) {
	t, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return t.LongestHike(true)
}

// Part2 treats slopes as ordinary path.
func Part2(in *puzzle.Input) (int, error) {
	t, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return t.LongestHike(false)
}
