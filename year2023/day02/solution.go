// Package day02 solves 2023 day 2, "Cube Conundrum".
package day02

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 2, Title: "Cube Conundrum", Part1: Part1, Part2: Part2}
}

// Limits is the bag content for part 1.
var Limits = map[string]int{"red": 12, "green": 13, "blue": 14}

// Game is one line: its ID and the cubes shown in each draw.
type Game struct {
	ID    int
	Draws []map[string]int
}

// Parse reads "Game N: 3 blue, 4 red; 1 red, 2 green" lines.
func Parse(in *puzzle.Input) ([]Game, error) {
	var games []Game
	for _, line := range in.NonEmptyLines() {
		head, body, ok := strings.Cut(line, ":")
		if !ok || !strings.HasPrefix(head, "Game ") {
			return nil, puzzle.Malformed("game line %q", line)
		}
		id, err := puzzle.Atoi(strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, err
		}
		g := Game{ID: id}
		for _, draw := range strings.Split(body, ";") {
			counts := make(map[string]int)
			for _, cube := range strings.Split(draw, ",") {
				f := strings.Fields(cube)
				if len(f) != 2 {
					return nil, puzzle.Malformed("cube count %q in game %d", cube, id)
				}
				n, err := puzzle.Atoi(f[0])
				if err != nil {
					return nil, err
				}
				counts[f[1]] += n
			}
			g.Draws = append(g.Draws, counts)
		}
		games = append(games, g)
	}
	return games, nil
}

// Possible reports whether no draw exceeds the given limits.
// Colors absent from limits are unconstrained.
func (g Game) Possible(limits map[string]int) bool {
	for _, d := range g.Draws {
		for color, n := range d {
			if limit, ok := limits[color]; ok && n > limit {
				return false
			}
		}
	}
	return true
}

// Power is the product of the per-color maxima over all draws.
func (g Game) Power() int {
	mins := make(map[string]int)
	for _, d := range g.Draws {
		for color, n := range d {
			if n > mins[color] {
				mins[color] = n
			}
		}
	}
	p := 1
	for _, n := range mins {
		p *= n
	}
	return p
}

// Part1 sums the IDs of games possible with Limits.
func Part1(in *puzzle.Input) (int, error) {
	games, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(Limits) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of each game's minimum cube set.
func Part2(in *puzzle.Input) (int, error) {
	games, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Power()
	}
	return sum, nil
}
