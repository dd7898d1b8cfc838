// Package day22 solves 2023 day 22, "Sand Slabs".
package day22

import (
	"sort"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 22, Title: "Sand Slabs", Part1: Part1, Part2: Part2}
}

// Brick is an axis-aligned box between two corners, inclusive.
type Brick struct {
	X0, Y0, Z0 int
	X1, Y1, Z1 int
}

// Parse reads "x,y,z~x,y,z" lines and normalizes each brick so the first
// corner is the low one.
func Parse(in *puzzle.Input) ([]Brick, error) {
	var bricks []Brick
	for _, line := range in.NonEmptyLines() {
		v := puzzle.Ints(line)
		if len(v) != 6 {
			return nil, puzzle.Malformed("brick %q", line)
		}
		b := Brick{min(v[0], v[3]), min(v[1], v[4]), min(v[2], v[5]), max(v[0], v[3]), max(v[1], v[4]), max(v[2], v[5])}
		if b.Z0 < 1 {
			return nil, puzzle.Malformed("brick below ground %q", line)
		}
		bricks = append(bricks, b)
	}
	return bricks, nil
}

// Stack is the settled pile: who rests on whom.
type Stack struct {
	// Supports[i] lists the bricks resting directly on brick i.
	Supports [][]int
	// SupportedBy[i] lists the bricks brick i rests on directly.
	SupportedBy [][]int
}

type xy struct{ x, y int }

// Settle drops every brick as far as it goes, lowest first.
func Settle(bricks []Brick) *Stack {
	order := append([]Brick(nil), bricks...)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Z0 < order[j].Z0 })

	type top struct{ z, brick int }
	heights := make(map[xy]top)
	s := &Stack{Supports: make([][]int, len(order)), SupportedBy: make([][]int, len(order))}
	for i, b := range order {
		floor := 0
		for x := b.X0; x <= b.X1; x++ {
			for y := b.Y0; y <= b.Y1; y++ {
				if t, ok := heights[xy{x, y}]; ok && t.z > floor {
					floor = t.z
				}
			}
		}
		seen := make(map[int]bool)
		for x := b.X0; x <= b.X1; x++ {
			for y := b.Y0; y <= b.Y1; y++ {
				if t, ok := heights[xy{x, y}]; ok && floor > 0 && t.z == floor && !seen[t.brick] {
					seen[t.brick] = true
					s.SupportedBy[i] = append(s.SupportedBy[i], t.brick)
					s.Supports[t.brick] = append(s.Supports[t.brick], i)
				}
				heights[xy{x, y}] = top{floor + 1 + b.Z1 - b.Z0, i}
			}
		}
	}
	return s
}

// Falls counts how many other bricks fall if brick i is disintegrated.
func (s *Stack) Falls(i int) int {
	falling := map[int]bool{i: true}
	queue := []int{i}
	for head := 0; head < len(queue); head++ {
		for _, above := range s.Supports[queue[head]] {
			if falling[above] {
				continue
			}
			all := true
			for _, below := range s.SupportedBy[above] {
				if !falling[below] {
					all = false
					break
				}
			}
			if all {
				falling[above] = true
				queue = append(queue, above)
			}
		}
	}
	return len(falling) - 1
}

func settle(in *puzzle.Input) (*Stack, error) {
	bricks, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return Settle(bricks), nil
}

// Part1 counts bricks that can be removed without anything falling.
func Part1(in *puzzle.Input) (int, error) {
	s, err := settle(in)
	if err != nil {
		return 0, err
	}
	safe := 0
	for i := range s.Supports {
		ok := true
		for _, above := range s.Supports[i] {
			if len(s.SupportedBy[above]) < 2 {
				ok = false
				break
			}
		}
		if ok {
			safe++
		}
	}
	return safe, nil
}

// Part2 sums, over every brick, the number of other bricks that would fall.
func Part2(in *puzzle.Input) (int, error) {
	s, err := settle(in)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := range s.Supports {
		total += s.Falls(i)
	}
	return total, nil
}
