// Package day03 solves 2023 day 3, "Gear Ratios".
package day03

import (
	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 3, Title: "Gear Ratios", Part1: Part1, Part2: Part2}
}

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value int
	Start grid.Point // leftmost digit
	Len   int
}

// Cells returns every point covered by the number.
func (n Number) Cells() []grid.Point {
	cells := make([]grid.Point, n.Len)
	for i := range cells {
		cells[i] = grid.Pt(n.Start.X+i, n.Start.Y)
	}
	return cells
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isSymbol(r rune) bool { return r != '.' && r != 0 && !isDigit(r) }

// Schematic is the parsed engine plan.
type Schematic struct {
	g       *grid.Grid
	numbers []Number
	owner   map[grid.Point]int // cell -> index into numbers
}

// Parse reads the schematic grid and indexes its numbers.
func Parse(in *puzzle.Input) (*Schematic, error) {
	g, err := grid.New(in.NonEmptyLines())
	if err != nil {
		return nil, puzzle.Malformed("schematic: %v", err)
	}
	s := &Schematic{g: g, owner: make(map[grid.Point]int)}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !isDigit(g.At(grid.Pt(x, y))) {
				continue
			}
			n := Number{Start: grid.Pt(x, y)}
			for ; x < g.Width && isDigit(g.At(grid.Pt(x, y))); x++ {
				n.Value = n.Value*10 + int(g.At(grid.Pt(x, y))-'0')
				n.Len++
			}
			for _, c := range n.Cells() {
				s.owner[c] = len(s.numbers)
			}
			s.numbers = append(s.numbers, n)
		}
	}
	return s, nil
}

// touchesSymbol reports whether any cell around n holds a symbol.
func (s *Schematic) touchesSymbol(n Number) bool {
	for _, c := range n.Cells() {
		for _, nb := range s.g.Neighbors(c, grid.Conn8) {
			if isSymbol(s.g.At(nb)) {
				return true
			}
		}
	}
	return false
}

// adjacentNumbers returns the distinct numbers around p, as indexes.
// Two equal values at different positions count separately.
func (s *Schematic) adjacentNumbers(p grid.Point) []int {
	seen := make(map[int]bool)
	var out []int
	for _, nb := range s.g.Neighbors(p, grid.Conn8) {
		if idx, ok := s.owner[nb]; ok && !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}

// Part1 sums every number adjacent to a symbol, diagonals included.
func Part1(in *puzzle.Input) (int, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers {
		if s.touchesSymbol(n) {
			sum += n.Value
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: a '*' next to exactly two numbers.
func Part2(in *puzzle.Input) (int, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, p := range s.g.FindAll(func(r rune) bool { return r == '*' }) {
		if adj := s.adjacentNumbers(p); len(adj) == 2 {
			sum += s.numbers[adj[0]].Value * s.numbers[adj[1]].Value
		}
	}
	return sum, nil
}
