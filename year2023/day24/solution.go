// Package day24 solves 2023 day 24, "Never Tell Me The Odds".
package day24

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/advent/matrix"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 24, Title: "Never Tell Me The Odds", Part1: Part1, Part2: Part2}
}

// Test area bounds for part 1.
const (
	AreaMin = 200000000000000
	AreaMax = 400000000000000
)

// Hailstone is a position and a velocity per nanosecond.
type Hailstone struct {
	P, V [3]int64
}

// Parse reads "19, 13, 30 @ -2, 1, -2" lines.
func Parse(in *puzzle.Input) ([]Hailstone, error) {
	var out []Hailstone
	for _, line := range in.NonEmptyLines() {
		v := puzzle.Ints(line)
		if len(v) != 6 {
			return nil, puzzle.Malformed("hailstone %q", line)
		}
		out = append(out, Hailstone{
			P: [3]int64{int64(v[0]), int64(v[1]), int64(v[2])},
			V: [3]int64{int64(v[3]), int64(v[4]), int64(v[5])},
		})
	}
	return out, nil
}

// CrossInside reports whether the XY paths of a and b cross at a future
// time for both, inside [lo, hi] on both axes. Parallel paths never cross.
//
// The crossing times come from the exact 2×2 system
// a.P + t·a.V = b.P + s·b.V, so large coordinates lose no precision.
func CrossInside(a, b Hailstone, lo, hi int64) (bool, error) {
	m := [][]*big.Rat{
		matrix.RatRow(a.V[0], -b.V[0]),
		matrix.RatRow(a.V[1], -b.V[1]),
	}
	rhs := matrix.RatRow(b.P[0]-a.P[0], b.P[1]-a.P[1])
	ts, err := matrix.SolveRational(m, rhs)
	if errors.Is(err, matrix.ErrSingular) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t, s := ts[0], ts[1]
	if t.Sign() < 0 || s.Sign() < 0 {
		return false, nil
	}
	loR, hiR := matrix.NewRat(lo), matrix.NewRat(hi)
	for axis := 0; axis < 2; axis++ {
		c := new(big.Rat).Mul(t, matrix.NewRat(a.V[axis]))
		c.Add(c, matrix.NewRat(a.P[axis]))
		if c.Cmp(loR) < 0 || c.Cmp(hiR) > 0 {
			return false, nil
		}
	}
	return true, nil
}

// CountIntersections counts pairs whose future XY paths cross inside the
// test area [lo, hi].
func CountIntersections(stones []Hailstone, lo, hi int64) (int, error) {
	n := 0
	for i := range stones {
		for j := i + 1; j < len(stones); j++ {
			ok, err := CrossInside(stones[i], stones[j], lo, hi)
			if err != nil {
				return 0, err
			}
			if ok {
				n++
			}
		}
	}
	return n, nil
}

// Throw finds the rock position and velocity that hit every hailstone.
//
// For each stone i, (P − p_i) × (V − v_i) = 0. The only non-linear terms
// (P × V) are shared by all stones, so subtracting the equations of stone 0
// and stone j leaves linear equations in P and V, one per coordinate plane.
// Up to four partner stones over three planes give an over-determined
// system that is solved exactly.
func Throw(stones []Hailstone) (pos, vel [3]*big.Rat, err error) {
	if len(stones) < 3 {
		return pos, vel, puzzle.Malformed("need at least 3 hailstones, got %d", len(stones))
	}
	var (
		rows [][]*big.Rat
		rhs  []*big.Rat
	)
	h0 := stones[0]
	for _, plane := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		a, b := plane[0], plane[1]
		for _, hj := range stones[1:min(len(stones), 5)] {
			row := matrix.RatRow(0, 0, 0, 0, 0, 0)
			row[a].SetInt64(hj.V[b] - h0.V[b])
			row[b].SetInt64(h0.V[a] - hj.V[a])
			row[3+a].SetInt64(h0.P[b] - hj.P[b])
			row[3+b].SetInt64(hj.P[a] - h0.P[a])
			rows = append(rows, row)

			// Products reach ~1e17; big.Int keeps them exact.
			r := cross(hj, a, b)
			r.Sub(r, cross(h0, a, b))
			rhs = append(rhs, new(big.Rat).SetInt(r))
		}
	}
	x, err := matrix.SolveRational(rows, rhs)
	if err != nil {
		return pos, vel, puzzle.Malformed("no single rock throw: %v", err)
	}
	copy(pos[:], x[:3])
	copy(vel[:], x[3:])
	return pos, vel, nil
}

// cross returns p_a·v_b − p_b·v_a.
func cross(h Hailstone, a, b int) *big.Int {
	l := new(big.Int).Mul(big.NewInt(h.P[a]), big.NewInt(h.V[b]))
	r := new(big.Int).Mul(big.NewInt(h.P[b]), big.NewInt(h.V[a]))
	return l.Sub(l, r)
}

// Part1 counts future XY crossings inside the standard test area.
func Part1(in *puzzle.Input) (int, error) {
	stones, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return CountIntersections(stones, AreaMin, AreaMax)
}

// Part2 returns the sum of the rock's starting coordinates.
func Part2(in *puzzle.Input) (int, error) {
	stones, err := Parse(in)
	if err != nil {
		return 0, err
	}
	pos, _, err := Throw(stones)
	if err != nil {
		return 0, err
	}
	sum := new(big.Rat)
	for _, c := range pos {
		sum.Add(sum, c)
	}
	if !sum.IsInt() || !sum.Num().IsInt64() {
		return 0, puzzle.Malformed("rock position sum %s is not an integer", sum.RatString())
	}
	return int(sum.Num().Int64()), nil
}
