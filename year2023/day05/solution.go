// Package day05 solves 2023 day 5, "If You Give A Seed A Fertilizer".
package day05

import (
	"sort"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 5, Title: "If You Give A Seed A Fertilizer", Part1: Part1, Part2: Part2}
}

// Rule shifts [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

// Stage is one "x-to-y map" with rules sorted by source start.
type Stage struct {
	Name  string
	Rules []Rule
}

// Almanac holds the seed list and the chain of stages.
type Almanac struct {
	Seeds  []int
	Stages []Stage
}

// Parse reads the seeds line followed by one block per stage.
func Parse(in *puzzle.Input) (*Almanac, error) {
	blocks := in.Blocks()
	if len(blocks) == 0 || !strings.HasPrefix(blocks[0][0], "seeds:") {
		return nil, puzzle.Malformed("missing seeds line")
	}
	seeds, err := puzzle.Fields(strings.TrimPrefix(blocks[0][0], "seeds:"))
	if err != nil {
		return nil, err
	}
	a := &Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		st := Stage{Name: strings.TrimSuffix(b[0], " map:")}
		for _, line := range b[1:] {
			f, err := puzzle.Fields(line)
			if err != nil {
				return nil, err
			}
			if len(f) != 3 {
				return nil, puzzle.Malformed("rule %q in %s", line, st.Name)
			}
			st.Rules = append(st.Rules, Rule{Dst: f[0], Src: f[1], Len: f[2]})
		}
		sort.Slice(st.Rules, func(i, j int) bool { return st.Rules[i].Src < st.Rules[j].Src })
		a.Stages = append(a.Stages, st)
	}
	return a, nil
}

// Map sends a single value through the stage; unmatched values pass through.
func (s Stage) Map(v int) int {
	for _, r := range s.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return v + r.Dst - r.Src
		}
	}
	return v
}

// Span is the half-open interval [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// MapSpans sends every span through the stage, splitting spans that cross
// rule boundaries. Gaps between rules map to themselves.
func (s Stage) MapSpans(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		cur := sp.Lo
		for _, r := range s.Rules {
			if cur >= sp.Hi {
				break
			}
			end := r.Src + r.Len
			if end <= cur {
				continue
			}
			if r.Src >= sp.Hi {
				break
			}
			if cur < r.Src {
				out = append(out, Span{cur, r.Src})
				cur = r.Src
			}
			hi := min(end, sp.Hi)
			shift := r.Dst - r.Src
			out = append(out, Span{cur + shift, hi + shift})
			cur = hi
		}
		if cur < sp.Hi {
			out = append(out, Span{cur, sp.Hi})
		}
	}
	return out
}

// Part1 returns the lowest location of any listed seed.
func Part1(in *puzzle.Input) (int, error) {
	a, err := Parse(in)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, puzzle.Malformed("no seeds")
	}
	best := -1
	for _, v := range a.Seeds {
		for _, st := range a.Stages {
			v = st.Map(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return best, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location over every seed in every range.
func Part2(in *puzzle.Input) (int, error) {
	a, err := Parse(in)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, puzzle.Malformed("seed ranges need start/length pairs, got %d values", len(a.Seeds))
	}
	var spans []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			spans = append(spans, Span{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
		}
	}
	for _, st := range a.Stages {
		spans = st.MapSpans(spans)
	}
	if len(spans) == 0 {
		return 0, puzzle.Malformed("all seed ranges are empty")
	}
	best := spans[0].Lo
	for _, sp := range spans[1:] {
		best = min(best, sp.Lo)
	}
	return best, nil
}
