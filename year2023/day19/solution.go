// Package day19 solves 2023 day 19, "Aplenty".
package day19

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 19, Title: "Aplenty", Part1: Part1, Part2: Part2}
}

const (
	startFlow = "in"
	accept    = "A"
	reject    = "R"

	// Ratings range over [minRating, maxRating].
	minRating = 1
	maxRating = 4000
)

// Rule sends a part to Target when Category compares against Value.
// A rule with Op == 0 always matches.
type Rule struct {
	Category byte // one of x, m, a, s
	Op       byte // '<', '>' or 0
	Value    int
	Target   string
}

// System is the workflow table and the list of parts.
type System struct {
	Workflows map[string][]Rule
	Parts     []map[byte]int
}

var (
	workflowPattern = regexp.MustCompile(`^(\w+)\{(.*)\}$`)
	rulePattern     = regexp.MustCompile(`^([xmas])([<>])(\d+):(\w+)$`)
	partPattern     = regexp.MustCompile(`^\{x=(\d+),m=(\d+),a=(\d+),s=(\d+)\}$`)
)

// Parse reads the workflow block and the parts block.
func Parse(in *puzzle.Input) (*System, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want workflows and parts, got %d blocks", len(blocks))
	}
	s := &System{Workflows: make(map[string][]Rule)}
	for _, line := range blocks[0] {
		m := workflowPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("workflow %q", line)
		}
		var rules []Rule
		for _, r := range strings.Split(m[2], ",") {
			if rm := rulePattern.FindStringSubmatch(r); rm != nil {
				v, _ := puzzle.Atoi(rm[3])
				rules = append(rules, Rule{Category: rm[1][0], Op: rm[2][0], Value: v, Target: rm[4]})
				continue
			}
			if strings.ContainsAny(r, "<>:") || r == "" {
				return nil, puzzle.Malformed("rule %q in %q", r, line)
			}
			rules = append(rules, Rule{Target: r})
		}
		s.Workflows[m[1]] = rules
	}
	for _, line := range blocks[1] {
		m := partPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("part %q", line)
		}
		part := make(map[byte]int, 4)
		for i, c := range []byte("xmas") {
			part[c], _ = puzzle.Atoi(m[i+1])
		}
		s.Parts = append(s.Parts, part)
	}
	if _, ok := s.Workflows[startFlow]; !ok {
		return nil, puzzle.Malformed("no %q workflow", startFlow)
	}
	return s, nil
}

// Accepted runs a part through the workflows starting at "in".
func (s *System) Accepted(part map[byte]int) (bool, error) {
	name := startFlow
	for steps := 0; steps <= len(s.Workflows); steps++ {
		switch name {
		case accept:
			return true, nil
		case reject:
			return false, nil
		}
		rules, ok := s.Workflows[name]
		if !ok {
			return false, puzzle.Malformed("unknown workflow %q", name)
		}
		for _, r := range rules {
			v := part[r.Category]
			if r.Op == 0 || (r.Op == '<' && v < r.Value) || (r.Op == '>' && v > r.Value) {
				name = r.Target
				break
			}
		}
	}
	return false, puzzle.Malformed("workflows loop")
}

// Box is a set of parts: inclusive rating bounds per category.
type Box map[byte][2]int

func (b Box) size() int {
	n := 1
	for _, c := range []byte("xmas") {
		n *= b[c][1] - b[c][0] + 1
	}
	return n
}

func (b Box) with(c byte, lo, hi int) Box {
	out := make(Box, 4)
	for k, v := range b {
		out[k] = v
	}
	out[c] = [2]int{lo, hi}
	return out
}

// CountAccepted returns how many rating combinations in box end in A when
// started at workflow name. Each rule splits the box into a matching part,
// sent on to the target, and a remainder that falls to the next rule.
func (s *System) CountAccepted(name string, box Box, depth int) (int, error) {
	switch {
	case name == accept:
		return box.size(), nil
	case name == reject:
		return 0, nil
	case depth > len(s.Workflows):
		return 0, puzzle.Malformed("workflows loop")
	}
	rules, ok := s.Workflows[name]
	if !ok {
		return 0, puzzle.Malformed("unknown workflow %q", name)
	}
	total := 0
	for _, r := range rules {
		if r.Op == 0 {
			n, err := s.CountAccepted(r.Target, box, depth+1)
			return total + n, err
		}
		lo, hi := box[r.Category][0], box[r.Category][1]
		var match, rest [2]int
		if r.Op == '<' {
			match, rest = [2]int{lo, min(hi, r.Value-1)}, [2]int{max(lo, r.Value), hi}
		} else {
			match, rest = [2]int{max(lo, r.Value+1), hi}, [2]int{lo, min(hi, r.Value)}
		}
		if match[0] <= match[1] {
			n, err := s.CountAccepted(r.Target, box.with(r.Category, match[0], match[1]), depth+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		if rest[0] > rest[1] {
			return total, nil
		}
		box = box.with(r.Category, rest[0], rest[1])
	}
	return total, nil
}

// Part1 sums all ratings of accepted parts.
func Part1(in *puzzle.Input) (int, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, p := range s.Parts {
		ok, err := s.Accepted(p)
		if err != nil {
			return 0, err
		}
		if ok {
			sum += p['x'] + p['m'] + p['a'] + p['s']
		}
	}
	return sum, nil
}

// Part2 counts distinct rating combinations, each in 1..4000, that the
// workflows accept.
func Part2(in *puzzle.Input) (int, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	full := Box{}
	for _, c := range []byte("xmas") {
		full[c] = [2]int{minRating, maxRating}
	}
	return s.CountAccepted(startFlow, full, 0)
}
