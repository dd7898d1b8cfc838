// Package day08 solves 2023 day 8, "Haunted Wasteland".
package day08

import (
	"regexp"
	"strings"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 8, Title: "Haunted Wasteland", Part1: Part1, Part2: Part2}
}

// maxSteps guards against inputs that never reach a goal.
const maxSteps = 10_000_000

var nodePattern = regexp.MustCompile(`^(\w+)\s*=\s*\((\w+),\s*(\w+)\)$`)

// Network is the instruction string and the left/right map.
type Network struct {
	Turns string
	Nodes map[string][2]string
	names []string // in input order
}

// Parse reads the L/R line and the node table.
func Parse(in *puzzle.Input) (*Network, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzle.Malformed("want instructions and node table")
	}
	turns := strings.TrimSpace(blocks[0][0])
	if strings.Trim(turns, "LR") != "" || turns == "" {
		return nil, puzzle.Malformed("instructions %q", turns)
	}
	n := &Network{Turns: turns, Nodes: make(map[string][2]string)}
	for _, line := range blocks[1] {
		m := nodePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, puzzle.Malformed("node %q", line)
		}
		n.Nodes[m[1]] = [2]string{m[2], m[3]}
		n.names = append(n.names, m[1])
	}
	return n, nil
}

// Steps follows the turns from start until done holds, cycling the
// instructions as needed.
func (n *Network) Steps(start string, done func(string) bool) (int, error) {
	cur := start
	for step := 0; step < maxSteps; step++ {
		if done(cur) {
			return step, nil
		}
		next, ok := n.Nodes[cur]
		if !ok {
			return 0, puzzle.Malformed("unknown node %q", cur)
		}
		if n.Turns[step%len(n.Turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return 0, puzzle.Malformed("no goal within %d steps from %s", maxSteps, start)
}

// Part1 counts steps from AAA to ZZZ.
func Part1(in *puzzle.Input) (int, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	if _, ok := n.Nodes["AAA"]; !ok {
		return 0, puzzle.Malformed("no AAA node")
	}
	return n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every ..A node at once until all stand on ..Z nodes.
// Each ghost loops with a period equal to its first arrival, so the answer
// is the LCM of those arrivals.
func Part2(in *puzzle.Input) (int, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var periods []int
	for _, name := range n.names {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, err := n.Steps(name, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, steps)
	}
	if len(periods) == 0 {
		return 0, puzzle.Malformed("no start nodes")
	}
	return mathx.LCMSlice(periods), nil
}
