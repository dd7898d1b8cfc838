// Package day05 solves 2024 day 5, "Print Queue".
package day05

import (
	"strings"

	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2024, Day: 5, Title: "Print Queue", Part1: Part1, Part2: Part2}
}

type rule struct{ before, after string }

// Queue holds the ordering rules and the updates to check.
type Queue struct {
	rules   map[rule]bool
	Updates [][]string
}

// Parse reads "X|Y" rules, a blank line, then comma-separated updates.
func Parse(in *puzzle.Input) (*Queue, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want rules and updates sections, got %d", len(blocks))
	}
	q := &Queue{rules: make(map[rule]bool, len(blocks[0]))}
	for _, line := range blocks[0] {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return nil, puzzle.Malformed("rule %q", line)
		}
		if _, err := puzzle.Atoi(a); err != nil {
			return nil, err
		}
		if _, err := puzzle.Atoi(b); err != nil {
			return nil, err
		}
		q.rules[rule{strings.TrimSpace(a), strings.TrimSpace(b)}] = true
	}
	for _, line := range blocks[1] {
		pages := strings.Split(line, ",")
		for i, p := range pages {
			if _, err := puzzle.Atoi(p); err != nil {
				return nil, err
			}
			pages[i] = strings.TrimSpace(p)
		}
		q.Updates = append(q.Updates, pages)
	}
	return q, nil
}

// Ordered reports whether no rule puts a later page before an earlier one.
func (q *Queue) Ordered(update []string) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if q.rules[rule{update[j], update[i]}] {
				return false
			}
		}
	}
	return true
}

// Reorder sorts update by the rules that mention two of its pages.
// Rules about pages outside the update are ignored, so the full rule set
// may contain cycles. Returns dfs.ErrCycleDetected if the restricted rules
// still do.
func (q *Queue) Reorder(update []string) ([]string, error) {
	g := graph.New(graph.WithDirected(true))
	for _, p := range update {
		if err := g.AddVertex(p); err != nil {
			return nil, err
		}
	}
	for _, a := range update {
		for _, b := range update {
			if q.rules[rule{a, b}] {
				if err := g.AddEdge(a, b, 0); err != nil {
					return nil, err
				}
			}
		}
	}
	return dfs.TopologicalSort(g)
}

func middle(update []string) (int, error) {
	if len(update) == 0 {
		return 0, puzzle.Malformed("empty update")
	}
	return puzzle.Atoi(update[len(update)/2])
}

// Part1 sums the middle pages of correctly ordered updates.
func Part1(in *puzzle.Input) (int, error) {
	q, err := Parse(in)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range q.Updates {
		if !q.Ordered(u) {
			continue
		}
		m, err := middle(u)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// Part2 fixes the misordered updates and sums their middle pages.
func Part2(in *puzzle.Input) (int, error) {
	q, err := Parse(in)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range q.Updates {
		if q.Ordered(u) {
			continue
		}
		fixed, err := q.Reorder(u)
		if err != nil {
			return 0, puzzle.Malformed("update %v: %v", u, err)
		}
		m, err := middle(fixed)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}
