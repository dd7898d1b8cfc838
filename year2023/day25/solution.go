// Package day25 solves 2023 day 25, "Snowverload". The day has one part.
package day25

import (
	"context"
	"strings"

	"github.com/katalvlaran/advent/flow"
	"github.com/katalvlaran/advent/graph"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 25, Title: "Snowverload", Part1: Part1}
}

// CutSize is the number of wires to disconnect.
const CutSize = 3

// Parse reads "jqt: rhn xhk nvd" lines into an undirected graph.
func Parse(in *puzzle.Input) (*graph.Graph, error) {
	g := graph.New()
	for _, line := range in.NonEmptyLines() {
		name, rest, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, puzzle.Malformed("component %q", line)
		}
		for _, other := range strings.Fields(rest) {
			if err := g.AddEdge(strings.TrimSpace(name), other, 0); err != nil {
				return nil, puzzle.Malformed("%v in %q", err, line)
			}
		}
	}
	return g, nil
}

// Split finds the two groups left after cutting exactly CutSize wires and
// returns their sizes.
//
// With unit capacities, a sink on the far side of the cut has max flow
// CutSize from any fixed source; sinks on the same side have more. The
// first sink with that flow yields the partition: the vertices still
// reachable from the source in the residual graph.
func Split(ctx context.Context, g *graph.Graph) (int, int, error) {
	verts := g.Vertices()
	if len(verts) < 2 {
		return 0, 0, puzzle.Malformed("need at least two components")
	}
	source := verts[0]
	opts := &flow.FlowOptions{Limit: CutSize + 1}
	for _, sink := range verts[1:] {
		f, residual, err := flow.EdmondsKarp(ctx, g, source, sink, opts)
		if err != nil {
			return 0, 0, err
		}
		if f != CutSize {
			continue
		}
		side, err := flow.MinCut(residual, source)
		if err != nil {
			return 0, 0, err
		}
		return len(side), len(verts) - len(side), nil
	}
	return 0, 0, puzzle.Malformed("no %d-wire cut splits the graph", CutSize)
}

// Part1 multiplies the sizes of the two groups.
func Part1(in *puzzle.Input) (int, error) {
	g, err := Parse(in)
	if err != nil {
		return 0, err
	}
	a, b, err := Split(context.Background(), g)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}
