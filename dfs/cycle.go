package dfs

import (
	"errors"

	"github.com/katalvlaran/advent/graph"
)

// HasCycle reports whether the directed graph g contains a cycle.
// Self-loops count as cycles.
func HasCycle(g *graph.Graph) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
