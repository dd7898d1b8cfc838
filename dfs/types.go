package dfs

import "errors"

// Vertex states during traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned by algorithms that require a directed graph.
	ErrUndirected = errors.New("dfs: graph must be directed")

	// ErrVertexNotFound indicates that a referenced vertex is not in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// a traversal that requires acyclicity.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dfs: no path")

	// ErrTooLarge indicates that the graph exceeds what LongestPath can track.
	ErrTooLarge = errors.New("dfs: graph too large for exhaustive search")
)
