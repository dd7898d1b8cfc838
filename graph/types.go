package graph

import "errors"

var (
	// ErrEmptyVertexID is returned when a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound is returned when a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned when a referenced edge does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight is returned for a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")
)

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected sets whether edges are one-way.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an adjacency-map graph keyed by vertex ID.
type Graph struct {
	directed bool
	weighted bool

	// adj[from][to] = weight; undirected edges are stored in both directions.
	adj   map[string]map[string]int
	edges int
}

// New creates an empty graph. Graphs are undirected and unweighted by default.
func New(opts ...Option) *Graph {
	g := &Graph{adj: make(map[string]map[string]int)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }
