package graph

import (
	"fmt"
	"sort"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int)
	}
	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// AddEdge connects from and to, creating missing endpoints.
// On an undirected graph the edge is traversable both ways.
func (g *Graph) AddEdge(from, to string, weight int) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: %s-%s weight %d", ErrBadWeight, from, to, weight)
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}
	return nil
}

// RemoveEdge deletes the edge from->to (both directions when undirected).
func (g *Graph) RemoveEdge(from, to string) error {
	if _, ok := g.adj[from][to]; !ok {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, from, to)
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edges--
	return nil
}

// HasEdge reports whether from->to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the weight of from->to.
func (g *Graph) Weight(from, to string) (int, error) {
	w, ok := g.adj[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, from, to)
	}
	return w, nil
}

// Neighbors returns the sorted IDs reachable from id by one edge.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	return sortedKeys(nbrs), nil
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	return sortedKeys(g.adj)
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges; an undirected edge counts once.
func (g *Graph) Size() int { return g.edges }

// Clone returns a deep copy with the same configuration.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		adj:      make(map[string]map[string]int, len(g.adj)),
		edges:    g.edges,
	}
	for v, nbrs := range g.adj {
		m := make(map[string]int, len(nbrs))
		for u, w := range nbrs {
			m[u] = w
		}
		c.adj[v] = m
	}
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
