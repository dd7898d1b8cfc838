package flow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/graph"
)

// EdmondsKarp computes the maximum flow from source→sink.
//
// It returns:
//   - maxFlow: total flow value (at least opts.Limit once that is reached)
//   - residual: directed residual-capacity graph after the flow
//   - err: missing endpoints, negative capacity, or context cancellation
func EdmondsKarp(
	ctx context.Context,
	g *graph.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow int, residual *graph.Graph, err error) {
	if opts == nil {
		opts = &FlowOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// 1) Validate endpoints
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil, ErrSameEndpoints
	}

	// 2) Build residual graph
	residual, err = buildResidual(g)
	if err != nil {
		return 0, nil, err
	}

	// 3) Augment along shortest paths until none remain
	for opts.Limit <= 0 || maxFlow < opts.Limit {
		path, perr := augmentingPath(ctx, residual, source, sink)
		if perr != nil {
			return 0, nil, perr
		}
		if path == nil {
			break
		}

		bottle, berr := bottleneck(residual, path)
		if berr != nil {
			return 0, nil, berr
		}
		log.Debug("augmenting path", zap.Strings("path", path), zap.Int("flow", bottle))
		maxFlow += bottle

		// 4) Push flow: shrink forward capacity, grow reverse capacity
		if err = push(residual, path, bottle); err != nil {
			return 0, nil, err
		}
	}
	return maxFlow, residual, nil
}

// bottleneck returns the smallest residual capacity along path.
func bottleneck(r *graph.Graph, path []string) (int, error) {
	bottle := -1
	for i := 0; i < len(path)-1; i++ {
		c, err := r.Weight(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("flow: residual path: %w", err)
		}
		if bottle < 0 || c < bottle {
			bottle = c
		}
	}
	return bottle, nil
}

// push moves amount units of flow along path in the residual graph.
// Saturated forward edges are removed; reverse edges gain capacity.
func push(r *graph.Graph, path []string, amount int) error {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		c, err := r.Weight(u, v)
		if err != nil {
			return fmt.Errorf("flow: push %s→%s: %w", u, v, err)
		}
		if c == amount {
			err = r.RemoveEdge(u, v)
		} else {
			err = r.AddEdge(u, v, c-amount)
		}
		if err != nil {
			return fmt.Errorf("flow: push %s→%s: %w", u, v, err)
		}
		back := 0
		if r.HasEdge(v, u) {
			back, _ = r.Weight(v, u)
		}
		if err := r.AddEdge(v, u, back+amount); err != nil {
			return fmt.Errorf("flow: push %s→%s: %w", v, u, err)
		}
	}
	return nil
}

// buildResidual copies g into a directed weighted graph, dropping
// zero-capacity edges.
func buildResidual(g *graph.Graph) (*graph.Graph, error) {
	r := graph.New(graph.WithDirected(true), graph.WithWeighted())
	for _, u := range g.Vertices() {
		if err := r.AddVertex(u); err != nil {
			return nil, err
		}
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			c, err := g.Weight(u, v)
			if err != nil {
				return nil, err
			}
			if !g.Weighted() {
				c = 1
			}
			if c < 0 {
				return nil, EdgeError{From: u, To: v, Cap: c}
			}
			if c > 0 {
				if err := r.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}
	return r, nil
}

// augmentingPath returns the shortest source→sink path through edges with
// positive residual capacity, or nil when the sink is unreachable.
func augmentingPath(ctx context.Context, r *graph.Graph, source, sink string) ([]string, error) {
	res, err := bfs.Walk([]string{source},
		func(v string) []string {
			nbrs, _ := r.Neighbors(v)
			return nbrs
		},
		bfs.WithContext[string](ctx),
		bfs.WithOnVisit(func(v string, _ int) error {
			if v == sink {
				return bfs.ErrStop
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(sink)
	if errors.Is(err, bfs.ErrNotReached) {
		return nil, nil
	}
	return path, err
}

// MinCut returns the sorted source side of a minimum cut, given the residual
// graph produced by EdmondsKarp.
func MinCut(residual *graph.Graph, source string) ([]string, error) {
	if !residual.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	res, err := bfs.Walk([]string{source}, func(v string) []string {
		nbrs, _ := residual.Neighbors(v)
		return nbrs
	})
	if err != nil {
		return nil, err
	}
	side := make([]string, 0, len(res.Order))
	for _, v := range residual.Vertices() {
		if res.Reached(v) {
			side = append(side, v)
		}
	}
	return side, nil
}
