package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent/graph"
)

// maxLongestVertices bounds the bitmask used to mark visited vertices.
const maxLongestVertices = 64

// LongestPath returns the maximum total weight of a simple path from `from`
// to `to`. Works on directed and undirected graphs; on unweighted graphs
// every edge counts 1.
//
// The search is exhaustive (NP-hard in general) and meant for the small,
// sparse graphs produced by compressing corridors in a maze: vertices are
// indexed and the visited set is a single uint64.
//
// If `to` has exactly one predecessor p, reaching p commits to the final
// edge p→to, since any other move from p would strand the path.
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrTooLarge, ErrNoPath.
func LongestPath(g *graph.Graph, from, to string) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	for _, v := range []string{from, to} {
		if !g.HasVertex(v) {
			return 0, fmt.Errorf("%w: %s", ErrVertexNotFound, v)
		}
	}
	verts := g.Vertices()
	if len(verts) > maxLongestVertices {
		return 0, fmt.Errorf("%w: %d vertices", ErrTooLarge, len(verts))
	}

	// 1. Index vertices and flatten adjacency.
	index := make(map[string]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}
	type arc struct{ to, w int }
	adj := make([][]arc, len(verts))
	preds := make([][]int, len(verts))
	for i, v := range verts {
		nbrs, _ := g.Neighbors(v)
		for _, nb := range nbrs {
			w, _ := g.Weight(v, nb)
			if !g.Weighted() {
				w = 1
			}
			adj[i] = append(adj[i], arc{index[nb], w})
			preds[index[nb]] = append(preds[index[nb]], i)
		}
	}

	src, dst := index[from], index[to]
	gate, gateCost := dst, 0
	if len(preds[dst]) == 1 && preds[dst][0] != src {
		gate = preds[dst][0]
		for _, a := range adj[gate] {
			if a.to == dst {
				gateCost = a.w
			}
		}
	}

	// 2. Exhaustive search.
	best := -1
	var walk func(v int, seen uint64, dist int)
	walk = func(v int, seen uint64, dist int) {
		if v == gate {
			if dist+gateCost > best {
				best = dist + gateCost
			}
			return
		}
		for _, a := range adj[v] {
			bit := uint64(1) << a.to
			if seen&bit != 0 {
				continue
			}
			walk(a.to, seen|bit, dist+a.w)
		}
	}
	walk(src, uint64(1)<<src, 0)

	if best < 0 {
		return 0, fmt.Errorf("%w: %s to %s", ErrNoPath, from, to)
	}
	return best, nil
}
