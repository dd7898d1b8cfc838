package dijkstra

import (
	"container/heap"
	"fmt"
)

// Search returns the cheapest path from any of sources to a state satisfying goal.
//
// Steps:
//  1. Apply options and validate inputs.
//  2. Seed the queue with every source at cost 0.
//  3. Pop the cheapest entry; skip stale entries; stop when goal holds.
//  4. Relax each successor, pushing improved costs (lazy decrease-key).
func Search[S comparable](sources []S, next func(S) []Edge[S], goal func(S) bool, opts ...Option) (Path[S], error) {
	var zero Path[S]

	// 1) Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return zero, o.err
	}
	if len(sources) == 0 {
		return zero, ErrNoSource
	}

	r := &runner[S]{
		next: next,
		goal: goal,
		opts: o,
		dist: make(map[S]int),
		done: make(map[S]bool),
	}
	if o.ReturnPath {
		r.prev = make(map[S]S)
	}

	// 2) Seed.
	for _, s := range sources {
		if _, seen := r.dist[s]; seen {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &item[S]{state: s})
	}

	// 3-4) Main loop.
	return r.process()
}

// runner holds the mutable state of a single Search.
type runner[S comparable] struct {
	next func(S) []Edge[S]
	goal func(S) bool
	opts Options
	dist map[S]int
	prev map[S]S
	done map[S]bool
	pq   pq[S]
}

func (r *runner[S]) process() (Path[S], error) {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item[S])
		u := it.state
		if r.done[u] || it.cost > r.dist[u] {
			continue
		}
		r.done[u] = true

		if r.goal(u) {
			p := Path[S]{Cost: it.cost, Goal: u}
			if r.opts.ReturnPath {
				p.States = r.walkBack(u)
			}
			return p, nil
		}
		if err := r.relax(u, it.cost); err != nil {
			return Path[S]{}, err
		}
	}
	return Path[S]{}, ErrNoPath
}

func (r *runner[S]) relax(u S, cost int) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v -> %v (%d)", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if r.done[e.To] {
			continue
		}
		nd := cost + e.Cost
		if r.opts.MaxCost > 0 && nd > r.opts.MaxCost {
			continue
		}
		if old, ok := r.dist[e.To]; ok && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &item[S]{state: e.To, cost: nd})
	}
	return nil
}

// walkBack follows predecessors from dest back to a source.
func (r *runner[S]) walkBack(dest S) []S {
	path := []S{dest}
	for cur := dest; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// item is a queue entry; stale entries are ignored when popped.
type item[S comparable] struct {
	state S
	cost  int
}

// pq is a min-heap of *item ordered by cost.
type pq[S comparable] []*item[S]

func (q pq[S]) Len() int           { return len(q) }
func (q pq[S]) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q pq[S]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

// Push adds x; called by heap.Push.
func (q *pq[S]) Push(x any) { *q = append(*q, x.(*item[S])) }

// Pop removes the last element; called by heap.Pop.
func (q *pq[S]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
