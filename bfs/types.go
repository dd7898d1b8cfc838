package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when Walk is given no start states.
	ErrNoStart = errors.New("bfs: no start state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for states the search never saw.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Walk.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks for a Walk.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a state is dequeued. Returning an error stops
	// the walk; returning ErrStop stops it without reporting an error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops expanding states at that depth.
	MaxDepth int

	err error
}

// ErrStop may be returned by OnVisit to end the walk early and successfully.
var ErrStop = errors.New("bfs: stop")

// DefaultOptions returns background context, no depth limit and a no-op hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:     context.Background(),
		OnVisit: func(S, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits expansion depth.
//
//	d > 0: states at depth d are recorded but not expanded
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk:
//   - Order: states in dequeue order.
//   - Depth: distance (in transitions) from the nearest start state.
//   - Parent: predecessor of each non-start state.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from a start state to dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, ErrNotReached
	}
	path := []S{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
