package dijkstra

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource indicates that Search was called without a source state.
	ErrNoSource = errors.New("dijkstra: no source state")

	// ErrNegativeWeight indicates that a successor function yielded a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no goal state is reachable.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Edge is a transition to state To with non-negative Cost.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Path is the result of a successful Search.
// States is populated only when WithReturnPath is set; it runs from a source
// to the goal inclusive.
type Path[S comparable] struct {
	Cost   int
	Goal   S
	States []S
}

// Options configure a Search.
type Options struct {
	// MaxCost, if > 0, abandons states whose cost exceeds it.
	MaxCost int

	// ReturnPath records predecessors so Path.States can be rebuilt.
	ReturnPath bool

	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// WithMaxCost prunes every state costing more than max.
// A negative value makes Search fail with ErrBadMaxCost.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns unlimited cost and no path tracking.
func DefaultOptions() Options {
	return Options{}
}
