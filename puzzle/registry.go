package puzzle

import (
	"fmt"
	"sort"
)

// Registry maps dates to solutions. It is populated once at start-up and
// read afterwards, so it carries no locking.
type Registry struct {
	byKey map[string]Solution
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Solution)}
}

// Register adds s to the registry.
// Returns ErrBadDate for impossible dates, ErrDuplicatePuzzle when the date
// is already taken, and ErrNoAnswer when Part1 is missing.
func (r *Registry) Register(s Solution) error {
	if s.Year < FirstYear || s.Day < 1 || s.Day > LastDay {
		return fmt.Errorf("%w: %d/%d", ErrBadDate, s.Year, s.Day)
	}
	if s.Part1 == nil {
		return fmt.Errorf("%w: %s part 1", ErrNoAnswer, s.Key())
	}
	if _, ok := r.byKey[s.Key()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePuzzle, s.Key())
	}
	r.byKey[s.Key()] = s
	return nil
}

// MustRegister is Register that panics on error; used by the yearly
// registration tables where a failure is a programming mistake.
func (r *Registry) MustRegister(solutions ...Solution) {
	for _, s := range solutions {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the solution for (year, day) or ErrUnknownPuzzle.
func (r *Registry) Lookup(year, day int) (Solution, error) {
	s, ok := r.byKey[Key(year, day)]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %s", ErrUnknownPuzzle, Key(year, day))
	}
	return s, nil
}

// All returns every solution ordered by date.
func (r *Registry) All() []Solution {
	out := make([]Solution, 0, len(r.byKey))
	for _, s := range r.byKey {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Year returns the solutions of a single year ordered by day.
func (r *Registry) Year(year int) []Solution {
	var out []Solution
	for _, s := range r.All() {
		if s.Year == year {
			out = append(out, s)
		}
	}
	return out
}

// Len reports the number of registered solutions.
func (r *Registry) Len() int { return len(r.byKey) }
