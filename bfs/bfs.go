package bfs

import (
	"errors"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	queue []S
	res   *Result[S]
}

// Walk runs breadth-first search from every state in start (multi-source),
// expanding states with next. Duplicate start states are collapsed.
// Returns ErrNoStart, ErrOptionViolation, the context error, or any error
// from the OnVisit hook other than ErrStop.
func Walk[S comparable](start []S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(start) == 0 {
		return nil, ErrNoStart
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		queue: make([]S, 0, len(start)),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range start {
		if !w.res.Reached(s) {
			w.res.Depth[s] = 0
			w.queue = append(w.queue, s)
		}
	}

	err := w.loop()
	if errors.Is(err, ErrStop) {
		err = nil
	}
	return w.res, err
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[head]
		depth := w.res.Depth[cur]
		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %v: %w", cur, err)
		}

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.next(cur) {
			if w.res.Reached(nb) {
				continue
			}
			w.res.Depth[nb] = depth + 1
			w.res.Parent[nb] = cur
			w.queue = append(w.queue, nb)
		}
	}
	return nil
}
