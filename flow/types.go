package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source and sink are the same vertex")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: edge %s→%s has negative capacity %d", e.From, e.To, e.Cap)
}

// FlowOptions tune a max-flow run. A nil *FlowOptions uses defaults.
type FlowOptions struct {
	// Limit, if > 0, stops augmenting once the flow reaches it. Useful when
	// the caller only needs to know whether the flow exceeds a threshold.
	Limit int

	// Logger receives a debug entry per augmenting path. Nil disables logging.
	Logger *zap.Logger
}
