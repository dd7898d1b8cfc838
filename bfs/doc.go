// Package bfs implements breadth-first search over an implicit state space.
//
// Unlike a stored graph, puzzle searches are usually described by a start
// state and a successor function: a beam at (point, heading), a gardener on
// an infinitely tiled map, a guard with a facing. Walk explores such a space
// level by level, recording each state's depth and parent.
//
// Options:
//
//   - WithMaxDepth: do not expand states at or beyond the given depth.
//   - WithOnVisit: hook called on every dequeued state; an error aborts.
//   - WithContext: cancellation, checked once per dequeue.
//
// Complexity: O(S + T) time and O(S) memory, where S is the number of reached
// states and T the number of generated transitions.
package bfs
