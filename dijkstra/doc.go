// Package dijkstra finds minimum-cost paths over an implicit weighted state space.
//
// What:
//
//	Search expands states in order of increasing accumulated cost, starting
//	from one or more sources, until a goal state is popped. Successors are
//	produced on demand by a caller-supplied function, so the state can carry
//	whatever the puzzle needs (position, heading, run length).
//
// Why:
//
//   - Grid puzzles with movement rules are shortest-path problems on a state
//     graph that is never materialized.
//   - A lazy priority queue keeps the implementation small and fast enough for
//     a few million states.
//
// Complexity:
//
//   - Time: O((S + T) log T), S states reached, T transitions relaxed.
//   - Memory: O(S + T) with lazy decrease-key.
//
// Errors:
//
//   - ErrNoSource       if sources is empty.
//   - ErrNegativeWeight if a transition has negative cost.
//   - ErrNoPath         if no goal is reachable (within MaxCost, if set).
//   - ErrBadMaxCost     if WithMaxCost receives a negative value.
package dijkstra
