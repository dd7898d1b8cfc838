// Package dfs provides depth-first algorithms on graph.Graph:
//
//   - TopologicalSort: linear order of a directed acyclic graph.
//   - HasCycle: back-edge detection on directed graphs.
//   - LongestPath: maximum-weight simple path between two vertices.
//
// All traversals visit vertices and neighbors in sorted ID order, so results
// are deterministic.
package dfs
