// Package graph provides a small string-keyed graph used by the dfs and flow
// packages and by the day kernels that build explicit graphs (wiring
// diagrams, compressed trail networks, page-ordering rules).
//
// A Graph is either directed or undirected (WithDirected) and either weighted
// or unweighted (WithWeighted). Unweighted graphs reject non-zero weights.
// Parallel edges are not kept: adding an existing edge replaces its weight.
//
// Vertices and Neighbors return IDs in sorted order so that every algorithm
// built on top is deterministic.
package graph
