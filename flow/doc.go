// Package flow computes maximum flows and minimum cuts on graph.Graph.
//
// EdmondsKarp repeatedly augments along the shortest path (by edge count)
// in the residual graph, found with bfs.Walk. Edge weights are capacities;
// an undirected edge offers its capacity in both directions.
//
// MinCut reads the source side of a minimum cut from the residual graph
// returned by EdmondsKarp: every vertex still reachable from the source.
//
// Complexity: O(V · E²) time, O(V + E) memory.
package flow
