// Package graph provides WeightedGraph, the read-only input of the exact TSP
// solvers: a directed n×n cost matrix in which +Inf is the single "no edge"
// sentinel.
//
// Construction converts foreign conventions at the boundary:
//
//	g, err := graph.New(rows, graph.WithZeroAsMissing()) // 0 off-diagonal ⇒ no edge
//	g, err := graph.FromAdjacency(adj, []string{"City 1", "City 2", ...})
//
// After construction a graph never changes; it is safe for concurrent reads.
// Errors are the sentinels ErrMalformedGraph and ErrInvalidIndex.
package graph
