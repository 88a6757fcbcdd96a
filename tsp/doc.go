// Package tsp provides exact Travelling Salesman Problem solvers for small
// directed graphs whose adjacency may be incomplete.
//
// Input is a *graph.WeightedGraph; +Inf is the only "no edge" value. Every
// solver returns the minimum-cost closed tour starting and ending at node 0:
//
//   - HeldKarpRecursive — bitmask dynamic program, memoized top-down.
//   - HeldKarpIterative — the same recurrence tabulated by subset size,
//     optionally across goroutines.
//   - BranchAndBound / Exhaustive — depth-first search, O(n!) worst case.
//
// Held–Karp costs O(n²·2ⁿ) time and O(n·2ⁿ) memory, bounded by
// Options.MemoryBudget.
//
// Outcomes:
//   - Result{Tour, Cost} with len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
//   - ErrNoFeasibleTour when no Hamiltonian cycle exists (never a zero-cost tour).
//   - ErrGraphTooLarge before allocation when the memo would not fit.
//
// The Held–Karp tour is deterministic: among equally cheap continuations the
// smallest node index is taken.
//
// Use this package for n≲20; beyond that the state space outgrows memory.
package tsp
