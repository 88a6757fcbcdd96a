// Package heldkarp finds exact travelling-salesman tours on small weighted
// graphs, including incomplete and directed ones.
//
// What is inside:
//
//	graph/    — immutable n×n cost table, +Inf as the single "no edge" value
//	subset/   — bitmask state space over visited nodes, popcount generations
//	tsp/      — Held–Karp (recursive and iterative), branch and bound, tour utilities
//	internal/ — instance files, route reports, host probing for the CLI
//	cmd/      — the heldkarp command
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
// A ring of four nodes has one tour up to direction; the solvers report
// 0 → 1 → 2 → 3 → 0, the smallest-index choice among equal optima.
//
// Every tour starts and ends at node 0 and visits each other node once. The
// solvers return the minimum-cost tour, or ErrNoFeasibleTour when the graph
// has no Hamiltonian cycle.
//
// Held–Karp runs in O(n²·2ⁿ) time and O(n·2ⁿ) memory, so it is meant for about
// twenty nodes; the memo budget is checked before anything is allocated.
//
//	go install github.com/katalvlaran/heldkarp/cmd/heldkarp@latest
package heldkarp
