// Package tsp — pieces shared by both Held–Karp engines.
//
// Recurrence (cost-to-go form), for a path that started at 0, has visited
// exactly mask and now sits at pos:
//
//	minCost(Full, pos) = cost(pos, 0)
//	minCost(mask, pos) = min_{c ∉ mask, cost(pos,c) < ∞} cost(pos,c) + minCost(mask∪{c}, c)
//	                     (+∞ when no such c exists)
//
// The optimum is minCost({0}, 0). Every dependency adds one node to mask, so
// the dependency graph is acyclic and ordered by subset size.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/subset"
)

// costToGo is the read side of a Held–Karp engine: the value of a state,
// computed on demand (recursive) or already tabulated (iterative).
type costToGo interface {
	minCost(mask subset.Mask, pos int) float64
}

// prepare runs the graph-independent and O(n²) checks shared by the DP
// solvers, in fail-fast order: options, nil graph, mask width, memo budget,
// then (unless disabled) the structural feasibility precheck. Nothing of
// size n·2ⁿ is allocated here.
func prepare(g *graph.WeightedGraph, opts Options) (subset.Space, error) {
	if err := opts.validate(); err != nil {
		return subset.Space{}, err
	}
	if g == nil {
		return subset.Space{}, ErrNilGraph
	}
	space, err := subset.New(g.N())
	if err != nil {
		return subset.Space{}, fmt.Errorf("tsp: n=%d: %w", g.N(), err)
	}
	if err = checkBudget(space, opts.budget()); err != nil {
		return subset.Space{}, err
	}
	if !opts.SkipPrecheck {
		if err = precheck(g); err != nil {
			return subset.Space{}, err
		}
	}

	return space, nil
}

// precheck rejects graphs that fail a necessary condition for a Hamiltonian
// cycle. It never rejects a feasible graph.
func precheck(g *graph.WeightedGraph) error {
	if v, ok := g.Deficient(); ok {
		return fmt.Errorf("tsp: node %d lacks an incoming or outgoing edge: %w", v, ErrNoFeasibleTour)
	}
	if !g.WeaklyConnected() {
		return fmt.Errorf("tsp: graph is disconnected: %w", ErrNoFeasibleTour)
	}

	return nil
}

// closing is the base case: the cost of returning from pos to the origin once
// every node is visited. pos == 0 only occurs for n == 1, whose tour [0, 0]
// costs the self-cost 0.
func closing(g *graph.WeightedGraph, pos int) float64 {
	if pos == 0 {
		return 0
	}

	return g.Cost(pos, 0)
}

// relax evaluates the inductive case for (mask, pos), reading successor
// states through next. Candidates are scanned in ascending index order.
func relax(g *graph.WeightedGraph, mask subset.Mask, pos int, next func(subset.Mask, int) float64) float64 {
	var (
		n    = g.N()
		best = math.Inf(1)
		c    int
		w    float64
		cand float64
	)
	for c = 1; c < n; c++ {
		if subset.IsVisited(mask, c) {
			continue
		}
		w = g.Cost(pos, c)
		if math.IsInf(w, 1) {
			continue // no edge pos→c
		}
		cand = w + next(subset.With(mask, c), c)
		if cand < best {
			best = cand
		}
	}

	return best
}

// finish turns a populated engine into a Result: it rejects an infinite
// optimum, then reconstructs and verifies the tour.
func finish(g *graph.WeightedGraph, space subset.Space, e costToGo, algo Algorithm, states int) (Result, error) {
	if math.IsInf(e.minCost(space.Start(), 0), 1) {
		return Result{}, ErrNoFeasibleTour
	}
	tour, cost, err := reconstruct(g, space, e)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: cost, Algorithm: algo, States: states}, nil
}
