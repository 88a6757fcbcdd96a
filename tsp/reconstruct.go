// Package tsp — path reconstruction from a populated cost-to-go table.
//
// The walk starts at ({0}, 0) and, at each step, moves to the unvisited node c
// minimizing cost(pos,c) + minCost(mask∪{c}, c), taking the smallest index
// among equal minima. The output is therefore a pure function of the graph,
// independent of which engine filled the table or in which order.
//
// Every step is checked against the table: the chosen value must equal
// minCost(mask, pos) exactly, since that cell was computed as the minimum of
// the very same expressions. A mismatch is ErrReconstruction.
//
// The reported cost is the forward sum along the emitted tour, rounded like
// TourCost. The memo sums the same edges backward, and the two orders may
// differ in the last bits for fractional weights.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/subset"
)

// reconstruct emits the optimal closed tour and its cost, equal to
// TourCost(g, tour).
//
// Errors:
//   - ErrNoFeasibleTour if some step has no finite continuation.
//   - ErrReconstruction if a step disagrees with the memoized value.
//
// Complexity: O(n²) table queries.
func reconstruct(g *graph.WeightedGraph, space subset.Space, e costToGo) ([]int, float64, error) {
	var (
		n    = space.N()
		full = space.Full()
		mask = space.Start()
		pos  = 0
		tour = make([]int, 1, n+1)
	)
	if math.IsInf(e.minCost(mask, pos), 1) {
		return nil, 0, ErrNoFeasibleTour
	}

	var (
		c, next    int
		w          float64
		cand, best float64
		want, sum  float64
	)
	for mask != full {
		want = e.minCost(mask, pos)
		best, next = math.Inf(1), -1
		for c = 1; c < n; c++ {
			if subset.IsVisited(mask, c) {
				continue
			}
			w = g.Cost(pos, c)
			if math.IsInf(w, 1) {
				continue
			}
			cand = w + e.minCost(subset.With(mask, c), c)
			if cand < best { // strict: first minimum wins
				best, next = cand, c
			}
		}
		if next < 0 || math.IsInf(best, 1) {
			return nil, 0, ErrNoFeasibleTour
		}
		if best != want {
			return nil, 0, fmt.Errorf("tsp: step %d→%d costs %v, memo holds %v: %w", pos, next, best, want, ErrReconstruction)
		}
		sum += g.Cost(pos, next)
		tour = append(tour, next)
		mask, pos = subset.With(mask, next), next
	}

	if back := closing(g, pos); back != e.minCost(full, pos) {
		return nil, 0, fmt.Errorf("tsp: closing edge %d→0 costs %v, memo holds %v: %w", pos, back, e.minCost(full, pos), ErrReconstruction)
	}
	sum += closing(g, pos)
	tour = append(tour, 0)

	return tour, roundCost(sum), nil
}
