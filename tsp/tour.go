// Package tsp — tour utilities shared by all solvers.
//
// Provided helpers:
//   - ValidateTour: enforce Hamiltonian-cycle invariants on an index sequence.
//   - TourCost: sum the edge costs along a closed tour.
//   - roundCost: the 1e-9 normalization applied to every reported cost.
//   - RelabelGraph: permute node indices (used to move the origin).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for the tour helpers.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/graph"
)

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each node v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("tsp: tour length %d for n=%d: %w", len(tour), n, ErrInvalidTour)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("tsp: tour must start and end at 0: %w", ErrInvalidTour)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("tsp: position %d holds %d: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// roundScale is the precision of reported costs.
const roundScale = 1e9

// maxRoundable is where float spacing exceeds 1/roundScale; larger sums are
// returned as is.
const maxRoundable = (1 << 53) / roundScale

// roundCost rounds x to 1e-9 absolute precision, so that sums of the same
// edges taken in a different order report the same cost.
func roundCost(x float64) float64 {
	if math.Abs(x) >= maxRoundable {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// TourCost sums g's costs along tour[i]→tour[i+1], rounded to 1e-9. The tour
// must be valid for g (ValidateTour) and use only present edges.
//
// Complexity: O(n).
func TourCost(g *graph.WeightedGraph, tour []int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if err := ValidateTour(tour, g.N()); err != nil {
		return 0, err
	}
	if g.N() == 1 {
		return 0, nil
	}

	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i < g.N(); i++ {
		w = g.Cost(tour[i], tour[i+1])
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("tsp: edge %d→%d is absent: %w", tour[i], tour[i+1], ErrInvalidTour)
		}
		sum += w
	}

	return roundCost(sum), nil
}

// RelabelGraph returns a copy of g whose node perm[i] becomes node i, so that
// perm[0] is the new origin. Labels, if any, follow their nodes.
//
// Complexity: O(n²).
func RelabelGraph(g *graph.WeightedGraph, perm []int) (*graph.WeightedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()
	if len(perm) != n {
		return nil, fmt.Errorf("tsp: permutation length %d for n=%d: %w", len(perm), n, ErrInvalidOptions)
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("tsp: %v is not a permutation: %w", perm, ErrInvalidOptions)
		}
		seen[v] = true
	}

	src := g.Matrix()
	dst := make([][]float64, n)
	for i := range dst {
		dst[i] = make([]float64, n)
		for j := range dst[i] {
			dst[i][j] = src[perm[i]][perm[j]]
		}
	}

	var opts []graph.Option
	if labels := g.Labels(); labels != nil {
		moved := make([]string, n)
		for i, v := range perm {
			moved[i] = labels[v]
		}
		opts = append(opts, graph.WithLabels(moved))
	}

	return graph.New(dst, opts...)
}
