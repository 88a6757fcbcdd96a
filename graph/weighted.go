// SPDX-License-Identifier: MIT

// Package graph: WeightedGraph, an immutable n×n table of directed edge costs.
//
// Storage is a flat row-major slice (cost of i→j at i*n+j), the same layout as
// a dense matrix, so the hot accessor is a single multiply-add.
//
// Numeric policy:
//   - +Inf is the one and only "no edge" sentinel.
//   - Finite costs are ≥ 0. NaN, −Inf and negative values are rejected.
//   - Finite costs are at most math.MaxFloat64/(n+1), so no tour sum of n
//     edges overflows to +Inf, rounding included.
//   - The diagonal is never read by the solvers; after the missing-value
//     conversion it must be 0 or +Inf, and it is stored as 0.
package graph

import (
	"math"
	"strconv"
)

// WeightedGraph is a read-only directed cost matrix with optional labels.
// The zero value is not usable; build one with New or FromAdjacency.
type WeightedGraph struct {
	n      int
	costs  []float64 // len == n*n, row-major
	labels []string  // nil or len == n
}

// New validates costs and returns an immutable WeightedGraph.
//
// Stage 1 (Shape): at least one row, every row of length n.
// Stage 2 (Values): entries are normalized through the options
// (WithZeroAsMissing, WithMissingValue), then off-diagonal ones must be +Inf
// or finite in [0, math.MaxFloat64/(n+1)].
// Stage 3 (Diagonal): 0 or +Inf after normalization; any other value is a
// malformed self-loop.
// Stage 4 (Labels): optional; len == n, non-empty, unique.
//
// Errors: ErrMalformedGraph wrapped with the offending position.
// Complexity: O(n²) time, O(n²) memory.
func New(costs [][]float64, opts ...Option) (*WeightedGraph, error) {
	o := gatherOptions(opts...)

	n := len(costs)
	if n == 0 {
		return nil, malformedf("empty cost matrix")
	}

	g := &WeightedGraph{n: n, costs: make([]float64, n*n)}

	limit := math.MaxFloat64 / float64(n+1)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return nil, malformedf("row %d has length %d, want %d", i, len(costs[i]), n)
		}
		for j = 0; j < n; j++ {
			v = costs[i][j]
			if math.IsNaN(v) {
				return nil, malformedf("cost[%d][%d] is NaN", i, j)
			}
			v = o.normalize(v)
			if i == j {
				if v != 0 && !math.IsInf(v, 1) {
					return nil, malformedf("cost[%d][%d]=%v; self-loop must be 0 or +Inf", i, j, v)
				}
				continue // diagonal stays 0
			}
			if v < 0 {
				return nil, malformedf("cost[%d][%d]=%v; negative costs are undefined", i, j, v)
			}
			if v > limit && !math.IsInf(v, 1) {
				return nil, malformedf("cost[%d][%d]=%v; a tour of %d edges would overflow", i, j, v, n)
			}
			g.costs[i*n+j] = v
		}
	}

	if o.labels != nil {
		if err := validateLabels(o.labels, n); err != nil {
			return nil, err
		}
		g.labels = o.labels
	}

	return g, nil
}

// FromAdjacency builds a graph from a labelled adjacency list.
// order fixes the label → index mapping (order[0] becomes node 0, the tour
// origin). Pairs absent from adj are "no edge". Every label used in adj must
// appear in order. WithLabels is ignored: labels always come from order.
//
// Complexity: O(n² + E).
func FromAdjacency(adj map[string]map[string]float64, order []string, opts ...Option) (*WeightedGraph, error) {
	n := len(order)
	if n == 0 {
		return nil, malformedf("empty node order")
	}
	if err := validateLabels(order, n); err != nil {
		return nil, err
	}

	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	inf := math.Inf(1)
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			if i != j {
				costs[i][j] = inf
			}
		}
	}

	for from, row := range adj {
		u, ok := index[from]
		if !ok {
			return nil, malformedf("unknown node %q", from)
		}
		for to, w := range row {
			v, ok := index[to]
			if !ok {
				return nil, malformedf("unknown node %q in edges of %q", to, from)
			}
			if u == v {
				continue // self-loops carry no meaning for a tour
			}
			costs[u][v] = w
		}
	}

	opts = append(opts, WithLabels(order))

	return New(costs, opts...)
}

// validateLabels enforces len(labels)==n, non-empty strings, and uniqueness.
func validateLabels(labels []string, n int) error {
	if len(labels) != n {
		return malformedf("got %d labels for %d nodes", len(labels), n)
	}
	seen := make(map[string]struct{}, n)
	for i, id := range labels {
		if id == "" {
			return malformedf("label %d is empty", i)
		}
		if _, dup := seen[id]; dup {
			return malformedf("duplicate label %q", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// N returns the number of nodes.
func (g *WeightedGraph) N() int { return g.n }

// EdgeCost returns the cost of the directed edge i→j, or +Inf when absent.
// Complexity: O(1).
func (g *WeightedGraph) EdgeCost(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, ErrInvalidIndex
	}

	return g.costs[i*g.n+j], nil
}

// Cost is the unchecked accessor used in solver hot loops.
// Callers guarantee 0 ≤ i, j < N().
func (g *WeightedGraph) Cost(i, j int) float64 { return g.costs[i*g.n+j] }

// HasEdge reports whether i→j carries a finite cost. Self-pairs report false.
func (g *WeightedGraph) HasEdge(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n || i == j {
		return false
	}

	return !math.IsInf(g.costs[i*g.n+j], 1)
}

// Labels returns a copy of the node labels, or nil if none were supplied.
func (g *WeightedGraph) Labels() []string {
	if g.labels == nil {
		return nil
	}

	return append([]string(nil), g.labels...)
}

// Label returns the label of node i, falling back to its decimal index.
func (g *WeightedGraph) Label(i int) string {
	if g.labels != nil && i >= 0 && i < g.n {
		return g.labels[i]
	}

	return strconv.Itoa(i)
}

// Matrix returns a deep copy of the cost matrix with +Inf for absent edges.
// Complexity: O(n²).
func (g *WeightedGraph) Matrix() [][]float64 {
	out := make([][]float64, g.n)
	for i := range out {
		out[i] = append([]float64(nil), g.costs[i*g.n:(i+1)*g.n]...)
	}

	return out
}
