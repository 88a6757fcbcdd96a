// SPDX-License-Identifier: MIT

// Package graph: cheap structural necessary conditions for a Hamiltonian cycle.
//
// Neither check proves that a tour exists; each one can only prove that none
// does. Solvers run them before allocating O(n·2ⁿ) memo tables.
package graph

import (
	"math"

	uf "github.com/spakin/disjoint"
)

// Deficient returns the first node (ascending index) that has no finite
// outgoing edge or no finite incoming edge to another node. Such a node can
// never sit on a Hamiltonian cycle. For n == 1 there is nothing to check.
//
// Complexity: O(n²).
func (g *WeightedGraph) Deficient() (node int, ok bool) {
	if g.n < 2 {
		return 0, false
	}

	var (
		v, u    int
		out, in bool
	)
	for v = 0; v < g.n; v++ {
		out, in = false, false
		for u = 0; u < g.n && !(out && in); u++ {
			if u == v {
				continue
			}
			if !math.IsInf(g.costs[v*g.n+u], 1) {
				out = true
			}
			if !math.IsInf(g.costs[u*g.n+v], 1) {
				in = true
			}
		}
		if !out || !in {
			return v, true
		}
	}

	return 0, false
}

// WeaklyConnected reports whether the graph is connected when edge directions
// are ignored, using a disjoint-set forest over the finite edges.
//
// Complexity: O(n² · α(n)).
func (g *WeightedGraph) WeaklyConnected() bool {
	if g.n < 2 {
		return true
	}

	elems := make([]*uf.Element, g.n)
	for i := range elems {
		elems[i] = uf.NewElement()
		elems[i].Data = i
	}

	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if i != j && !math.IsInf(g.costs[i*g.n+j], 1) {
				uf.Union(elems[i], elems[j])
			}
		}
	}

	root := elems[0].Find()
	for i = 1; i < g.n; i++ {
		if elems[i].Find() != root {
			return false
		}
	}

	return true
}
