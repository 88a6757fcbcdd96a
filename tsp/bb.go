// Package tsp — Branch-and-Bound (exact search with an admissible lower bound).
//
// BranchAndBoundSolver enumerates Hamiltonian cycles from node 0 by depth-first
// search with deterministic branching, pruning every partial path whose lower
// bound already reaches the incumbent. Directed (asymmetric) costs are
// supported. It needs no memo table, so it serves as an independent oracle
// for the Held–Karp engines.
//
// Rationale (succinct):
//  1. The graph is prefetched into a dense buffer; +Inf entries are skipped
//     while branching.
//  2. Lower bound (degree-1 relaxation): in a Hamiltonian cycle each node has
//     out-degree 1 and in-degree 1. For nodes whose outgoing edge is not yet
//     fixed add minOut[v]; for nodes whose incoming edge is not yet fixed add
//     minIn[v]. LB = costSoFar + max(Σ minOut, Σ minIn) ≤ OPT.
//     Prune whenever LB ≥ UB.
//  3. Branching order: from the current "last", try next nodes v in ascending
//     w[last→v] (index tiebreak). This tightens UB early while remaining fully
//     deterministic.
//  4. Policy NoBound replaces LB by costSoFar; the search then degenerates to
//     plain enumeration of tours with a cost cutoff (Exhaustive).
//
// Complexity:
//   - Worst case O(n!) (exact search). Practical speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates.
//   - Memory: O(n) path + O(n²) precomputes (minima, neighbor orders).
package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/heldkarp/graph"
)

// Bound selects the lower bound used by BranchAndBoundSolver.
type Bound int

const (
	// SimpleBound is the degree-1 relaxation.
	SimpleBound Bound = iota

	// NoBound disables the lower bound (plain enumeration).
	NoBound
)

// BranchAndBoundSolver is an exact depth-first search solver.
type BranchAndBoundSolver struct {
	opts  Options
	bound Bound
}

// NewBranchAndBound returns a search solver using the given bound policy.
// opts.Algo is set to BranchAndBound for SimpleBound and Exhaustive for NoBound.
func NewBranchAndBound(opts Options, bound Bound) *BranchAndBoundSolver {
	opts.Algo = BranchAndBound
	if bound == NoBound {
		opts.Algo = Exhaustive
	}

	return &BranchAndBoundSolver{opts: opts, bound: bound}
}

// bbEngine holds all search data and policies.
type bbEngine struct {
	n        int
	useBound bool

	// Graph data (dense buffer): w[u*n+v]
	w []float64

	// Precomputes for bound / branching order
	minOut []float64 // per-node minimal outgoing edge (excluding self)
	minIn  []float64 // per-node minimal incoming edge (excluding self)
	order  [][]int   // for each u: v≠u with finite w[u→v], sorted by weight

	// Current search state
	visited []bool // which nodes are on the current path
	path    []int  // path[0:depth], path[0] == 0

	// Incumbent (UB)
	bestTour []int
	bestCost float64
	foundAny bool

	expanded int
}

// at is a fast accessor into the dense weight buffer.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// initPrefetch loads the graph into a dense buffer.
func (e *bbEngine) initPrefetch(g *graph.WeightedGraph) {
	var i, j int
	e.w = make([]float64, e.n*e.n)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			e.w[i*e.n+j] = g.Cost(i, j)
		}
	}
}

// precomputeMinima computes per-node minOut/minIn excluding self-loops.
// A node without a finite outgoing or incoming edge makes the instance
// infeasible.
func (e *bbEngine) precomputeMinima() error {
	var (
		inf    = math.Inf(1)
		v, u   int
		mo, mi float64
	)
	e.minOut = make([]float64, e.n)
	e.minIn = make([]float64, e.n)
	for v = 0; v < e.n; v++ {
		mo, mi = inf, inf
		for u = 0; u < e.n; u++ {
			if u == v {
				continue
			}
			mo = math.Min(mo, e.at(v, u))
			mi = math.Min(mi, e.at(u, v))
		}
		e.minOut[v] = mo
		e.minIn[v] = mi
		if math.IsInf(mo, 1) || math.IsInf(mi, 1) {
			return fmt.Errorf("tsp: node %d lacks an incoming or outgoing edge: %w", v, ErrNoFeasibleTour)
		}
	}

	return nil
}

// buildNeighborOrder produces, for each u, the finite-cost successors v≠u
// sorted by ascending w[u→v], then by v.
func (e *bbEngine) buildNeighborOrder() {
	var u, v int
	e.order = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if v != u && !math.IsInf(e.at(u, v), 1) {
				row = append(row, v)
			}
		}
		from := u
		sort.SliceStable(row, func(i, j int) bool {
			wi, wj := e.at(from, row[i]), e.at(from, row[j])
			if wi == wj {
				return row[i] < row[j]
			}

			return wi < wj
		})
		e.order[u] = row
	}
}

// lowerBound implements the degree-1 relaxation. Outgoing is fixed for every
// visited node except last; incoming is fixed for every visited node except
// the origin.
func (e *bbEngine) lowerBound(costSoFar float64, last int) float64 {
	if !e.useBound {
		return costSoFar
	}
	var (
		sumOut, sumIn float64
		v             int
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			if v == last {
				sumOut += e.minOut[v]
			}
			if v == 0 {
				sumIn += e.minIn[v]
			}
		} else {
			sumOut += e.minOut[v]
			sumIn += e.minIn[v]
		}
	}

	return costSoFar + math.Max(sumOut, sumIn)
}

// commit closes the current path at the origin and records a new incumbent.
// total is already rounded.
func (e *bbEngine) commit(total float64) {
	e.path[e.n] = 0
	copy(e.bestTour, e.path)
	e.bestCost = total
	e.foundAny = true
}

// dfs performs the core search: deterministic branching + pruning by LB ≥ UB.
func (e *bbEngine) dfs(last int, depth int, costSoFar float64) {
	e.expanded++

	if e.lowerBound(costSoFar, last) >= e.bestCost {
		return
	}

	// All nodes used: close the cycle at the origin.
	if depth == e.n {
		c := e.at(last, 0)
		if math.IsInf(c, 1) {
			return // missing closing edge
		}
		if total := roundCost(costSoFar + c); total < e.bestCost {
			e.commit(total)
		}

		return
	}

	for _, v := range e.order[last] {
		if e.visited[v] {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+e.at(last, v))
		e.visited[v] = false
	}
}

// Solve implements Solver.
//
// Errors:
//   - ErrNoFeasibleTour if no Hamiltonian cycle exists.
//   - ErrGraphTooLarge if the bound is NoBound and n > MaxExhaustiveNodes.
//   - ErrNilGraph, ErrInvalidOptions.
func (s *BranchAndBoundSolver) Solve(g *graph.WeightedGraph) (Result, error) {
	if err := s.opts.validate(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.N()
	if s.bound == NoBound && n > MaxExhaustiveNodes {
		return Result{}, fmt.Errorf("tsp: exhaustive search over n=%d > %d nodes: %w", n, MaxExhaustiveNodes, ErrGraphTooLarge)
	}
	if n == 1 {
		return Result{Tour: []int{0, 0}, Cost: 0, Algorithm: s.opts.Algo, States: 1}, nil
	}
	if !s.opts.SkipPrecheck {
		if err := precheck(g); err != nil {
			return Result{}, err
		}
	}

	var e bbEngine
	e.n = n
	e.useBound = s.bound != NoBound
	e.initPrefetch(g)
	if err := e.precomputeMinima(); err != nil {
		return Result{}, err
	}
	e.buildNeighborOrder()

	e.visited = make([]bool, n)
	e.path = make([]int, n+1)
	e.visited[0] = true
	e.bestTour = make([]int, n+1)
	e.bestCost = math.Inf(1)

	e.dfs(0, 1, 0)

	if !e.foundAny {
		return Result{}, ErrNoFeasibleTour
	}

	return Result{Tour: e.bestTour, Cost: roundCost(e.bestCost), Algorithm: s.opts.Algo, States: e.expanded}, nil
}
