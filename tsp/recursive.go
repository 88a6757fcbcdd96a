package tsp

import (
	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/subset"
)

// Recursive solves TSP exactly with the top-down Held–Karp recurrence: a state
// is computed on its first query and cached in a MemoTable private to the
// Solve call. Only states reachable along finite edges are ever evaluated.
//
// Time:   O(n²·2ⁿ) worst case.
// Memory: O(n·2ⁿ) memo, O(n) recursion depth.
type Recursive struct {
	opts Options
}

// NewRecursive returns a top-down Held–Karp solver. opts.Algo is ignored.
func NewRecursive(opts Options) *Recursive {
	opts.Algo = HeldKarpRecursive

	return &Recursive{opts: opts}
}

// Solve implements Solver.
func (r *Recursive) Solve(g *graph.WeightedGraph) (Result, error) {
	space, err := prepare(g, r.opts)
	if err != nil {
		return Result{}, err
	}

	e := &recursiveEngine{g: g, space: space, memo: newMemoTable(space)}
	e.minCost(space.Start(), 0)

	return finish(g, space, e, HeldKarpRecursive, e.evaluated)
}

// recursiveEngine evaluates states lazily.
type recursiveEngine struct {
	g         *graph.WeightedGraph
	space     subset.Space
	memo      *MemoTable
	evaluated int
}

func (e *recursiveEngine) minCost(mask subset.Mask, pos int) float64 {
	if v, ok := e.memo.Lookup(mask, pos); ok {
		return v
	}

	var v float64
	if mask == e.space.Full() {
		v = closing(e.g, pos)
	} else {
		v = relax(e.g, mask, pos, e.minCost)
	}
	e.memo.store(mask, pos, v)
	e.evaluated++

	return v
}
