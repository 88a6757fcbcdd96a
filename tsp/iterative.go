package tsp

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/subset"
)

// Iterative solves TSP exactly with the bottom-up Held–Karp recurrence.
//
// States are tabulated one generation (subset size k) at a time, from the full
// set down to {0}. A state of size k only reads states of size k+1, which are
// final once their generation is done, so every cell is written exactly once.
//
// With Workers > 1 each generation is split into contiguous chunks of masks
// solved concurrently. Chunks write disjoint memo rows and only read the
// previous generation; the errgroup barrier between generations keeps the
// ordering.
//
// Time:   Θ(n²·2ⁿ).
// Memory: O(n·2ⁿ) memo, plus O(C(n-1, k-1)) masks buffered per generation.
type Iterative struct {
	opts Options
}

// NewIterative returns a bottom-up Held–Karp solver. opts.Algo is ignored.
func NewIterative(opts Options) *Iterative {
	opts.Algo = HeldKarpIterative

	return &Iterative{opts: opts}
}

// Solve implements Solver.
func (it *Iterative) Solve(g *graph.WeightedGraph) (Result, error) {
	space, err := prepare(g, it.opts)
	if err != nil {
		return Result{}, err
	}

	e := &iterativeEngine{g: g, space: space, memo: newMemoTable(space)}
	workers := it.opts.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		k     int
		masks []subset.Mask
	)
	for k = space.N(); k >= 1; k-- {
		// --- 1. Collect generation k ---
		masks = masks[:0]
		space.Generation(k, func(m subset.Mask) bool {
			masks = append(masks, m)
			return true
		})

		// --- 2. Tabulate it ---
		if workers == 1 || len(masks) < 2*workers {
			e.evaluated += e.fill(masks)
			continue
		}
		if err = e.fillParallel(masks, workers); err != nil {
			return Result{}, err
		}
	}

	return finish(g, space, e, HeldKarpIterative, e.evaluated)
}

// iterativeEngine holds the eagerly tabulated memo.
type iterativeEngine struct {
	g         *graph.WeightedGraph
	space     subset.Space
	memo      *MemoTable
	evaluated int
}

// minCost reads a tabulated state. Unreachable cells (origin as current node
// after leaving it) are never queried.
func (e *iterativeEngine) minCost(mask subset.Mask, pos int) float64 {
	v, _ := e.memo.Lookup(mask, pos)

	return v
}

// fill computes every state whose mask is in masks and returns how many
// states it wrote. For each mask the current node ranges over its members,
// excluding the origin except in the start state.
func (e *iterativeEngine) fill(masks []subset.Mask) int {
	var (
		full    = e.space.Full()
		start   = e.space.Start()
		written int
		pos     int
		members = make([]int, 0, e.space.N())
	)
	for _, mask := range masks {
		members = subset.Members(members[:0], mask)
		for _, pos = range members {
			if pos == 0 && mask != start {
				continue
			}
			if mask == full {
				e.memo.store(mask, pos, closing(e.g, pos))
			} else {
				e.memo.store(mask, pos, relax(e.g, mask, pos, e.minCost))
			}
			written++
		}
	}

	return written
}

// fillParallel splits masks into one contiguous chunk per worker and fills
// them concurrently, returning after all chunks are done.
func (e *iterativeEngine) fillParallel(masks []subset.Mask, workers int) error {
	var (
		g      errgroup.Group
		chunk  = (len(masks) + workers - 1) / workers
		counts = make([]int, workers)
	)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(masks) {
			break
		}
		hi := min(lo+chunk, len(masks))
		w := w
		g.Go(func() error {
			counts[w] = e.fill(masks[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, c := range counts {
		e.evaluated += c
	}

	return nil
}
