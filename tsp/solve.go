// Package tsp - unified entry point for the exact solvers.
//
// All solvers implement Solver and agree on the optimal cost for any graph
// they accept; the two Held–Karp engines also agree on the tour, because both
// are reconstructed by the same deterministic walk.
//
//   - HeldKarpRecursive: lazy memo, evaluates reachable states only.
//   - HeldKarpIterative: eager memo by subset size, optionally parallel.
//   - BranchAndBound:    DFS + degree-1 bound; no memo.
//   - Exhaustive:        DFS without bound; n ≤ MaxExhaustiveNodes.
package tsp

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/heldkarp/graph"
)

// Solver computes a minimum-cost closed tour from node 0.
//
// Solve returns ErrNoFeasibleTour when the graph has no Hamiltonian cycle;
// callers distinguish it with errors.Is. Implementations keep no state
// between calls and are safe for concurrent use.
type Solver interface {
	Solve(g *graph.WeightedGraph) (Result, error)
}

var (
	_ Solver = (*Recursive)(nil)
	_ Solver = (*Iterative)(nil)
	_ Solver = (*BranchAndBoundSolver)(nil)
)

// New returns the solver selected by opts.Algo.
func New(opts Options) (Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	switch opts.Algo {
	case HeldKarpIterative:
		return NewIterative(opts), nil
	case BranchAndBound:
		return NewBranchAndBound(opts, SimpleBound), nil
	case Exhaustive:
		return NewBranchAndBound(opts, NoBound), nil
	default:
		return NewRecursive(opts), nil
	}
}

// Solve is a convenience wrapper: New(opts) followed by Solve(g), with one
// debug record emitted to opts.Logger.
func Solve(g *graph.WeightedGraph, opts Options) (Result, error) {
	s, err := New(opts)
	if err != nil {
		return Result{}, err
	}

	began := time.Now()
	res, err := s.Solve(g)
	logSolve(opts, g, res, err, time.Since(began))

	return res, err
}

// logSolve records the outcome of one solve at debug level.
func logSolve(opts Options, g *graph.WeightedGraph, res Result, err error, took time.Duration) {
	if opts.Logger == nil || !opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String("algo", opts.Algo.String()),
		slog.Duration("took", took),
	}
	if g != nil {
		attrs = append(attrs, slog.Int("n", g.N()))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else {
		attrs = append(attrs, slog.Int("states", res.States), slog.Float64("cost", res.Cost))
	}
	opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "tsp: solve", attrs...)
}
