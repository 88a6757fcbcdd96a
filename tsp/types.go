// Package tsp — shared types, options, and the sentinel error set.
//
// Every solver in this package returns one of the sentinels below (possibly
// wrapped with fmt.Errorf("...: %w", ErrX) for context); tests and callers
// match them with errors.Is.
package tsp

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/heldkarp/subset"
)

var (
	// ErrNoFeasibleTour reports that the graph admits no Hamiltonian cycle
	// through node 0. It is an outcome, not a fault: the input was valid.
	ErrNoFeasibleTour = errors.New("tsp: no feasible tour")

	// ErrGraphTooLarge is returned before any memo allocation when the node
	// count exceeds the mask width or the memo would exceed Options.MemoryBudget.
	ErrGraphTooLarge = subset.ErrGraphTooLarge

	// ErrReconstruction signals that the reconstructed tour does not realize
	// the memoized optimum. It indicates an engine bug, never bad input.
	ErrReconstruction = errors.New("tsp: reconstructed tour disagrees with memoized cost")

	// ErrUnsupportedAlgorithm is returned for an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOptions is returned for nonsensical option values.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrNilGraph is returned when a solver receives a nil graph.
	ErrNilGraph = errors.New("tsp: nil graph")

	// ErrInvalidTour is returned by tour utilities when a sequence is not a
	// closed Hamiltonian cycle over the graph, or uses an absent edge.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Result holds the outcome of a successful solve.
type Result struct {
	// Tour is the sequence of node indices, starting and ending at 0.
	// For n nodes, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total cost of the cycle, rounded to 1e-9. It equals
	// TourCost(g, Tour) for every solver.
	Cost float64

	// Algorithm identifies the solver that produced the result.
	Algorithm Algorithm

	// States counts memo entries evaluated (Held–Karp) or search nodes
	// expanded (branch and bound).
	States int
}

// Algorithm selects an exact solver.
type Algorithm int

const (
	// HeldKarpRecursive fills the memo table top-down, on first query.
	HeldKarpRecursive Algorithm = iota

	// HeldKarpIterative fills the memo table eagerly, one subset size at a time.
	HeldKarpIterative

	// BranchAndBound runs a depth-first search pruned by a degree-1 lower bound.
	BranchAndBound

	// Exhaustive enumerates every tour (branch and bound without a bound).
	Exhaustive
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case HeldKarpRecursive:
		return "recursive"
	case HeldKarpIterative:
		return "iterative"
	case BranchAndBound:
		return "bb"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{HeldKarpRecursive, HeldKarpIterative, BranchAndBound, Exhaustive} {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, ErrUnsupportedAlgorithm
}

// DefaultMemoryBudget bounds the Held–Karp memo table (1 GiB, n ≤ 23).
const DefaultMemoryBudget uint64 = 1 << 30

// MaxExhaustiveNodes bounds Exhaustive, which visits up to (n-1)! leaves.
const MaxExhaustiveNodes = 12

// Options configures a solve.
//
// The zero value is usable: recursive Held–Karp, default budget, one worker,
// feasibility precheck enabled, no logging.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// MemoryBudget caps the memo table size in bytes; 0 ⇒ DefaultMemoryBudget.
	MemoryBudget uint64

	// Workers sets goroutines per subset-size generation in HeldKarpIterative.
	// 0 or 1 ⇒ sequential. Ignored by the other algorithms.
	Workers int

	// SkipPrecheck disables the O(n²) degree and connectivity checks that let
	// obviously infeasible graphs fail before the memo is allocated.
	SkipPrecheck bool

	// Logger receives one debug record per solve. nil ⇒ silent.
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:         HeldKarpRecursive,
		MemoryBudget: DefaultMemoryBudget,
		Workers:      1,
	}
}

// budget resolves MemoryBudget with its default.
func (o Options) budget() uint64 {
	if o.MemoryBudget == 0 {
		return DefaultMemoryBudget
	}

	return o.MemoryBudget
}

// validate checks option values that do not depend on the graph.
func (o Options) validate() error {
	if o.Workers < 0 {
		return ErrInvalidOptions
	}
	switch o.Algo {
	case HeldKarpRecursive, HeldKarpIterative, BranchAndBound, Exhaustive:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}
