// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: graph builders, deterministic generators, and the
// solver roster used by cross-checks.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(20240611)

	// parWorkers is the worker count used for the parallel iterative engine.
	parWorkers = 4
)

var inf = math.Inf(1)

// sevenNode is the 7-city instance of the original exercise, 0 meaning
// "no edge" off the diagonal. Optimum: 63 along 0-1-3-5-6-4-2-0.
var sevenNode = [][]float64{
	{0, 12, 10, 0, 0, 0, 12},
	{12, 0, 8, 12, 0, 0, 0},
	{10, 8, 0, 11, 3, 0, 9},
	{0, 12, 11, 0, 11, 10, 0},
	{0, 0, 3, 11, 0, 6, 7},
	{0, 0, 0, 10, 6, 0, 9},
	{12, 0, 9, 0, 7, 9, 0},
}

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, rows [][]float64, opts ...graph.Option) *graph.WeightedGraph {
	t.Helper()
	g, err := graph.New(rows, opts...)
	require.NoError(t, err)

	return g
}

// cycleDist returns distances along a ring: d(i,j) = min(|i-j|, n-|i-j|).
// The optimal tour walks the ring and costs n.
func cycleDist(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			d := math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// randomInts builds an n×n matrix of integer costs in [1, maxW]. Each
// off-diagonal edge is kept with probability density, otherwise +Inf.
// symmetric mirrors the upper triangle.
func randomInts(rng *rand.Rand, n int, density float64, maxW int, symmetric bool) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			w := inf
			if rng.Float64() < density {
				w = float64(1 + rng.Intn(maxW))
			}
			a[i][j] = w
			if symmetric {
				a[j][i] = w
			}
		}
	}

	return a
}

// randomTenths is randomInts with costs k/10, k in [1, 10·maxW]. Such weights
// have no exact binary form, so sums depend on their order.
func randomTenths(rng *rand.Rand, n int, density float64, maxW int) [][]float64 {
	a := randomInts(rng, n, density, 10*maxW, false)
	for i := range a {
		for j := range a[i] {
			if i != j && !math.IsInf(a[i][j], 1) {
				a[i][j] /= 10
			}
		}
	}

	return a
}

// -----------------------------------------------------------------------------
// Solver roster
// -----------------------------------------------------------------------------

// namedSolver pairs a solver with a readable name for subtests.
type namedSolver struct {
	name string
	s    tsp.Solver
}

// heldKarpSolvers returns both Held–Karp engines (iterative twice: sequential
// and parallel).
func heldKarpSolvers() []namedSolver {
	par := tsp.DefaultOptions()
	par.Workers = parWorkers

	return []namedSolver{
		{"recursive", tsp.NewRecursive(tsp.DefaultOptions())},
		{"iterative", tsp.NewIterative(tsp.DefaultOptions())},
		{"iterative-par", tsp.NewIterative(par)},
	}
}

// allSolvers returns every exact solver.
func allSolvers() []namedSolver {
	return append(heldKarpSolvers(),
		namedSolver{"bb", tsp.NewBranchAndBound(tsp.DefaultOptions(), tsp.SimpleBound)},
		namedSolver{"exhaustive", tsp.NewBranchAndBound(tsp.DefaultOptions(), tsp.NoBound)},
	)
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustValidTourCost asserts a valid closed tour whose summed cost equals want.
func mustValidTourCost(t *testing.T, g *graph.WeightedGraph, res tsp.Result, want float64) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, g.N()))
	got, err := tsp.TourCost(g, res.Tour)
	require.NoError(t, err)
	require.Equal(t, want, got, "summed tour cost")
	require.Equal(t, want, res.Cost, "reported cost")
}
