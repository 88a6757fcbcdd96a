package tsp

import (
	"math"
	"testing"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/subset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable is a hand-filled costToGo used to drive reconstruct directly.
type fakeTable map[subset.Mask]map[int]float64

func (f fakeTable) minCost(mask subset.Mask, pos int) float64 {
	if row, ok := f[mask]; ok {
		if v, ok := row[pos]; ok {
			return v
		}
	}

	return math.Inf(1)
}

func triangle(t *testing.T) (*graph.WeightedGraph, subset.Space) {
	t.Helper()
	g, err := graph.New([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	require.NoError(t, err)
	space, err := subset.New(3)
	require.NoError(t, err)

	return g, space
}

// honest returns the true cost-to-go table of the triangle.
func honest() fakeTable {
	return fakeTable{
		0b111: {1: 1, 2: 3},
		0b011: {1: 2 + 3},
		0b101: {2: 2 + 1},
		0b001: {0: 6},
	}
}

func TestReconstruct_Honest(t *testing.T) {
	g, space := triangle(t)
	tour, cost, err := reconstruct(g, space, honest())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, tour, "0-1-2-0 and 0-2-1-0 tie; smallest index first")
	assert.Equal(t, 6.0, cost)
}

func TestReconstruct_ReportsRoundedForwardSum(t *testing.T) {
	g, err := graph.New([][]float64{
		{0, 0.1, 0.7},
		{0.1, 0, 0.2},
		{0.7, 0.9, 0},
	})
	require.NoError(t, err)
	space, err := subset.New(3)
	require.NoError(t, err)

	w := g.Cost
	table := fakeTable{
		0b111: {1: w(1, 0), 2: w(2, 0)},
		0b011: {1: w(1, 2) + w(2, 0)},
		0b101: {2: w(2, 1) + w(1, 0)},
	}
	table[0b001] = map[int]float64{0: math.Min(w(0, 1)+table[0b011][1], w(0, 2)+table[0b101][2])}

	tour, cost, err := reconstruct(g, space, table)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, tour)
	assert.Equal(t, 1.0, cost)
	summed, err := TourCost(g, tour)
	require.NoError(t, err)
	assert.Equal(t, summed, cost)
}

func TestRoundCost(t *testing.T) {
	assert.Equal(t, 11.8, roundCost(11.799999999999999))
	assert.Equal(t, 11.8, roundCost(11.800000000000002))
	a, b := 0.1, 0.2
	assert.Equal(t, 0.3, roundCost(a+b))
	assert.Equal(t, 1e300, roundCost(1e300), "beyond 1e-9 resolution")
	assert.True(t, math.IsInf(roundCost(math.Inf(1)), 1))
}

func TestReconstruct_DetectsInconsistentMemo(t *testing.T) {
	g, space := triangle(t)

	lying := honest()
	lying[0b001][0] = 5 // claims a cheaper optimum than any tour
	_, _, err := reconstruct(g, space, lying)
	require.ErrorIs(t, err, ErrReconstruction)

	badClose := honest()
	badClose[0b111][2] = 2 // closing edge 2→0 is 3
	badClose[0b011][1] = 2 + 2
	badClose[0b001][0] = 1 + 4
	_, _, err = reconstruct(g, space, badClose)
	require.ErrorIs(t, err, ErrReconstruction)
}

func TestReconstruct_NoFeasibleContinuation(t *testing.T) {
	g, space := triangle(t)

	stuck := honest()
	stuck[0b011][1] = math.Inf(1)
	stuck[0b101][2] = math.Inf(1)
	_, _, err := reconstruct(g, space, stuck)
	require.ErrorIs(t, err, ErrNoFeasibleTour)

	infinite := honest()
	infinite[0b001][0] = math.Inf(1)
	_, _, err = reconstruct(g, space, infinite)
	require.ErrorIs(t, err, ErrNoFeasibleTour)
}

func TestCheckBudget(t *testing.T) {
	space, err := subset.New(10)
	require.NoError(t, err)

	// 10·2⁹ cells of 8 bytes.
	need := uint64(10*512) * bytesPerCell
	require.NoError(t, checkBudget(space, need))
	require.ErrorIs(t, checkBudget(space, need-1), ErrGraphTooLarge)
}

func TestMemoTable(t *testing.T) {
	space, err := subset.New(4)
	require.NoError(t, err)
	m := newMemoTable(space)

	assert.Equal(t, 4*8, m.Len())
	assert.Zero(t, m.Computed())

	_, ok := m.Lookup(0b1011, 3)
	assert.False(t, ok)

	m.store(0b1011, 3, math.Inf(1))
	v, ok := m.Lookup(0b1011, 3)
	assert.True(t, ok, "+Inf is a computed dead end, not a missing value")
	assert.True(t, math.IsInf(v, 1))

	m.store(space.Full(), 2, 7)
	v, ok = m.Lookup(space.Full(), 2)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 2, m.Computed())
}

func TestRecursiveMemoMatchesIterative(t *testing.T) {
	g, err := graph.New([][]float64{
		{0, 12, 10, 0, 0, 0, 12},
		{12, 0, 8, 12, 0, 0, 0},
		{10, 8, 0, 11, 3, 0, 9},
		{0, 12, 11, 0, 11, 10, 0},
		{0, 0, 3, 11, 0, 6, 7},
		{0, 0, 0, 10, 6, 0, 9},
		{12, 0, 9, 0, 7, 9, 0},
	}, graph.WithZeroAsMissing())
	require.NoError(t, err)
	space, err := subset.New(g.N())
	require.NoError(t, err)

	rec := &recursiveEngine{g: g, space: space, memo: newMemoTable(space)}
	require.Equal(t, 63.0, rec.minCost(space.Start(), 0))

	it, err := NewIterative(DefaultOptions()).Solve(g)
	require.NoError(t, err)
	require.Equal(t, 63.0, it.Cost)

	// Every state the lazy engine touched must match a fresh eager table.
	eager := &iterativeEngine{g: g, space: space, memo: newMemoTable(space)}
	for k := space.N(); k >= 1; k-- {
		var masks []subset.Mask
		space.Generation(k, func(m subset.Mask) bool {
			masks = append(masks, m)
			return true
		})
		eager.fill(masks)
	}
	checked := 0
	for k := 1; k <= space.N(); k++ {
		space.Generation(k, func(mask subset.Mask) bool {
			for pos := 0; pos < space.N(); pos++ {
				if !subset.IsVisited(mask, pos) {
					continue
				}
				lazy, ok := rec.memo.Lookup(mask, pos)
				if !ok {
					continue
				}
				assert.Equal(t, lazy, eager.minCost(mask, pos), "mask=%b pos=%d", mask, pos)
				checked++
			}
			return true
		})
	}
	assert.Equal(t, rec.evaluated, checked)
}
