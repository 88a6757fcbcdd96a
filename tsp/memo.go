// Package tsp — MemoTable, the per-solve cost-to-go store of Held–Karp.
//
// Layout: only masks containing the origin (bit 0) are ever addressed, so a
// row is keyed by mask>>1 and the table holds n·2ⁿ⁻¹ float64 cells, flat and
// row-major: cell(mask, pos) = (mask>>1)*n + pos.
//
// NaN marks "not yet computed". Written values are final: the recurrence is a
// pure function of (mask, pos) and every dependency has a strictly larger
// subset, so a cached value can never become stale.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heldkarp/subset"
)

// bytesPerCell is the footprint of one memo entry.
const bytesPerCell = 8

// MemoTable maps (mask, pos) to the minimum cost of completing the tour from
// pos, having visited exactly mask. It is owned by a single solve.
type MemoTable struct {
	n     int
	cells []float64
}

// memoCells returns the number of cells a table over space needs.
func memoCells(space subset.Space) uint64 {
	return uint64(space.N()) << uint(space.N()-1)
}

// checkBudget verifies, without allocating, that a memo over space fits in
// budget bytes. The mask width was already bounded by subset.New.
func checkBudget(space subset.Space, budget uint64) error {
	cells := memoCells(space)
	if cells > budget/bytesPerCell || cells > uint64(math.MaxInt) {
		return fmt.Errorf("tsp: memo for n=%d needs %d cells (%d bytes per cell), budget %d bytes: %w",
			space.N(), cells, bytesPerCell, budget, ErrGraphTooLarge)
	}

	return nil
}

// newMemoTable allocates a table over space with every cell unset.
// Callers run checkBudget first.
func newMemoTable(space subset.Space) *MemoTable {
	m := &MemoTable{n: space.N(), cells: make([]float64, memoCells(space))}
	nan := math.NaN()
	for i := range m.cells {
		m.cells[i] = nan
	}

	return m
}

// index locates (mask, pos). mask must contain the origin.
func (m *MemoTable) index(mask subset.Mask, pos int) int {
	return int(mask>>1)*m.n + pos
}

// Lookup returns the stored cost-to-go and whether it has been computed.
func (m *MemoTable) Lookup(mask subset.Mask, pos int) (float64, bool) {
	v := m.cells[m.index(mask, pos)]

	return v, !math.IsNaN(v)
}

// store records a final value for (mask, pos).
func (m *MemoTable) store(mask subset.Mask, pos int, v float64) {
	m.cells[m.index(mask, pos)] = v
}

// Len returns the number of cells (computed or not).
func (m *MemoTable) Len() int { return len(m.cells) }

// Computed counts cells that hold a final value.
// Complexity: O(Len()).
func (m *MemoTable) Computed() int {
	var k int
	for _, v := range m.cells {
		if !math.IsNaN(v) {
			k++
		}
	}

	return k
}
