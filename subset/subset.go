// SPDX-License-Identifier: MIT

// Package subset addresses the (visited-set, current-node) state space of
// bitmask dynamic programs over at most MaxNodes nodes.
//
// A Mask holds one bit per node index; bit i set ⇔ node i visited. Node 0 is
// the origin and its bit is set in every mask produced here.
package subset

import (
	"errors"
	"math/bits"
)

// MaxNodes is the widest node count a uint64 mask addresses while leaving
// headroom for the carry in Generation.
const MaxNodes = 62

var (
	// ErrGraphTooLarge is returned when n exceeds MaxNodes.
	ErrGraphTooLarge = errors.New("subset: node count exceeds mask width")

	// ErrInvalidSize is returned for n < 1.
	ErrInvalidSize = errors.New("subset: node count must be ≥ 1")
)

// Mask is a set of node indices, one bit per node.
type Mask uint64

// Space is the state space for a fixed node count.
type Space struct {
	n    int
	full Mask
}

// New returns the state space over n nodes.
func New(n int) (Space, error) {
	if n < 1 {
		return Space{}, ErrInvalidSize
	}
	if n > MaxNodes {
		return Space{}, ErrGraphTooLarge
	}

	return Space{n: n, full: Mask(1)<<uint(n) - 1}, nil
}

// N returns the node count.
func (s Space) N() int { return s.n }

// Bit returns the singleton mask {i}.
func Bit(i int) Mask { return Mask(1) << uint(i) }

// Start returns {0}, the initial visited set.
func (s Space) Start() Mask { return 1 }

// Full returns the mask with all n bits set.
func (s Space) Full() Mask { return s.full }

// Masks returns 2ⁿ, the number of distinct masks (memo rows).
func (s Space) Masks() uint64 { return uint64(1) << uint(s.n) }

// States returns n·2ⁿ, the upper bound on (mask, pos) states.
// ok is false when the product overflows a uint64 (n ≥ 59).
func (s Space) States() (states uint64, ok bool) {
	hi, lo := bits.Mul64(uint64(s.n), s.Masks())

	return lo, hi == 0
}

// With returns m ∪ {i}.
func With(m Mask, i int) Mask { return m | Bit(i) }

// Without returns m \ {i}.
func Without(m Mask, i int) Mask { return m &^ Bit(i) }

// IsVisited reports whether i ∈ m.
func IsVisited(m Mask, i int) bool { return m&Bit(i) != 0 }

// Size returns |m|.
func Size(m Mask) int { return bits.OnesCount64(uint64(m)) }

// Generation calls fn for every mask over the space that contains the start
// bit and has exactly k members, in ascending numeric order. Iteration stops
// early when fn returns false. k outside [1, n] yields nothing.
//
// Masks of one generation never depend on each other in the Held–Karp
// recurrence, which makes a generation the unit of parallel work.
//
// Complexity: O(C(n-1, k-1)).
func (s Space) Generation(k int, fn func(Mask) bool) {
	if k < 1 || k > s.n {
		return
	}
	if k == 1 {
		fn(s.Start())
		return
	}

	// Enumerate (k-1)-subsets of the n-1 non-origin nodes with Gosper's hack,
	// then shift them past bit 0 and add the origin.
	var (
		width = uint(s.n - 1)
		limit = uint64(1) << width
		x     = uint64(1)<<uint(k-1) - 1
		c, r  uint64
	)
	for x < limit {
		if !fn(Mask(x<<1 | 1)) {
			return
		}
		c = x & -x
		r = x + c
		x = (((r ^ x) >> 2) / c) | r
	}
}

// Members appends the indices in m to dst in ascending order.
func Members(dst []int, m Mask) []int {
	for m != 0 {
		i := bits.TrailingZeros64(uint64(m))
		dst = append(dst, i)
		m &= m - 1
	}

	return dst
}
