// SPDX-License-Identifier: MIT

// Package graph: functional configuration for input-boundary conversion.
//
// The solver works with exactly one "no edge" sentinel, +Inf. Inputs coming
// from other conventions (0 meaning "no edge", or a huge integer such as
// math.MaxInt64) are converted once, here, while the matrix is copied in.
//
// Design goals:
//   - Deterministic behavior: options only affect ingestion, never queries.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
package graph

import "math"

const (
	// DefaultZeroAsMissing keeps off-diagonal zeros as real zero-cost edges.
	DefaultZeroAsMissing = false

	panicMissingValueNaN = "graph: WithMissingValue: sentinel must not be NaN"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective ingestion policy after applying Option setters.
type options struct {
	zeroAsMissing bool      // off-diagonal 0 ⇒ +Inf
	missing       []float64 // explicit sentinels ⇒ +Inf
	labels        []string  // optional node labels, len == n
}

// WithZeroAsMissing treats every off-diagonal 0 as an absent edge.
// This matches adjacency matrices where 0 doubles as "no connection".
func WithZeroAsMissing() Option {
	return func(o *options) { o.zeroAsMissing = true }
}

// WithMissingValue declares v as an additional "no edge" sentinel: every
// entry equal to v is stored as +Inf. Passing +Inf is a no-op.
// Panics if v is NaN.
func WithMissingValue(v float64) Option {
	if math.IsNaN(v) {
		panic(panicMissingValueNaN)
	}

	return func(o *options) { o.missing = append(o.missing, v) }
}

// WithLabels attaches human-readable node labels. len(labels) must equal the
// node count, labels must be non-empty and unique; violations surface as
// ErrMalformedGraph from the constructor.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)

	return func(o *options) { o.labels = cp }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{zeroAsMissing: DefaultZeroAsMissing}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// normalize converts v to the internal sentinel policy.
func (o *options) normalize(v float64) float64 {
	if o.zeroAsMissing && v == 0 {
		return math.Inf(1)
	}
	for _, m := range o.missing {
		if v == m {
			return math.Inf(1)
		}
	}

	return v
}
