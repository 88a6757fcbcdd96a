// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
// Every constructor and accessor returns one of these sentinels, possibly
// wrapped with positional context via fmt.Errorf("...: %w", ErrX). Callers
// match them with errors.Is. No function panics on user-supplied input.

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGraph is returned by constructors when the cost matrix is
	// empty, non-square, contains NaN, a negative cost, a finite non-zero
	// self-loop, or when labels do not match the node set.
	ErrMalformedGraph = errors.New("graph: malformed graph")

	// ErrInvalidIndex indicates a node index outside [0, n).
	ErrInvalidIndex = errors.New("graph: node index out of range")
)

// malformedf wraps ErrMalformedGraph with a formatted reason.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedGraph)
}
