// SPDX-License-Identifier: MIT

package supernode

import "errors"

var (
	// ErrMalformed indicates a supernode boundary array that does not
	// partition 0..n-1 into non-empty ascending ranges.
	ErrMalformed = errors.New("supernode: malformed partition")

	// ErrDimensionMismatch indicates matrices or partitions that do not fit
	// together.
	ErrDimensionMismatch = errors.New("supernode: dimension mismatch")

	// ErrOutOfRange indicates a block id outside [0, NSuper()).
	ErrOutOfRange = errors.New("supernode: block out of range")

	// ErrNoValues indicates a numeric view requested on a pattern-only matrix.
	ErrNoValues = errors.New("supernode: matrix carries no values")
)
