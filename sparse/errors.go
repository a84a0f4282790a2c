// SPDX-License-Identifier: MIT
// Package sparse: sentinel errors.
//
// Every message is prefixed with "sparse: ". Constructors wrap these with the
// failing field, e.g. fmt.Errorf("NewPattern: ptr[3]=7 < ptr[2]=9: %w", ErrMalformed).
// Callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a pointer/index pair that violates the
	// compressed-storage invariants (short ptr, decreasing ptr, index out of
	// the minor dimension, inconsistent block mapping).
	ErrMalformed = errors.New("sparse: malformed structure")

	// ErrDimensionMismatch indicates incompatible shapes or lengths, e.g. a
	// values slice whose length differs from the number of nonzeros.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates that an index argument (row, column, block) is
	// outside the valid range of the structure.
	ErrOutOfRange = errors.New("sparse: index out of range")
)

// malformedf wraps ErrMalformed with the method name and a formatted detail.
func malformedf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrMalformed)
}
