// SPDX-License-Identifier: MIT

package etree

import "errors"

var (
	// ErrNonSquare indicates a rectangular matrix where a symmetric one is
	// required.
	ErrNonSquare = errors.New("etree: matrix is not square")

	// ErrMalformed indicates an inconsistent parent array or workspace.
	ErrMalformed = errors.New("etree: malformed input")

	// ErrCycleDetected indicates parent pointers that contain a cycle.
	ErrCycleDetected = errors.New("etree: parent pointers contain a cycle")

	// ErrNotAncestor indicates that k is not an ancestor of some nonzero row
	// of column k, so the tree does not belong to the matrix.
	ErrNotAncestor = errors.New("etree: node is not an ancestor")
)
