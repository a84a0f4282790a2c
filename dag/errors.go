// SPDX-License-Identifier: MIT

package dag

import "errors"

var (
	// ErrNonSquare indicates a matrix whose row and column counts differ
	// where one node per row/column is required.
	ErrNonSquare = errors.New("dag: matrix is not square")

	// ErrOutOfRange indicates a node, group or parent id outside its range.
	ErrOutOfRange = errors.New("dag: id out of range")

	// ErrBadParameter indicates a meaningless numeric argument.
	ErrBadParameter = errors.New("dag: invalid parameter")
)
