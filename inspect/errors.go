// SPDX-License-Identifier: MIT

package inspect

import "errors"

var (
	// ErrNonSquare indicates a rectangular input matrix.
	ErrNonSquare = errors.New("inspect: matrix is not square")

	// ErrEmpty indicates a matrix without columns.
	ErrEmpty = errors.New("inspect: empty matrix")
)
