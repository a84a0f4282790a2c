// SPDX-License-Identifier: MIT

package supernode

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/symbolic/sparse"
)

// Option configures Detect and Block.
type Option func(*options)

type options struct {
	maxSize int // 0 means unbounded
}

// WithMaxSize caps the number of columns per supernode. Panics if size < 1.
func WithMaxSize(size int) Option {
	if size < 1 {
		panic(fmt.Sprintf("supernode: WithMaxSize(%d): size must be >= 1", size))
	}
	return func(o *options) { o.maxSize = size }
}

// Detect finds the fundamental supernodes of a lower-triangular factor
// pattern l whose columns start with their diagonal and list rows in
// ascending order (the layout produced by etree.SymbolicFactor). Column j+1
// joins the supernode of column j when the rows of j below the diagonal are
// exactly the rows of j+1.
//
// Returns the boundary array, or ErrMalformed when a column does not start
// with its diagonal.
// Complexity: O(nnz).
func Detect(l *sparse.CSC, opts ...Option) ([]int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	n := l.Cols()
	if l.Rows() != n {
		return nil, fmt.Errorf("Detect: %dx%d: %w", l.Rows(), n, ErrDimensionMismatch)
	}
	for j := 0; j < n; j++ {
		if rows := l.Range(j); len(rows) == 0 || rows[0] != j {
			return nil, fmt.Errorf("Detect: column %d does not start with its diagonal: %w", j, ErrMalformed)
		}
	}
	supernodes := append(make([]int, 0, n+1), 0)
	for j := 1; j < n; j++ {
		start := supernodes[len(supernodes)-1]
		same := slices.Equal(l.Range(j-1)[1:], l.Range(j))
		if !same || (o.maxSize > 0 && j-start >= o.maxSize) {
			supernodes = append(supernodes, j)
		}
	}
	if n > 0 {
		supernodes = append(supernodes, n)
	}

	return supernodes, nil
}
