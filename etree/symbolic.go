// SPDX-License-Identifier: MIT

package etree

import (
	"fmt"

	"github.com/katalvlaran/symbolic/sparse"
)

// SymbolicFactor returns the nonzero pattern of the Cholesky factor L of the
// symmetric matrix a (upper triangle or full pattern) with elimination tree
// parent. Every column starts with its diagonal and lists rows ascending.
// The result carries no values.
// Complexity: O(n + |L|).
func SymbolicFactor(a *sparse.CSC, parent []int) (*sparse.CSC, error) {
	n := a.Cols()
	r := NewReacher(n)
	// 1. Row patterns, kept in row-compressed form.
	rowPtr := make([]int, n+1)
	var cols []int
	count := make([]int, n)
	for k := 0; k < n; k++ {
		row, err := r.Row(a, k, parent)
		if err != nil {
			return nil, fmt.Errorf("SymbolicFactor: %w", err)
		}
		for _, j := range row {
			count[j]++
		}
		cols = append(cols, row...)
		rowPtr[k+1] = len(cols)
	}
	// 2. Columns: diagonal first, then rows k in ascending order.
	ptr := make([]int, n+1)
	for j := 0; j < n; j++ {
		ptr[j+1] = ptr[j] + 1 + count[j]
	}
	idx := make([]int, ptr[n])
	next := make([]int, n)
	for j := 0; j < n; j++ {
		idx[ptr[j]] = j
		next[j] = ptr[j] + 1
	}
	for k := 0; k < n; k++ {
		for _, j := range cols[rowPtr[k]:rowPtr[k+1]] {
			idx[next[j]] = k
			next[j]++
		}
	}

	l, err := sparse.NewCSC(n, n, ptr, idx, nil)
	if err != nil {
		return nil, fmt.Errorf("SymbolicFactor: %w", err)
	}

	return l, nil
}
