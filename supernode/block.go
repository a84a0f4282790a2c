// SPDX-License-Identifier: MIT

package supernode

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symbolic/sparse"
)

// Blocked is a lower-triangular factor in blocked storage. Every block is a
// dense column-major panel of NRows(s) rows by its member columns; entries
// absent from the source pattern are stored as zero.
type Blocked struct {
	*sparse.BCSC
}

// Block detects supernodes of l (see Detect) and rewrites l into them.
func Block(l *sparse.CSC, opts ...Option) (*Blocked, error) {
	sup, err := Detect(l, opts...)
	if err != nil {
		return nil, fmt.Errorf("Block: %w", err)
	}

	return BlockWith(l, sup)
}

// BlockWith rewrites the lower-triangular matrix l into the given supernode
// partition. The rows of block s are the block's own columns together with
// every row at or below its first column that appears in a member column.
// Values, when l has them, are scattered into the dense panels.
// Complexity: O(nnz + Σ rows(s)·cols(s) + Σ rows(s)·log rows(s)).
func BlockWith(l *sparse.CSC, supernodes []int) (*Blocked, error) {
	n := l.Cols()
	if l.Rows() != n {
		return nil, fmt.Errorf("BlockWith: %dx%d: %w", l.Rows(), n, ErrDimensionMismatch)
	}
	if err := validate(n, supernodes); err != nil {
		return nil, fmt.Errorf("BlockWith: %w", err)
	}
	ns := len(supernodes) - 1
	withValues := l.Values != nil

	// 1. Row set of every block, ascending.
	seen := make([]int, n)
	for i := range seen {
		seen[i] = -1
	}
	rowPtr := make([]int, ns+1)
	var rowIdx []int
	for s := 0; s < ns; s++ {
		c0, c1 := supernodes[s], supernodes[s+1]
		start := len(rowIdx)
		for j := c0; j < c1; j++ {
			seen[j] = s
			rowIdx = append(rowIdx, j)
		}
		for j := c0; j < c1; j++ {
			for _, i := range l.Range(j) {
				if i >= c0 && seen[i] != s {
					seen[i] = s
					rowIdx = append(rowIdx, i)
				}
			}
		}
		slices.Sort(rowIdx[start:])
		rowPtr[s+1] = len(rowIdx)
	}
	// 2. Dense panels: every member column stores one value per block row.
	ptr := make([]int, n+1)
	for s := 0; s < ns; s++ {
		nrows := rowPtr[s+1] - rowPtr[s]
		for j := supernodes[s]; j < supernodes[s+1]; j++ {
			ptr[j+1] = ptr[j] + nrows
		}
	}
	var vals []float64
	if withValues {
		vals = make([]float64, ptr[n])
		pos := make([]int, n)
		for s := 0; s < ns; s++ {
			for r, i := range rowIdx[rowPtr[s]:rowPtr[s+1]] {
				pos[i] = r
			}
			c0 := supernodes[s]
			for j := c0; j < supernodes[s+1]; j++ {
				col := l.ColValues(j)
				for p, i := range l.Range(j) {
					if i >= c0 {
						vals[ptr[j]+pos[i]] = col[p]
					}
				}
			}
		}
	}

	b, err := sparse.NewBCSC(ptr, rowPtr, rowIdx, supernodes, vals)
	if err != nil {
		return nil, fmt.Errorf("BlockWith: %w", err)
	}

	return &Blocked{BCSC: b}, nil
}

// View exposes block s as a read-only NRows(s)×width gonum matrix sharing
// the block's storage. Returns ErrOutOfRange for unknown blocks and
// ErrNoValues for pattern-only matrices.
func (b *Blocked) View(s int) (mat.Matrix, error) {
	if s < 0 || s >= b.NSuper() {
		return nil, fmt.Errorf("View: block %d of %d: %w", s, b.NSuper(), ErrOutOfRange)
	}
	if b.Values == nil {
		return nil, fmt.Errorf("View: block %d: %w", s, ErrNoValues)
	}
	lo, hi := b.Columns(s)
	nrows := b.NRows(s)
	data := b.Values[b.Ptr[lo]:b.Ptr[hi]]

	// column-major panel == row-major transpose
	return mat.NewDense(hi-lo, nrows, data).T(), nil
}
