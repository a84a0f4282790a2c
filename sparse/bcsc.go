// SPDX-License-Identifier: MIT
// Package sparse: blocked compressed sparse column (supernodal) storage.

package sparse

import "fmt"

const methodNewBCSC = "NewBCSC"

// BCSC stores a square matrix whose columns are grouped into blocks
// (supernodes). Block b owns columns [Sup2Col[b], Sup2Col[b+1]) and one row
// list RowIdx[RowPtr[b]:RowPtr[b+1]] shared by all of its columns. The row
// list is strictly ascending and starts with the block's own columns (the
// dense diagonal block). Column j stores one value per block row, densely,
// in Values[Ptr[j]:Ptr[j+1]].
//
// Fields are exported for numeric kernels; treat them as read-only once the
// value passed NewBCSC.
type BCSC struct {
	Ptr     []int     // len n+1, value offsets per column
	RowPtr  []int     // len nsuper+1, offsets into RowIdx per block
	RowIdx  []int     // row lists of all blocks
	Sup2Col []int     // len nsuper+1, block boundaries
	Col2Sup []int     // len n, owning block of each column
	Values  []float64 // nil or len Ptr[n]
}

// NewBCSC validates the blocked arrays and derives Col2Sup from sup2col.
// Slices are owned by the result (not copied).
//
// Errors (wrapped ErrMalformed or ErrDimensionMismatch):
//   - sup2col not strictly increasing from 0 to n
//   - rowPtr not a valid pointer array over rowIdx
//   - a block row list not ascending, out of range, or not starting with the
//     block's own columns
//   - a column whose value count differs from its block's row count
func NewBCSC(ptr, rowPtr, rowIdx, sup2col []int, vals []float64) (*BCSC, error) {
	// 1. Column and block boundaries.
	if len(ptr) == 0 || len(sup2col) == 0 {
		return nil, malformedf(methodNewBCSC, "empty pointer arrays")
	}
	n, ns := len(ptr)-1, len(sup2col)-1
	if sup2col[0] != 0 || sup2col[ns] != n {
		return nil, malformedf(methodNewBCSC, "sup2col must span [0,%d], got [%d,%d]", n, sup2col[0], sup2col[ns])
	}
	col2sup := make([]int, n)
	for b := 0; b < ns; b++ {
		if sup2col[b+1] <= sup2col[b] {
			return nil, malformedf(methodNewBCSC, "sup2col[%d]=%d <= sup2col[%d]=%d", b+1, sup2col[b+1], b, sup2col[b])
		}
		for j := sup2col[b]; j < sup2col[b+1]; j++ {
			col2sup[j] = b
		}
	}
	// 2. Row lists.
	if len(rowPtr) != ns+1 {
		return nil, fmt.Errorf("%s: len(rowPtr)=%d, want %d: %w", methodNewBCSC, len(rowPtr), ns+1, ErrDimensionMismatch)
	}
	if _, err := NewPattern(n, rowPtr, rowIdx); err != nil {
		return nil, fmt.Errorf("%s: row lists: %w", methodNewBCSC, err)
	}
	for b := 0; b < ns; b++ {
		rows := rowIdx[rowPtr[b]:rowPtr[b+1]]
		width := sup2col[b+1] - sup2col[b]
		if len(rows) < width {
			return nil, malformedf(methodNewBCSC, "block %d has %d rows < %d columns", b, len(rows), width)
		}
		for r := 0; r < width; r++ {
			if rows[r] != sup2col[b]+r {
				return nil, malformedf(methodNewBCSC, "block %d row %d is %d, want diagonal %d", b, r, rows[r], sup2col[b]+r)
			}
		}
		for r := 1; r < len(rows); r++ {
			if rows[r] <= rows[r-1] {
				return nil, malformedf(methodNewBCSC, "block %d rows not ascending at %d", b, r)
			}
		}
	}
	// 3. Dense columns.
	if ptr[0] != 0 {
		return nil, malformedf(methodNewBCSC, "ptr[0]=%d != 0", ptr[0])
	}
	for j := 0; j < n; j++ {
		b := col2sup[j]
		if got, want := ptr[j+1]-ptr[j], rowPtr[b+1]-rowPtr[b]; got != want {
			return nil, fmt.Errorf("%s: column %d stores %d values, block %d has %d rows: %w",
				methodNewBCSC, j, got, b, want, ErrDimensionMismatch)
		}
	}
	if vals != nil && len(vals) != ptr[n] {
		return nil, fmt.Errorf("%s: len(vals)=%d, want %d: %w", methodNewBCSC, len(vals), ptr[n], ErrDimensionMismatch)
	}

	return &BCSC{Ptr: ptr, RowPtr: rowPtr, RowIdx: rowIdx, Sup2Col: sup2col, Col2Sup: col2sup, Values: vals}, nil
}

// N returns the number of columns.
func (b *BCSC) N() int { return len(b.Ptr) - 1 }

// NSuper returns the number of blocks.
func (b *BCSC) NSuper() int { return len(b.Sup2Col) - 1 }

// Columns returns the half-open column range [lo, hi) of block s.
func (b *BCSC) Columns(s int) (lo, hi int) { return b.Sup2Col[s], b.Sup2Col[s+1] }

// RowsOf returns the row list of block s (read-only view).
func (b *BCSC) RowsOf(s int) []int { return b.RowIdx[b.RowPtr[s]:b.RowPtr[s+1]] }

// NRows returns the number of rows of block s.
func (b *BCSC) NRows(s int) int { return b.RowPtr[s+1] - b.RowPtr[s] }

// Column returns the dense values of column j (nil for pattern-only storage).
func (b *BCSC) Column(j int) []float64 {
	if b.Values == nil {
		return nil
	}
	return b.Values[b.Ptr[j]:b.Ptr[j+1]]
}

// NNZ returns the number of stored values (explicit zeros included).
func (b *BCSC) NNZ() int { return b.Ptr[len(b.Ptr)-1] }

// Compress extracts the supernode-granularity CSC view of b: one column per
// block, whose rows are the distinct blocks owning any row of that block
// (the block itself included). Row lists come out ascending.
// Complexity: O(nsuper + len(RowIdx)).
func (b *BCSC) Compress() *CSC {
	ns := b.NSuper()
	ptr := make([]int, ns+1)
	idx := make([]int, 0, ns)
	for s := 0; s < ns; s++ {
		last := -1
		for _, r := range b.RowsOf(s) {
			// rows are ascending, so owning blocks are non-decreasing
			if t := b.Col2Sup[r]; t != last {
				idx = append(idx, t)
				last = t
			}
		}
		ptr[s+1] = len(idx)
	}

	return &CSC{Pattern: newPatternUnchecked(ns, ptr, idx)}
}
