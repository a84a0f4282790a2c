// SPDX-License-Identifier: MIT
// Package sparse: CSR and CSC matrices over a Pattern.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	methodNewCSR       = "NewCSR"
	methodNewCSC       = "NewCSC"
	methodFromTriplets = "FromTriplets"
)

// CSC is a compressed sparse column matrix: the embedded Pattern has one
// slice per column and its indices are row numbers.
// Values is either nil (pattern-only) or parallel to Idx().
type CSC struct {
	*Pattern
	Values []float64
}

// CSR is a compressed sparse row matrix: the embedded Pattern has one slice
// per row and its indices are column numbers.
type CSR struct {
	*Pattern
	Values []float64
}

// Triplet is one coordinate entry used by FromTriplets.
type Triplet struct {
	Row, Col int
	Val      float64
}

// NewCSC validates and wraps column pointers colPtr (len cols+1), row indices
// rowIdx and optional values vals (nil or len(rowIdx)).
func NewCSC(rows, cols int, colPtr, rowIdx []int, vals []float64) (*CSC, error) {
	p, err := newMatrixPattern(methodNewCSC, rows, cols, colPtr, rowIdx, vals)
	if err != nil {
		return nil, err
	}

	return &CSC{Pattern: p, Values: vals}, nil
}

// NewCSR validates and wraps row pointers rowPtr (len rows+1), column indices
// colIdx and optional values vals (nil or len(colIdx)).
func NewCSR(rows, cols int, rowPtr, colIdx []int, vals []float64) (*CSR, error) {
	p, err := newMatrixPattern(methodNewCSR, cols, rows, rowPtr, colIdx, vals)
	if err != nil {
		return nil, err
	}

	return &CSR{Pattern: p, Values: vals}, nil
}

// newMatrixPattern is the shared validation for NewCSC and NewCSR.
func newMatrixPattern(method string, minor, major int, ptr, idx []int, vals []float64) (*Pattern, error) {
	if major < 0 {
		return nil, malformedf(method, "dimension %d < 0", major)
	}
	if len(ptr) != major+1 {
		return nil, fmt.Errorf("%s: len(ptr)=%d, want %d: %w", method, len(ptr), major+1, ErrDimensionMismatch)
	}
	if vals != nil && len(vals) != len(idx) {
		return nil, fmt.Errorf("%s: len(vals)=%d, want %d: %w", method, len(vals), len(idx), ErrDimensionMismatch)
	}
	p, err := NewPattern(minor, ptr, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}

// FromTriplets assembles a CSC matrix from coordinate entries. Duplicates are
// summed; every column range comes out sorted by row.
// Complexity: O(t log t) for t triplets.
func FromTriplets(rows, cols int, ts []Triplet) (*CSC, error) {
	// 1. Validate coordinates before allocating the result.
	for k, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("%s: triplet %d at (%d,%d) outside %dx%d: %w",
				methodFromTriplets, k, t.Row, t.Col, rows, cols, ErrOutOfRange)
		}
	}
	// 2. Column-major order, rows ascending inside each column.
	sorted := slices.Clone(ts)
	slices.SortFunc(sorted, func(a, b Triplet) int {
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
	// 3. Compress, summing duplicates.
	ptr := make([]int, cols+1)
	idx := make([]int, 0, len(sorted))
	vals := make([]float64, 0, len(sorted))
	for k, t := range sorted {
		if k > 0 && sorted[k-1].Row == t.Row && sorted[k-1].Col == t.Col {
			vals[len(vals)-1] += t.Val
			continue
		}
		idx = append(idx, t.Row)
		vals = append(vals, t.Val)
		ptr[t.Col+1]++
	}
	for j := 0; j < cols; j++ {
		ptr[j+1] += ptr[j]
	}

	return &CSC{Pattern: newPatternUnchecked(rows, ptr, idx), Values: vals}, nil
}

// Rows returns the number of rows.
func (a *CSC) Rows() int { return a.Minor() }

// Cols returns the number of columns.
func (a *CSC) Cols() int { return a.Len() }

// ColValues returns the values of column j (nil for pattern-only matrices).
func (a *CSC) ColValues(j int) []float64 {
	if a.Values == nil {
		return nil
	}
	lo, hi := a.Span(j)
	return a.Values[lo:hi]
}

// ToCSR converts a to row storage. Column indices come out ascending.
func (a *CSC) ToCSR() *CSR {
	ptr, idx, vals := transpose(a.Pattern, a.Values)
	return &CSR{Pattern: newPatternUnchecked(a.Len(), ptr, idx), Values: vals}
}

// Transpose returns Aᵀ in CSC form.
func (a *CSC) Transpose() *CSC {
	ptr, idx, vals := transpose(a.Pattern, a.Values)
	return &CSC{Pattern: newPatternUnchecked(a.Len(), ptr, idx), Values: vals}
}

// Lower keeps the entries with row >= column.
func (a *CSC) Lower() *CSC {
	p, v := filter(a.Pattern, a.Values, func(j, i int) bool { return i >= j })
	return &CSC{Pattern: p, Values: v}
}

// Upper keeps the entries with row <= column.
func (a *CSC) Upper() *CSC {
	p, v := filter(a.Pattern, a.Values, func(j, i int) bool { return i <= j })
	return &CSC{Pattern: p, Values: v}
}

// Rows returns the number of rows.
func (a *CSR) Rows() int { return a.Len() }

// Cols returns the number of columns.
func (a *CSR) Cols() int { return a.Minor() }

// ToCSC converts a to column storage. Row indices come out ascending.
func (a *CSR) ToCSC() *CSC {
	ptr, idx, vals := transpose(a.Pattern, a.Values)
	return &CSC{Pattern: newPatternUnchecked(a.Len(), ptr, idx), Values: vals}
}

// Lower keeps the entries with column <= row.
func (a *CSR) Lower() *CSR {
	p, v := filter(a.Pattern, a.Values, func(i, j int) bool { return j <= i })
	return &CSR{Pattern: p, Values: v}
}

// filter copies the entries of p accepted by keep(major, minor).
func filter(p *Pattern, vals []float64, keep func(major, minor int) bool) (*Pattern, []float64) {
	n := p.Len()
	ptr := make([]int, n+1)
	idx := make([]int, 0, p.NNZ())
	var out []float64
	if vals != nil {
		out = make([]float64, 0, len(vals))
	}
	for j := 0; j < n; j++ {
		for q := p.ptr[j]; q < p.ptr[j+1]; q++ {
			if !keep(j, p.idx[q]) {
				continue
			}
			idx = append(idx, p.idx[q])
			if out != nil {
				out = append(out, vals[q])
			}
		}
		ptr[j+1] = len(idx)
	}

	return newPatternUnchecked(p.minor, ptr, idx), out
}
