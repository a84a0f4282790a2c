// SPDX-License-Identifier: MIT
// Package sparse: compressed pointer+index pattern.

package sparse

import (
	"fmt"
	"slices"
)

const methodNewPattern = "NewPattern"

// Pattern is a compressed pointer+index pair over n major slices (rows for
// CSR, columns for CSC, nodes for a DAG) whose indices live in [0, minor).
//
// A Pattern owns its arrays. Slices returned by Range, Ptr and Idx are views
// into that storage and MUST NOT be modified by callers.
type Pattern struct {
	minor int   // size of the index space
	ptr   []int // len n+1, half-open ranges into idx
	idx   []int // len nnz
}

// NewPattern validates ptr/idx and returns a Pattern that takes ownership of
// both slices (they are not copied).
//
// Returns ErrMalformed (wrapped) when:
//   - ptr is empty, ptr[0] != 0, or ptr decreases
//   - ptr[n] != len(idx)
//   - an index is outside [0, minor)
//
// Complexity: O(n + nnz).
func NewPattern(minor int, ptr, idx []int) (*Pattern, error) {
	// 1. Shape of the pointer array.
	if minor < 0 {
		return nil, malformedf(methodNewPattern, "minor=%d < 0", minor)
	}
	if len(ptr) == 0 {
		return nil, malformedf(methodNewPattern, "empty pointer array")
	}
	if ptr[0] != 0 {
		return nil, malformedf(methodNewPattern, "ptr[0]=%d != 0", ptr[0])
	}
	// 2. Monotonicity.
	n := len(ptr) - 1
	for j := 0; j < n; j++ {
		if ptr[j+1] < ptr[j] {
			return nil, malformedf(methodNewPattern, "ptr[%d]=%d < ptr[%d]=%d", j+1, ptr[j+1], j, ptr[j])
		}
	}
	if ptr[n] != len(idx) {
		return nil, malformedf(methodNewPattern, "ptr[%d]=%d != len(idx)=%d", n, ptr[n], len(idx))
	}
	// 3. Index range.
	for p, i := range idx {
		if i < 0 || i >= minor {
			return nil, malformedf(methodNewPattern, "idx[%d]=%d not in [0,%d)", p, i, minor)
		}
	}

	return &Pattern{minor: minor, ptr: ptr, idx: idx}, nil
}

// newPatternUnchecked wraps arrays produced by this package's own kernels.
func newPatternUnchecked(minor int, ptr, idx []int) *Pattern {
	return &Pattern{minor: minor, ptr: ptr, idx: idx}
}

// Len returns the number of major slices n.
func (p *Pattern) Len() int { return len(p.ptr) - 1 }

// Minor returns the size of the index space.
func (p *Pattern) Minor() int { return p.minor }

// NNZ returns the number of stored indices.
func (p *Pattern) NNZ() int { return len(p.idx) }

// Span returns the half-open range [lo, hi) of slice j inside Idx.
// j must be in [0, Len()).
func (p *Pattern) Span(j int) (lo, hi int) { return p.ptr[j], p.ptr[j+1] }

// Range returns the indices stored for slice j (read-only view).
func (p *Pattern) Range(j int) []int { return p.idx[p.ptr[j]:p.ptr[j+1]] }

// Degree returns the number of entries of slice j.
func (p *Pattern) Degree(j int) int { return p.ptr[j+1] - p.ptr[j] }

// Ptr returns the pointer array (read-only view, length Len()+1).
func (p *Pattern) Ptr() []int { return p.ptr }

// Idx returns the index array (read-only view, length NNZ()).
func (p *Pattern) Idx() []int { return p.idx }

// Clone returns a deep copy of p.
func (p *Pattern) Clone() *Pattern {
	return newPatternUnchecked(p.minor, slices.Clone(p.ptr), slices.Clone(p.idx))
}

// Transpose returns the pattern with major and minor roles swapped.
// Indices inside every resulting range come out in ascending order, which
// makes Transpose a cheap way to sort a whole pattern (apply it twice).
// Complexity: O(n + minor + nnz).
func (p *Pattern) Transpose() *Pattern {
	ptr, idx, _ := transpose(p, nil)
	return newPatternUnchecked(p.Len(), ptr, idx)
}

// Sorted returns a copy of p where every range is in ascending order.
func (p *Pattern) Sorted() *Pattern {
	c := p.Clone()
	for j := 0; j < c.Len(); j++ {
		slices.Sort(c.idx[c.ptr[j]:c.ptr[j+1]])
	}

	return c
}

// Contains reports whether index i is stored in slice j. O(degree(j)).
func (p *Pattern) Contains(j, i int) bool {
	return slices.Contains(p.Range(j), i)
}

// String renders a short summary, handy in test failures and logs.
func (p *Pattern) String() string {
	return fmt.Sprintf("Pattern{n=%d minor=%d nnz=%d}", p.Len(), p.minor, p.NNZ())
}

// transpose scatters p (and optional parallel values) into the transposed
// pointer/index arrays using a counting pass over the minor dimension.
func transpose(p *Pattern, vals []float64) ([]int, []int, []float64) {
	// 1. Count entries per minor index.
	n, m := p.Len(), p.minor
	ptr := make([]int, m+1)
	for _, i := range p.idx {
		ptr[i+1]++
	}
	// 2. Prefix sums give the start of every transposed range.
	for i := 0; i < m; i++ {
		ptr[i+1] += ptr[i]
	}
	// 3. Scatter, walking the major slices in ascending order so that every
	//    transposed range ends up sorted.
	next := slices.Clone(ptr[:m])
	idx := make([]int, len(p.idx))
	var out []float64
	if vals != nil {
		out = make([]float64, len(vals))
	}
	for j := 0; j < n; j++ {
		for q := p.ptr[j]; q < p.ptr[j+1]; q++ {
			i := p.idx[q]
			d := next[i]
			next[i]++
			idx[d] = j
			if out != nil {
				out[d] = vals[q]
			}
		}
	}

	return ptr, idx, out
}
