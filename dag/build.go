// SPDX-License-Identifier: MIT

package dag

import (
	"fmt"
	"time"

	"github.com/katalvlaran/symbolic/sparse"
)

// Orientation selects which triangle of a matrix carries dependencies.
type Orientation int

const (
	// Lower: column j's rows i > j depend on j (forward substitution).
	Lower Orientation = iota
	// Upper: column j's rows i < j depend on j (backward substitution).
	Upper
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// FromCSR computes the dependency DAG of a lower-triangular kernel whose
// matrix is given in row storage: every entry (k, i) with i < k adds edge
// i→k. Entries on or above the diagonal are ignored. Successor lists come
// out in ascending order.
//
// The returned duration is the build time, for profiling only.
// Complexity: O(n + nnz).
func FromCSR(a *sparse.CSR) (*Graph, time.Duration, error) {
	start := time.Now()
	// 1. One node per row/column.
	if a.Rows() != a.Cols() {
		return nil, 0, fmt.Errorf("FromCSR: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	n := a.Rows()
	// 2. Count the successors of every node i (strictly lower entries).
	ptr := make([]int, n+1)
	for k := 0; k < n; k++ {
		for _, i := range a.Range(k) {
			if i < k {
				ptr[i+1]++
			}
		}
	}
	for i := 0; i < n; i++ {
		ptr[i+1] += ptr[i]
	}
	// 3. Scatter k into the list of each i, rows ascending.
	next := make([]int, n)
	copy(next, ptr[:n])
	idx := make([]int, ptr[n])
	for k := 0; k < n; k++ {
		for _, i := range a.Range(k) {
			if i < k {
				idx[next[i]] = k
				next[i]++
			}
		}
	}

	return &Graph{p: newPattern(n, ptr, idx)}, time.Since(start), nil
}

// FromCSC derives the DAG of a triangular kernel from column storage: entry
// (i, j) adds j→i when i > j (Lower) or i < j (Upper). Diagonal entries and
// entries of the other triangle are ignored. Successor order follows the
// column's row order.
// Complexity: O(n + nnz).
func FromCSC(a *sparse.CSC, o Orientation) (*Graph, error) {
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("FromCSC: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if o != Lower && o != Upper {
		return nil, fmt.Errorf("FromCSC: %v: %w", o, ErrBadParameter)
	}
	n := a.Cols()
	ptr := make([]int, n+1)
	idx := make([]int, 0, a.NNZ())
	for j := 0; j < n; j++ {
		for _, i := range a.Range(j) {
			if (o == Lower && i > j) || (o == Upper && i < j) {
				idx = append(idx, i)
			}
		}
		ptr[j+1] = len(idx)
	}

	return &Graph{p: newPattern(n, ptr, idx)}, nil
}

// FromParents turns a parent array into child→parent edges. A parent of -1
// marks a root. Self-parents are kept as self-loops (a cycle the schedulers
// report).
func FromParents(parent []int) (*Graph, error) {
	n := len(parent)
	ptr := make([]int, n+1)
	idx := make([]int, 0, n)
	for j, p := range parent {
		if p < -1 || p >= n {
			return nil, fmt.Errorf("FromParents: parent[%d]=%d with n=%d: %w", j, p, n, ErrOutOfRange)
		}
		if p >= 0 {
			idx = append(idx, p)
		}
		ptr[j+1] = len(idx)
	}

	return &Graph{p: newPattern(n, ptr, idx)}, nil
}
