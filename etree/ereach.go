// SPDX-License-Identifier: MIT

package etree

import (
	"fmt"

	"github.com/katalvlaran/symbolic/sparse"
)

// flip maps a non-negative mark to a negative one and back.
func flip(i int) int { return -i - 2 }

func marked(w []int, j int) bool { return w[j] < 0 }

func mark(w []int, j int) { w[j] = flip(w[j]) }

// Ereach computes the nonzero pattern of row k of the Cholesky factor L,
// excluding the diagonal, using column k of a (only rows i <= k are read)
// and the elimination tree parent. The pattern is written to s[top:n] in
// topological order (descendants before ancestors) and top is returned.
//
// w is a workspace of length n whose entries must be non-negative on entry;
// it is restored before Ereach returns, also on error. A walk that reaches a
// root before meeting k yields ErrNotAncestor.
// Complexity: O(|L(k,:)|).
func Ereach(a *sparse.CSC, k int, parent, s, w []int) (int, error) {
	n := a.Cols()
	// 1. Shapes.
	if a.Rows() != n {
		return 0, fmt.Errorf("Ereach: %dx%d: %w", a.Rows(), n, ErrNonSquare)
	}
	if k < 0 || k >= n {
		return 0, fmt.Errorf("Ereach: k=%d with n=%d: %w", k, n, ErrMalformed)
	}
	if len(parent) != n || len(s) < n || len(w) < n {
		return 0, fmt.Errorf("Ereach: workspace shorter than n=%d: %w", n, ErrMalformed)
	}
	// 2. Walk up from every nonzero until a marked node, stacking paths.
	top := n
	mark(w, k)
	for _, i := range a.Range(k) {
		if i > k {
			continue
		}
		depth := 0
		for !marked(w, i) {
			s[depth] = i
			depth++
			mark(w, i)
			i = parent[i]
			if i < 0 || i >= n {
				// unwind: the current path plus everything already stacked
				for _, j := range s[:depth] {
					mark(w, j)
				}
				for _, j := range s[top:n] {
					mark(w, j)
				}
				mark(w, k)
				return 0, fmt.Errorf("Ereach: row %d reached root without meeting %d: %w", s[0], k, ErrNotAncestor)
			}
		}
		for depth > 0 {
			depth--
			top--
			s[top] = s[depth]
		}
	}
	// 3. Restore the workspace.
	for _, j := range s[top:n] {
		mark(w, j)
	}
	mark(w, k)

	return top, nil
}

// Reacher holds the Ereach workspace for repeated row queries on one
// n×n structure. It is not safe for concurrent use.
type Reacher struct {
	s, w []int
}

// NewReacher allocates a workspace for n×n matrices.
func NewReacher(n int) *Reacher {
	return &Reacher{s: make([]int, n), w: make([]int, n)}
}

// Row returns the pattern of row k of L (diagonal excluded) in topological
// order. The slice aliases the workspace and is valid until the next call.
func (r *Reacher) Row(a *sparse.CSC, k int, parent []int) ([]int, error) {
	if a.Cols() > len(r.s) {
		return nil, fmt.Errorf("Row: workspace for %d columns, matrix has %d: %w", len(r.s), a.Cols(), ErrMalformed)
	}
	top, err := Ereach(a, k, parent, r.s, r.w)
	if err != nil {
		return nil, err
	}

	return r.s[top:a.Cols()], nil
}
