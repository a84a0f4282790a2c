// SPDX-License-Identifier: MIT

package etree

import (
	"fmt"

	"github.com/katalvlaran/symbolic/sparse"
)

// None marks a root in a parent array.
const None = -1

// Mode selects which matrix the tree is computed for.
type Mode int

const (
	// Symmetric uses the entries i < k of column k of a square matrix (the
	// upper triangle, or the full symmetric pattern).
	Symmetric Mode = iota
	// ColumnMode computes the elimination tree of AᵀA for an m×n A.
	ColumnMode
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Symmetric:
		return "symmetric"
	case ColumnMode:
		return "column"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures Compute.
type Option func(*options)

type options struct {
	mode Mode
}

// WithMode selects the tree to compute. Panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != Symmetric && m != ColumnMode {
		panic(fmt.Sprintf("etree: WithMode(%d): unknown mode", int(m)))
	}
	return func(o *options) { o.mode = m }
}

// Compute returns the elimination tree of a (Symmetric mode, default) or of
// aᵀa (ColumnMode) as a parent array; roots hold None.
//
// Every pair (k, i) with i an earlier node connected to k is merged into the
// partially built forest: the path from i to its current root is compressed
// onto k, and a root that had no parent adopts k.
// Complexity: O(nnz·α(n)) time, O(n) (plus O(m) in ColumnMode) space.
func Compute(a *sparse.CSC, opts ...Option) ([]int, error) {
	o := options{mode: Symmetric}
	for _, opt := range opts {
		opt(&o)
	}
	n := a.Cols()
	parent := make([]int, n)
	ancestor := make([]int, n)

	switch o.mode {
	case ColumnMode:
		// prev[r] is the last column seen with a nonzero in row r; column k
		// and prev[r] are adjacent in AᵀA.
		prev := make([]int, a.Rows())
		for r := range prev {
			prev[r] = None
		}
		for k := 0; k < n; k++ {
			parent[k], ancestor[k] = None, None
			for _, r := range a.Range(k) {
				// i == k when column k lists row r twice
				if i := prev[r]; i != None && i < k {
					update(k, i, parent, ancestor)
				}
				prev[r] = k
			}
		}
	default:
		if a.Rows() != n {
			return nil, fmt.Errorf("Compute: %dx%d: %w", a.Rows(), n, ErrNonSquare)
		}
		for k := 0; k < n; k++ {
			parent[k], ancestor[k] = None, None
			for _, i := range a.Range(k) {
				if i < k {
					update(k, i, parent, ancestor)
				}
			}
		}
	}

	return parent, nil
}

// update merges the edge (k, i), i < k, into the forest.
func update(k, i int, parent, ancestor []int) {
	for {
		a := ancestor[i]
		if a == k {
			return
		}
		ancestor[i] = k
		if a == None {
			parent[i] = k
			return
		}
		i = a
	}
}
