// SPDX-License-Identifier: MIT

package dag

import (
	"fmt"
	"time"

	"github.com/katalvlaran/symbolic/sparse"
)

// DefaultMaxGroupSize bounds the number of nodes merged into one group when
// no WithMaxGroupSize option is given.
const DefaultMaxGroupSize = 32

// Groups is a partition of nodes into ngroup disjoint groups in ptr/set
// form: group c owns Set()[Ptr()[c]:Ptr()[c+1]], members ascending.
type Groups struct {
	ptr []int
	set []int
	of  []int
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.ptr) - 1 }

// Members returns the nodes of group c (read-only view).
func (g *Groups) Members(c int) []int { return g.set[g.ptr[c]:g.ptr[c+1]] }

// Of returns the group owning node v.
func (g *Groups) Of(v int) int { return g.of[v] }

// Membership returns the node→group vector (read-only view).
func (g *Groups) Membership() []int { return g.of }

// Ptr returns the group pointer array (read-only view).
func (g *Groups) Ptr() []int { return g.ptr }

// Set returns the concatenated group members (read-only view).
func (g *Groups) Set() []int { return g.set }

// Grouped bundles a coarsened DAG with the groups it was built from.
// Node c of Graph stands for Groups.Members(c).
type Grouped struct {
	Graph  *Graph
	Groups *Groups
}

// GroupOption configures FromCSRGrouped.
type GroupOption func(*groupOptions)

type groupOptions struct {
	maxSize int
}

// WithMaxGroupSize bounds how many nodes one group may hold.
// Panics if size < 1.
func WithMaxGroupSize(size int) GroupOption {
	if size < 1 {
		panic("dag: WithMaxGroupSize(size<1)")
	}
	return func(o *groupOptions) {
		o.maxSize = size
	}
}

// FromCSRGrouped computes the DAG of a lower-triangular CSR matrix (see
// FromCSR) and coarsens it into groups of chained nodes.
//
// Nodes are scanned in ascending order. Node v joins the open group when
//  1. the edge v-1→v exists,
//  2. every predecessor of v already belongs to the open group, and
//  3. the group holds fewer than the maximum number of nodes;
//
// otherwise v opens a new group. Since every member after the first has all
// of its predecessors inside the group, the coarsened graph stays acyclic.
//
// Complexity: O(n + nnz).
func FromCSRGrouped(a *sparse.CSR, opts ...GroupOption) (*Grouped, time.Duration, error) {
	start := time.Now()
	o := groupOptions{maxSize: DefaultMaxGroupSize}
	for _, opt := range opts {
		opt(&o)
	}
	// 1. Plain DAG and its predecessor lists.
	g, _, err := FromCSR(a)
	if err != nil {
		return nil, 0, fmt.Errorf("FromCSRGrouped: %w", err)
	}
	pred := g.Reverse()
	// 2. Greedy chain merge.
	n := g.Len()
	of := make([]int, n)
	ptr := []int{0}
	set := make([]int, 0, n)
	group, first := -1, 0
	for v := 0; v < n; v++ {
		if group < 0 || !joins(pred.Successors(v), v, first, len(set)-ptr[group], o.maxSize) {
			group++
			first = v
			ptr = append(ptr, ptr[group])
		}
		of[v] = group
		set = append(set, v)
		ptr[group+1]++
	}
	groups := &Groups{ptr: ptr, set: set, of: of}
	// 3. Quotient graph over groups.
	cg, err := Coarsen(g, of, groups.Len())
	if err != nil {
		return nil, 0, fmt.Errorf("FromCSRGrouped: %w", err)
	}

	return &Grouped{Graph: cg, Groups: groups}, time.Since(start), nil
}

// FromCSRArrays is FromCSRGrouped over raw CSR arrays of an n×n pattern.
func FromCSRArrays(n int, ptr, idx []int, opts ...GroupOption) (*Grouped, time.Duration, error) {
	a, err := sparse.NewCSR(n, n, ptr, idx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("FromCSRArrays: %w", err)
	}

	return FromCSRGrouped(a, opts...)
}

// joins reports whether node v may extend the group that starts at first
// and currently holds size nodes. preds are v's predecessors (all < v).
func joins(preds []int, v, first, size, maxSize int) bool {
	if size >= maxSize {
		return false
	}
	linked := false
	for _, u := range preds {
		if u < first {
			return false
		}
		if u == v-1 {
			linked = true
		}
	}

	return linked
}
