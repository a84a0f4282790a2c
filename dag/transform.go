// SPDX-License-Identifier: MIT

package dag

import (
	"fmt"
	"slices"
)

// Coarsen returns the quotient graph of g under membership: node v belongs
// to group membership[v] in [0, k). The result has k nodes and an edge c→d
// whenever some edge crosses from group c to a different group d. Edges
// inside a group disappear; duplicates are merged and successor lists come
// out ascending.
//
// Coarsening a DAG can create cycles when groups are not convex; the
// schedulers report them.
// Complexity: O(n + edges + Σ d log d) for result out-degrees d.
func Coarsen(g *Graph, membership []int, k int) (*Graph, error) {
	n := g.Len()
	// 1. Validate the membership vector.
	if len(membership) != n {
		return nil, fmt.Errorf("Coarsen: len(membership)=%d, want %d: %w", len(membership), n, ErrBadParameter)
	}
	if k < 0 {
		return nil, fmt.Errorf("Coarsen: k=%d: %w", k, ErrBadParameter)
	}
	for v, c := range membership {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("Coarsen: membership[%d]=%d not in [0,%d): %w", v, c, k, ErrOutOfRange)
		}
	}
	// 2. Bucket nodes by group (counting sort).
	start := make([]int, k+1)
	for _, c := range membership {
		start[c+1]++
	}
	for c := 0; c < k; c++ {
		start[c+1] += start[c]
	}
	members := make([]int, n)
	next := slices.Clone(start[:k])
	for v, c := range membership {
		members[next[c]] = v
		next[c]++
	}
	// 3. Collect distinct crossing targets per group with a stamp array.
	stamp := make([]int, k)
	for c := range stamp {
		stamp[c] = -1
	}
	ptr := make([]int, k+1)
	idx := make([]int, 0, g.EdgeCount())
	for c := 0; c < k; c++ {
		for _, v := range members[start[c]:start[c+1]] {
			for _, w := range g.Successors(v) {
				d := membership[w]
				if d == c || stamp[d] == c {
					continue
				}
				stamp[d] = c
				idx = append(idx, d)
			}
		}
		slices.Sort(idx[ptr[c]:])
		ptr[c+1] = len(idx)
	}

	return &Graph{p: newPattern(k, ptr, idx)}, nil
}

// Chain replicates g for nKern kernels that run back to back over the same
// structure. Node v of kernel t gets id t*n+v; it keeps the edges of g inside
// its kernel and additionally depends on node v of kernel t-1.
// Complexity: O(nKern·(n + edges)).
func Chain(g *Graph, nKern int) (*Graph, error) {
	if nKern < 1 {
		return nil, fmt.Errorf("Chain: nKern=%d: %w", nKern, ErrBadParameter)
	}
	if nKern == 1 {
		return g, nil
	}
	n := g.Len()
	total := n * nKern
	ptr := make([]int, total+1)
	idx := make([]int, 0, nKern*g.EdgeCount()+(nKern-1)*n)
	for t := 0; t < nKern; t++ {
		base := t * n
		for v := 0; v < n; v++ {
			for _, w := range g.Successors(v) {
				idx = append(idx, base+w)
			}
			if t+1 < nKern {
				idx = append(idx, base+n+v)
			}
			ptr[base+v+1] = len(idx)
		}
	}

	return &Graph{p: newPattern(total, ptr, idx)}, nil
}
