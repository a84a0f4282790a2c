// SPDX-License-Identifier: MIT

package dag

import (
	"fmt"

	"github.com/katalvlaran/symbolic/sparse"
)

// Graph is a directed graph over nodes 0..n-1 stored as successor lists.
// Successors(v) are the nodes that depend on v.
type Graph struct {
	p *sparse.Pattern
}

// New wraps the successor lists ptr/idx (CSC shape, len(ptr) == n+1) after
// validating them. The slices are owned by the returned Graph.
func New(n int, ptr, idx []int) (*Graph, error) {
	if len(ptr) != n+1 {
		return nil, fmt.Errorf("New: len(ptr)=%d, want %d: %w", len(ptr), n+1, ErrBadParameter)
	}
	p, err := sparse.NewPattern(n, ptr, idx)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Graph{p: p}, nil
}

// FromPattern uses a square pattern directly as successor lists.
func FromPattern(p *sparse.Pattern) (*Graph, error) {
	if p.Len() != p.Minor() {
		return nil, fmt.Errorf("FromPattern: %dx%d: %w", p.Minor(), p.Len(), ErrNonSquare)
	}

	return &Graph{p: p}, nil
}

// FromEdges builds a graph from explicit (from, to) pairs. Successor lists
// keep the order in which edges are given.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrBadParameter)
	}
	// 1. Count out-degrees, rejecting unknown endpoints.
	ptr := make([]int, n+1)
	for k, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("FromEdges: edge %d (%d->%d) with n=%d: %w", k, e[0], e[1], n, ErrOutOfRange)
		}
		ptr[e[0]+1]++
	}
	for v := 0; v < n; v++ {
		ptr[v+1] += ptr[v]
	}
	// 2. Scatter targets.
	next := make([]int, n)
	copy(next, ptr[:n])
	idx := make([]int, len(edges))
	for _, e := range edges {
		idx[next[e[0]]] = e[1]
		next[e[0]]++
	}

	return &Graph{p: newPattern(n, ptr, idx)}, nil
}

// newPattern wraps arrays produced by this package; they satisfy the
// pattern invariants by construction, so validation only costs time.
func newPattern(n int, ptr, idx []int) *sparse.Pattern {
	p, err := sparse.NewPattern(n, ptr, idx)
	if err != nil {
		// internal kernels produced an invalid pattern: programmer error
		panic(fmt.Sprintf("dag: internal pattern invalid: %v", err))
	}

	return p
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.p.Len() }

// Successors returns the nodes that depend on v (read-only view).
func (g *Graph) Successors(v int) []int { return g.p.Range(v) }

// OutDegree returns len(Successors(v)).
func (g *Graph) OutDegree(v int) int { return g.p.Degree(v) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.p.NNZ() }

// Pattern exposes the successor lists as a sparse.Pattern (read-only).
func (g *Graph) Pattern() *sparse.Pattern { return g.p }

// InDegrees returns the number of predecessors of every node.
// Complexity: O(n + edges).
func (g *Graph) InDegrees() []int {
	deg := make([]int, g.Len())
	for _, w := range g.p.Idx() {
		deg[w]++
	}

	return deg
}

// Reverse returns the graph with every edge flipped; Successors of the
// result are the predecessors of the original, in ascending order.
func (g *Graph) Reverse() *Graph {
	return &Graph{p: g.p.Transpose()}
}

// Edges lists every edge as a (from, to) pair, sources ascending.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for v := 0; v < g.Len(); v++ {
		for _, w := range g.Successors(v) {
			out = append(out, [2]int{v, w})
		}
	}

	return out
}
