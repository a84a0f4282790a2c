// SPDX-License-Identifier: MIT

package supernode

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/sparse"
)

// CompressCSC returns the supernode DAG of the triangular kernel of a: the
// matrix DAG in orientation o (see dag.FromCSC) coarsened onto supernodes.
func CompressCSC(a *sparse.CSC, supernodes []int, o dag.Orientation) (*dag.Graph, error) {
	g, err := dag.FromCSC(a, o)
	if err != nil {
		return nil, fmt.Errorf("CompressCSC: %w", err)
	}
	membership, err := Sup2Node(g.Len(), supernodes)
	if err != nil {
		return nil, fmt.Errorf("CompressCSC: %w", err)
	}
	c, err := dag.Coarsen(g, membership, len(supernodes)-1)
	if err != nil {
		return nil, fmt.Errorf("CompressCSC: %w", err)
	}

	return c, nil
}

// LevelSetBN levels nKern chained triangular solves over a at supernode
// granularity. o selects the dependency direction: Lower for forward
// substitution, Upper for backward. Node t*ns+s of the result is supernode
// s of kernel t. A nil alg selects levelset.Default.
func LevelSetBN(a *sparse.CSC, supernodes []int, nKern int, o dag.Orientation, alg levelset.Algorithm) (*levelset.Levels, error) {
	g, err := CompressCSC(a, supernodes, o)
	if err != nil {
		return nil, fmt.Errorf("LevelSetBN: %w", err)
	}
	l, err := levelset.MultiGraph(g, nKern, alg)
	if err != nil {
		return nil, fmt.Errorf("LevelSetBN: %w", err)
	}

	return l, nil
}

// MergeGraphs fuses a blocked factor a, an intermediate product b and a
// blocked factor c sharing one supernode partition into a single supernodal
// dependency graph of 3·ns nodes: [0,ns) are the blocks of a, [ns,2ns) the
// row blocks of b and [2ns,3ns) the blocks of c.
//
// Edges: the block dependencies of a; A(col2sup(j)) → B(col2sup(i)) for
// every entry (i, j) of b; B(s) → C(s); the block dependencies of c.
// The graph is returned as a lower-triangular pattern (column u lists u and
// its successors, ascending), the supernodal CSC the fused kernel consumes.
func MergeGraphs(a *sparse.BCSC, b *sparse.CSC, c *sparse.BCSC) (*sparse.CSC, error) {
	if !slices.Equal(a.Sup2Col, c.Sup2Col) {
		return nil, fmt.Errorf("MergeGraphs: a and c partitions differ: %w", ErrDimensionMismatch)
	}
	n := a.N()
	if b.Rows() != n || b.Cols() != n {
		return nil, fmt.Errorf("MergeGraphs: b is %dx%d, want %dx%d: %w", b.Rows(), b.Cols(), n, n, ErrDimensionMismatch)
	}
	ga, err := dag.FromCSC(a.Compress(), dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("MergeGraphs: %w", err)
	}
	gc, err := dag.FromCSC(c.Compress(), dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("MergeGraphs: %w", err)
	}

	return fuse(a.NSuper(), ga, b, gc, a.Col2Sup), nil
}

// FusedLevels levels the fused graph of two lower-triangular factors a, c
// and the product b, given in plain column storage and blocked by
// supernodes. A nil alg selects levelset.Default.
func FusedLevels(a, b, c *sparse.CSC, supernodes []int, alg levelset.Algorithm) (*levelset.Levels, error) {
	if alg == nil {
		alg = levelset.Default
	}
	n := a.Cols()
	if c.Cols() != n || b.Rows() != n || b.Cols() != n {
		return nil, fmt.Errorf("FusedLevels: operands are not all %dx%d: %w", n, n, ErrDimensionMismatch)
	}
	sup2node, err := Sup2Node(n, supernodes)
	if err != nil {
		return nil, fmt.Errorf("FusedLevels: %w", err)
	}
	ga, err := CompressCSC(a, supernodes, dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("FusedLevels: %w", err)
	}
	gc, err := CompressCSC(c, supernodes, dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("FusedLevels: %w", err)
	}
	g, err := dag.FromCSC(fuse(len(supernodes)-1, ga, b, gc, sup2node), dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("FusedLevels: %w", err)
	}
	l, err := alg.Build(g)
	if err != nil {
		return nil, fmt.Errorf("FusedLevels: %w", err)
	}

	return l, nil
}

// fuse assembles the 3·ns-node fused pattern. All edges point to larger
// ids, so the result is lower triangular with the diagonal stored.
func fuse(ns int, ga *dag.Graph, b *sparse.CSC, gc *dag.Graph, sup2node []int) *sparse.CSC {
	succ := make([][]int, 3*ns)
	// 1. Intra-factor dependencies.
	for s := 0; s < ns; s++ {
		succ[s] = append(succ[s], ga.Successors(s)...)
		for _, t := range gc.Successors(s) {
			succ[2*ns+s] = append(succ[2*ns+s], 2*ns+t)
		}
		succ[ns+s] = append(succ[ns+s], 2*ns+s)
	}
	// 2. The product reads the first solve and feeds the second.
	for j := 0; j < b.Cols(); j++ {
		from := sup2node[j]
		for _, i := range b.Range(j) {
			succ[from] = append(succ[from], ns+sup2node[i])
		}
	}
	// 3. Compress: diagonal then deduplicated successors.
	ptr := make([]int, 3*ns+1)
	idx := make([]int, 0, 3*ns)
	for u, list := range succ {
		slices.Sort(list)
		idx = append(idx, u)
		idx = append(idx, slices.Compact(list)...)
		ptr[u+1] = len(idx)
	}
	f, err := sparse.NewCSC(3*ns, 3*ns, ptr, idx, nil)
	if err != nil {
		panic(fmt.Sprintf("supernode: fused pattern: %v", err))
	}

	return f
}
