// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"

	"github.com/katalvlaran/symbolic/dag"
)

// MultiGraph levels nKern kernels that run back to back over the structure
// of g (see dag.Chain): node v of kernel t has id t*n+v and additionally
// waits for node v of kernel t-1. The resulting schedule keeps the levels
// of the kernels consistent: level(t*n+v) == level(v) + t.
// A nil alg selects Default.
func MultiGraph(g *dag.Graph, nKern int, alg Algorithm) (*Levels, error) {
	if alg == nil {
		alg = Default
	}
	c, err := dag.Chain(g, nKern)
	if err != nil {
		return nil, fmt.Errorf("MultiGraph: %w", err)
	}
	l, err := alg.Build(c)
	if err != nil {
		return nil, fmt.Errorf("MultiGraph: %w", err)
	}

	return l, nil
}

// Depth returns, for every node, the length of the longest path from that
// node to a sink, found by a breadth-first sweep of the reversed DAG
// starting at its sources (the sinks of g). Sinks have depth 0.
//
// Depth is a critical-path metric for tie-breaking inside a level; it is not
// the leveling criterion. Returns ErrCycleDetected for cyclic graphs.
// Complexity: O(n + edges).
func Depth(g *dag.Graph) ([]int, error) {
	r := g.Reverse()
	n := r.Len()
	// out-degree in g == in-degree in the reversed graph
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		indeg[v] = g.OutDegree(v)
	}
	depth := make([]int, n)
	ready := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			ready = append(ready, v)
		}
	}
	for head := 0; head < len(ready); head++ {
		v := ready[head]
		for _, u := range r.Successors(v) {
			if depth[v]+1 > depth[u] {
				depth[u] = depth[v] + 1
			}
			indeg[u]--
			if indeg[u] == 0 {
				ready = append(ready, u)
			}
		}
	}
	if len(ready) < n {
		return nil, fmt.Errorf("Depth: %d of %d nodes unreachable: %w", n-len(ready), n, ErrCycleDetected)
	}

	return depth, nil
}
