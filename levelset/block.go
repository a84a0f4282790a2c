// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/sparse"
)

// BlockLevels is the schedule of a blocked matrix at both granularities:
// Supernodes orders block ids, Columns orders the member columns of those
// blocks with the same level boundaries. Columns of one block depend on each
// other and share a level: a block runs as a unit, its columns are not
// independent tasks.
type BlockLevels struct {
	Supernodes *Levels
	Columns    *Levels
}

// BuildBCSC levels a blocked lower-triangular matrix at supernode
// granularity (the DAG of b.Compress()) and expands every supernode's level
// to its member columns. A nil alg selects Default.
// Complexity: O(nsuper + len(b.RowIdx) + n) plus the strategy cost.
func BuildBCSC(b *sparse.BCSC, alg Algorithm) (*BlockLevels, error) {
	if alg == nil {
		alg = Default
	}
	// 1. Supernode DAG: block s feeds every other block owning one of its rows.
	g, err := dag.FromCSC(b.Compress(), dag.Lower)
	if err != nil {
		return nil, fmt.Errorf("BuildBCSC: %w", err)
	}
	// 2. Level the blocks.
	sup, err := alg.Build(g)
	if err != nil {
		return nil, fmt.Errorf("BuildBCSC: %w", err)
	}
	// 3. Expand to columns.
	cols, err := Expand(sup, b.Sup2Col)
	if err != nil {
		return nil, fmt.Errorf("BuildBCSC: %w", err)
	}

	return &BlockLevels{Supernodes: sup, Columns: cols}, nil
}

// Expand turns a schedule over supernodes into a schedule over their member
// nodes. boundaries has one entry per supernode plus one: supernode s owns
// nodes [boundaries[s], boundaries[s+1]). Members keep ascending order and
// level boundaries are preserved.
func Expand(sup *Levels, boundaries []int) (*Levels, error) {
	// 1. The boundaries must partition 0..n-1 into sup.Len() ranges.
	if len(boundaries) != sup.Len()+1 || boundaries[0] != 0 {
		return nil, fmt.Errorf("Expand: %d boundaries for %d supernodes: %w", len(boundaries), sup.Len(), ErrMalformed)
	}
	for s := 0; s < sup.Len(); s++ {
		if boundaries[s+1] <= boundaries[s] {
			return nil, fmt.Errorf("Expand: empty or reversed supernode %d: %w", s, ErrMalformed)
		}
	}
	// 2. Copy member ranges level by level.
	n := boundaries[sup.Len()]
	ptr := make([]int, sup.Count()+1)
	set := make([]int, 0, n)
	for l := 0; l < sup.Count(); l++ {
		for _, s := range sup.Level(l) {
			for v := boundaries[s]; v < boundaries[s+1]; v++ {
				set = append(set, v)
			}
		}
		ptr[l+1] = len(set)
	}

	return newLevels(ptr, set), nil
}
