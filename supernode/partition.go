// SPDX-License-Identifier: MIT

package supernode

import (
	"fmt"
	"sort"
)

// Find returns the supernode s in [start, end) with
// supernodes[s] <= target < supernodes[s+1], or -1 when no supernode in the
// range owns target. supernodes must be ascending.
// Complexity: O(log(end-start)).
func Find(supernodes []int, start, end, target int) int {
	if start < 0 || end >= len(supernodes) || start >= end {
		return -1
	}
	if target < supernodes[start] || target >= supernodes[end] {
		return -1
	}
	// first boundary strictly above target, minus one
	s := start + sort.Search(end-start, func(i int) bool { return supernodes[start+i+1] > target })

	return s
}

// Sup2Node maps every node in [0, n) to the supernode owning it.
// Supernode ids follow boundary order and do not depend on any level set;
// levelset.Expand maps supernode levels to columns.
// Returns ErrMalformed when supernodes is not a partition of 0..n-1 into
// non-empty ranges.
// Complexity: O(n + len(supernodes)).
func Sup2Node(n int, supernodes []int) ([]int, error) {
	if err := validate(n, supernodes); err != nil {
		return nil, fmt.Errorf("Sup2Node: %w", err)
	}
	out := make([]int, n)
	for s := 0; s+1 < len(supernodes); s++ {
		for v := supernodes[s]; v < supernodes[s+1]; v++ {
			out[v] = s
		}
	}

	return out, nil
}

// validate checks a boundary array against n.
func validate(n int, supernodes []int) error {
	if len(supernodes) == 0 || supernodes[0] != 0 || supernodes[len(supernodes)-1] != n {
		return fmt.Errorf("boundaries must span [0,%d]: %w", n, ErrMalformed)
	}
	for s := 0; s+1 < len(supernodes); s++ {
		if supernodes[s+1] <= supernodes[s] {
			return fmt.Errorf("supernode %d is empty or reversed: %w", s, ErrMalformed)
		}
	}

	return nil
}
