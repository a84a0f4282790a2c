// SPDX-License-Identifier: MIT

package levelset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symbolic/dag"
)

// tree levels in-forests by converting the successor lists to a parent
// array and running BuildTree. A node with several successors gives
// ErrCycleDetected when g has a cycle and ErrNotForest otherwise.
type tree struct{}

func (tree) Name() string { return "tree" }

func (tree) Build(g *dag.Graph) (*Levels, error) {
	parent := make([]int, g.Len())
	for v := range parent {
		switch g.OutDegree(v) {
		case 0:
			parent[v] = -1
		case 1:
			parent[v] = g.Successors(v)[0]
		default:
			if _, err := Queue.Build(g); errors.Is(err, ErrCycleDetected) {
				return nil, fmt.Errorf("tree: %w", err)
			}
			return nil, fmt.Errorf("tree: node %d has %d successors: %w", v, g.OutDegree(v), ErrNotForest)
		}
	}

	return BuildTree(parent)
}

// BuildTree levels a forest given as a parent array (parent[v] == -1 marks
// a root). Children precede their parent: leaves form level 0 and a node's
// level is 1 + the maximum level of its children.
//
// Returns ErrMalformed for parent ids outside [-1, n) and ErrCycleDetected
// when the parent pointers contain a cycle.
// Complexity: O(n).
func BuildTree(parent []int) (*Levels, error) {
	// 1. Validate parents and count children.
	n := len(parent)
	nChild := make([]int, n)
	for v, p := range parent {
		if p < -1 || p >= n {
			return nil, fmt.Errorf("BuildTree: parent[%d]=%d with n=%d: %w", v, p, n, ErrMalformed)
		}
		if p >= 0 {
			nChild[p]++
		}
	}

	return buildTree(parent, nChild)
}

// BuildTreeCounted is BuildTree for callers that already hold the number of
// children of every node (e.g. from a postorder pass). nChild is not
// modified. Counts that disagree with parent yield ErrMalformed when a count
// would drop below zero, and ErrCycleDetected when nodes stay unreleased.
// Complexity: O(n).
func BuildTreeCounted(parent, nChild []int) (*Levels, error) {
	if len(nChild) != len(parent) {
		return nil, fmt.Errorf("BuildTreeCounted: len(nChild)=%d, want %d: %w", len(nChild), len(parent), ErrMalformed)
	}
	for v, p := range parent {
		if p < -1 || p >= len(parent) {
			return nil, fmt.Errorf("BuildTreeCounted: parent[%d]=%d: %w", v, p, ErrMalformed)
		}
	}

	return buildTree(parent, append([]int(nil), nChild...))
}

// buildTree drains leaves frontier by frontier; remaining is consumed.
func buildTree(parent, remaining []int) (*Levels, error) {
	n := len(parent)
	set := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if remaining[v] == 0 {
			set = append(set, v)
		}
	}
	ptr := append(make([]int, 0, 8), 0)
	for head := 0; head < len(set); {
		end := len(set)
		for ; head < end; head++ {
			p := parent[set[head]]
			if p < 0 {
				continue
			}
			remaining[p]--
			switch {
			case remaining[p] == 0:
				set = append(set, p)
			case remaining[p] < 0:
				return nil, fmt.Errorf("buildTree: node %d released more often than it has children: %w", p, ErrMalformed)
			}
		}
		ptr = append(ptr, end)
	}
	if len(set) < n {
		return nil, fmt.Errorf("buildTree: %d of %d nodes on a cycle: %w", n-len(set), n, ErrCycleDetected)
	}

	return newLevels(ptr, set), nil
}
