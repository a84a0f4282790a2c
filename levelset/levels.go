// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"

	"github.com/katalvlaran/symbolic/dag"
)

// Levels is a level partition of n nodes: level l holds
// Set()[Ptr()[l]:Ptr()[l+1]]. Of(v) is the inverse mapping (node2level).
// A Levels value is immutable; accessor slices are read-only views.
type Levels struct {
	ptr []int // len count+1
	set []int // permutation of 0..n-1
	of  []int // node -> level
}

// NewLevels validates a levelPtr/levelSet pair and derives node2level.
// Returns ErrMalformed when ptr is not a pointer array over set or set is
// not a permutation of 0..len(set)-1.
// Complexity: O(n + levels).
func NewLevels(ptr, set []int) (*Levels, error) {
	// 1. Pointer shape.
	if len(ptr) == 0 || ptr[0] != 0 || ptr[len(ptr)-1] != len(set) {
		return nil, fmt.Errorf("NewLevels: pointer array does not span the level set: %w", ErrMalformed)
	}
	for l := 0; l+1 < len(ptr); l++ {
		if ptr[l+1] < ptr[l] {
			return nil, fmt.Errorf("NewLevels: ptr[%d]=%d < ptr[%d]=%d: %w", l+1, ptr[l+1], l, ptr[l], ErrMalformed)
		}
	}
	// 2. Permutation check while filling node2level.
	of := make([]int, len(set))
	for v := range of {
		of[v] = -1
	}
	for l := 0; l+1 < len(ptr); l++ {
		for _, v := range set[ptr[l]:ptr[l+1]] {
			if v < 0 || v >= len(set) {
				return nil, fmt.Errorf("NewLevels: node %d out of range: %w", v, ErrMalformed)
			}
			if of[v] >= 0 {
				return nil, fmt.Errorf("NewLevels: node %d in levels %d and %d: %w", v, of[v], l, ErrMalformed)
			}
			of[v] = l
		}
	}

	return &Levels{ptr: ptr, set: set, of: of}, nil
}

// newLevels wraps arrays produced by a strategy, deriving node2level.
func newLevels(ptr, set []int) *Levels {
	of := make([]int, len(set))
	for l := 0; l+1 < len(ptr); l++ {
		for _, v := range set[ptr[l]:ptr[l+1]] {
			of[v] = l
		}
	}

	return &Levels{ptr: ptr, set: set, of: of}
}

// Count returns the number of levels.
func (l *Levels) Count() int { return len(l.ptr) - 1 }

// Len returns the number of scheduled nodes.
func (l *Levels) Len() int { return len(l.set) }

// Level returns the nodes of level i (read-only view).
func (l *Levels) Level(i int) []int { return l.set[l.ptr[i]:l.ptr[i+1]] }

// Ptr returns the level pointer array (read-only view).
func (l *Levels) Ptr() []int { return l.ptr }

// Set returns all nodes ordered by level (read-only view).
func (l *Levels) Set() []int { return l.set }

// Of returns the level of node v.
func (l *Levels) Of(v int) int { return l.of[v] }

// Node2Level returns the node→level vector (read-only view).
func (l *Levels) Node2Level() []int { return l.of }

// MaxWidth returns the size of the widest level (0 for an empty schedule).
func (l *Levels) MaxWidth() int {
	w := 0
	for i := 0; i < l.Count(); i++ {
		if d := l.ptr[i+1] - l.ptr[i]; d > w {
			w = d
		}
	}

	return w
}

// Parallelism returns the average number of nodes per level.
func (l *Levels) Parallelism() float64 {
	if l.Count() == 0 {
		return 0
	}
	return float64(l.Len()) / float64(l.Count())
}

// Verify checks l against g: every edge u→v must satisfy Of(u) < Of(v),
// and every node must sit exactly one level after its latest predecessor
// (level 0 without predecessors). Returns ErrInvalidSchedule on violation.
// Complexity: O(n + edges).
func (l *Levels) Verify(g *dag.Graph) error {
	if g.Len() != l.Len() {
		return fmt.Errorf("Verify: %d scheduled nodes for %d graph nodes: %w", l.Len(), g.Len(), ErrInvalidSchedule)
	}
	// 1. Dependencies point strictly forward; track the latest predecessor.
	latest := make([]int, g.Len())
	for v := range latest {
		latest[v] = -1
	}
	for u := 0; u < g.Len(); u++ {
		for _, v := range g.Successors(u) {
			if l.of[u] >= l.of[v] {
				return fmt.Errorf("Verify: edge %d->%d keeps level %d >= %d: %w", u, v, l.of[u], l.of[v], ErrInvalidSchedule)
			}
			if l.of[u] > latest[v] {
				latest[v] = l.of[u]
			}
		}
	}
	// 2. Maximality: no node waits longer than it must.
	for v, p := range latest {
		if l.of[v] != p+1 {
			return fmt.Errorf("Verify: node %d at level %d, earliest is %d: %w", v, l.of[v], p+1, ErrInvalidSchedule)
		}
	}

	return nil
}
