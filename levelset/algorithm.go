// SPDX-License-Identifier: MIT

package levelset

import (
	"fmt"
	"time"

	"github.com/katalvlaran/symbolic/dag"
)

// Algorithm computes a level partition of a DAG. Every implementation
// honours the package contract; only cost and intra-level order differ.
type Algorithm interface {
	// Name is the stable identifier used by ByName.
	Name() string
	// Build levels g, or returns ErrCycleDetected.
	Build(g *dag.Graph) (*Levels, error)
}

var (
	// Naive rescans all unplaced nodes once per level.
	Naive Algorithm = naive{}
	// Queue is the Kahn ready-queue strategy with a final bucket pass.
	Queue Algorithm = queue{}
	// Compact uses the level set array itself as the ready queue.
	Compact Algorithm = compact{}
	// Tree levels in-forests (at most one successor per node). Cycles are
	// still reported as ErrCycleDetected.
	Tree Algorithm = tree{}

	// Default is the strategy used when callers do not pick one.
	Default = Queue
)

// All returns every registered strategy in a stable order.
func All() []Algorithm {
	return []Algorithm{Naive, Queue, Compact, Tree}
}

// ByName returns the strategy called name, or ErrUnknownAlgorithm.
func ByName(name string) (Algorithm, error) {
	for _, a := range All() {
		if a.Name() == name {
			return a, nil
		}
	}

	return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownAlgorithm)
}

// Timed runs alg on g and reports the elapsed time (for profiling only).
func Timed(alg Algorithm, g *dag.Graph) (*Levels, time.Duration, error) {
	start := time.Now()
	l, err := alg.Build(g)

	return l, time.Since(start), err
}

// naive places, per pass, every unplaced node whose in-degree dropped to
// zero before the pass started.
type naive struct{}

func (naive) Name() string { return "naive" }

func (naive) Build(g *dag.Graph) (*Levels, error) {
	n := g.Len()
	indeg := g.InDegrees()
	placed := make([]bool, n)
	ptr := append(make([]int, 0, 8), 0)
	set := make([]int, 0, n)
	for len(set) < n {
		// 1. Collect the current wavefront in ascending order.
		start := len(set)
		for v := 0; v < n; v++ {
			if !placed[v] && indeg[v] == 0 {
				set = append(set, v)
			}
		}
		if len(set) == start {
			return nil, fmt.Errorf("naive: %d of %d nodes unreachable: %w", n-start, n, ErrCycleDetected)
		}
		// 2. Release successors only after the whole wavefront is known.
		for _, v := range set[start:] {
			placed[v] = true
			for _, w := range g.Successors(v) {
				indeg[w]--
			}
		}
		ptr = append(ptr, len(set))
	}

	return newLevels(ptr, set), nil
}

// queue runs Kahn's algorithm with a FIFO ready queue, tracking the level
// of every node as 1 + max over its released predecessors, then buckets
// nodes by level in ascending id order.
type queue struct{}

func (queue) Name() string { return "queue" }

func (queue) Build(g *dag.Graph) (*Levels, error) {
	n := g.Len()
	indeg := g.InDegrees()
	level := make([]int, n)
	ready := make([]int, 0, n)
	// 1. Seed with all sources.
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			ready = append(ready, v)
		}
	}
	// 2. Drain; a node's level is final when its last predecessor leaves.
	count := 0
	for head := 0; head < len(ready); head++ {
		v := ready[head]
		if level[v]+1 > count {
			count = level[v] + 1
		}
		for _, w := range g.Successors(v) {
			if level[v]+1 > level[w] {
				level[w] = level[v] + 1
			}
			indeg[w]--
			if indeg[w] == 0 {
				ready = append(ready, w)
			}
		}
	}
	if len(ready) < n {
		return nil, fmt.Errorf("queue: %d of %d nodes unreachable: %w", n-len(ready), n, ErrCycleDetected)
	}
	// 3. Bucket by level (counting sort keeps ids ascending).
	ptr := make([]int, count+1)
	for _, l := range level {
		ptr[l+1]++
	}
	for l := 0; l < count; l++ {
		ptr[l+1] += ptr[l]
	}
	next := make([]int, count)
	copy(next, ptr[:count])
	set := make([]int, n)
	for v, l := range level {
		set[next[l]] = v
		next[l]++
	}

	return &Levels{ptr: ptr, set: set, of: level}, nil
}

// compact drains one frontier per level, appending released nodes straight
// into the level set; the level set is the queue.
type compact struct{}

func (compact) Name() string { return "compact" }

func (compact) Build(g *dag.Graph) (*Levels, error) {
	n := g.Len()
	indeg := g.InDegrees()
	set := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			set = append(set, v)
		}
	}
	ptr := append(make([]int, 0, 8), 0)
	for head := 0; head < len(set); {
		// the frontier is set[head:end]; everything appended now is next level
		end := len(set)
		for ; head < end; head++ {
			for _, w := range g.Successors(set[head]) {
				indeg[w]--
				if indeg[w] == 0 {
					set = append(set, w)
				}
			}
		}
		ptr = append(ptr, end)
	}
	if len(set) < n {
		return nil, fmt.Errorf("compact: %d of %d nodes unreachable: %w", n-len(set), n, ErrCycleDetected)
	}

	return newLevels(ptr, set), nil
}
