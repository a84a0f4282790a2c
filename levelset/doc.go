// SPDX-License-Identifier: MIT

// Package levelset partitions a DAG into level sets (wavefronts): ordered
// groups of mutually independent nodes such that every predecessor of a node
// lies in a strictly earlier level.
//
// Contract shared by every Algorithm:
//
//   - level(v) = 0 if v has no predecessors, else 1 + max level(u) over the
//     predecessors u of v (levels are maximal, nodes are placed as early as
//     their dependencies allow)
//   - every node appears exactly once in the level set
//   - a graph that is not acyclic yields ErrCycleDetected
//
// Strategies differ only in cost and in the order of nodes inside a level:
//
//   - Naive:   rescans all unplaced nodes once per level, O(L·n + e);
//     ascending node ids inside a level
//   - Queue:   Kahn ready queue with per-node level tracking, then a bucket
//     pass; O(n + e); ascending node ids inside a level
//   - Compact: the level set array doubles as the ready queue, one frontier
//     per level; O(n + e); discovery order inside a level
//   - Tree:    in-forests only (each node has at most one successor, e.g. an
//     elimination tree with child→parent edges); leaves first; O(n)
//
// The schedule is what a numeric executor consumes: nodes of one level may
// run on separate goroutines without synchronization; a barrier separates
// level l from level l+1.
//
// Beyond plain graphs the package levels blocked matrices at supernode
// granularity (BuildBCSC), chained kernels (MultiGraph), and reports the
// critical-path depth of every node (Depth).
//
// Errors:
//
//   - ErrCycleDetected     the input graph or tree has a cycle
//   - ErrNotForest         Tree strategy on a node with several successors
//   - ErrMalformed         inconsistent parent array, child counts, or level arrays
//   - ErrInvalidSchedule   Verify found a dependency or maximality violation
//   - ErrUnknownAlgorithm  ByName lookup failed
package levelset
