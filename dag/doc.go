// SPDX-License-Identifier: MIT

// Package dag builds task-dependency graphs from sparse matrix structure.
//
// A Graph stores, for every node, the list of nodes that depend on it
// (successor lists in CSC shape): an edge i→k means node i must complete
// before node k may start. Graphs are plain values over a sparse.Pattern;
// construction never checks acyclicity, the leveling step in package
// levelset reports cycles.
//
// What:
//
//   - FromCSR: the DAG of a lower-triangular solve. Row k of the matrix lists
//     the nodes k depends on (column i < k adds edge i→k).
//   - FromCSRGrouped / FromCSRArrays: the same DAG coarsened into groups of
//     chained nodes (size-bounded greedy merge), reported as Groups.
//   - FromCSC: column j adds j→i for rows below (Lower) or above (Upper) the
//     diagonal, matching forward and backward triangular solves.
//   - FromParents: child→parent edges of a forest (elimination trees).
//   - Coarsen, Chain, Reverse: quotient graphs, multi-kernel replication and
//     edge reversal used by the schedulers.
//
// Complexity:
//
//   - FromCSR, FromCSC, Reverse: O(n + nnz)
//   - Coarsen:                   O(n + edges + groups log)
//   - Chain:                     O(nKern·(n + edges))
//
// Errors:
//
//   - ErrNonSquare      matrix input is not square
//   - ErrOutOfRange     node, group or parent id outside its range
//   - ErrBadParameter   meaningless numeric argument (nKern < 1, ...)
//   - sparse.ErrMalformed propagated from pattern validation
package dag
