// SPDX-License-Identifier: MIT

// Package etree computes elimination trees of sparse symmetric matrices
// and the structural quantities derived from them.
//
// The elimination tree of an n×n symmetric matrix A has one node per column;
// parent[j] is the row index of the first off-diagonal nonzero in column j of
// the Cholesky factor L, or None for a root. It captures exactly the column
// dependencies of the factorization: column j must be finished before its
// parent.
//
// Operations:
//
//   - Compute:         parent array by union-find with ancestor compression,
//     O(nnz·α(n)); ColumnMode computes the tree of AᵀA without forming it
//   - Postorder:       children-first order, siblings ascending
//   - DFSTree:         iterative postorder of one subtree (building block)
//   - Ereach:          pattern of row k of L, O(|L(k,:)|), in topological order
//   - Reacher:         reusable Ereach workspace
//   - SymbolicFactor:  full pattern of L from Ereach over every row
//
// Errors:
//
//   - ErrNonSquare     symmetric mode on a rectangular matrix
//   - ErrMalformed     parent array with out-of-range entries, short workspaces
//   - ErrCycleDetected parent pointers that do not form a forest
//   - ErrNotAncestor   Ereach walked to a root without meeting k (tree and
//     matrix disagree)
package etree
