// SPDX-License-Identifier: MIT

// Package sparse holds the structural views the symbolic analysis works on:
// compressed patterns (pointer+index pairs), CSR and CSC matrices built on top
// of them, and the blocked column layout (BCSC) used by supernodal kernels.
//
// What:
//
//   - Pattern: the pointer array / index array pair shared by CSR, CSC and DAG
//     adjacency. Ranges are exposed by major index through Range and Span.
//   - CSR / CSC: a Pattern plus optional values, with conversions and triangle
//     extraction.
//   - BCSC: columns grouped into blocks (supernodes) that share one row list;
//     each column of a block stores its values densely.
//
// Invariants (checked by constructors, never assumed):
//
//   - len(ptr) == n+1, ptr[0] == 0, ptr non-decreasing, ptr[n] == len(idx)
//   - every index lies in [0, minor)
//   - values, when present, are parallel to the index array
//
// Index order inside one range is NOT assumed sorted. Functions that need
// sorted ranges say so, or call Sorted first.
//
// Errors:
//
//   - ErrMalformed         inconsistent pointer/index arrays
//   - ErrDimensionMismatch lengths or shapes disagree
//   - ErrOutOfRange        an index argument falls outside the structure
//
// Complexity:
//
//   - NewPattern: O(n + nnz) validation
//   - Transpose:  O(n + minor + nnz)
//   - Sorted:     O(nnz log d) where d is the longest range
package sparse
