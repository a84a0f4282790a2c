// SPDX-License-Identifier: MIT
// Package: symbolic/gen
//
// Package gen produces synthetic sparse symmetric patterns for tests,
// benchmarks and the command-line driver.
//
// Every generator returns the full symmetric matrix (both triangles) in
// column storage with ascending rows. Values make the matrix strictly
// diagonally dominant, hence symmetric positive definite: off-diagonal
// entries are -1 and the diagonal is 1 + the number of off-diagonal entries
// in its column.
//
// Topologies:
//
//   - Tridiagonal(n):     path graph, etree is a chain
//   - Arrow(n):           dense last row and column, etree is a star
//   - Banded(n, bw):      all entries with |i-j| <= bw
//   - Grid2D(r, c):       5-point Laplacian of an r×c grid, row-major order
//   - RandomSPD(n, p):    each strictly-lower entry present with probability p
//
// Determinism: stochastic generators require an RNG (WithSeed or WithRand)
// and draw entries in a fixed column-major order, so a seed fixes the
// pattern.
package gen
