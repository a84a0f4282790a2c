// SPDX-License-Identifier: MIT
// Package: symbolic/gen
//
// gen.go: generator implementations.
//
// Contract:
//   - sizes are validated first (ErrTooSmall), nothing is allocated on error
//   - strictly-lower entries are listed column by column, rows ascending,
//     then mirrored by assemble

package gen

import (
	"fmt"

	"github.com/katalvlaran/symbolic/sparse"
)

const (
	methodTridiagonal = "Tridiagonal"
	methodArrow       = "Arrow"
	methodBanded      = "Banded"
	methodGrid2D      = "Grid2D"
	methodRandomSPD   = "RandomSPD"

	minSize = 1
	probMin = 0.0
	probMax = 1.0
)

// Tridiagonal returns the n×n matrix with entries on the main diagonal and
// the two adjacent diagonals.
func Tridiagonal(n int) (*sparse.CSC, error) {
	return Banded(n, 1)
}

// Arrow returns the n×n matrix whose last row and column are dense.
func Arrow(n int) (*sparse.CSC, error) {
	if n < minSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodArrow, n, minSize, ErrTooSmall)
	}
	lower := make([][2]int, 0, n-1)
	for j := 0; j+1 < n; j++ {
		lower = append(lower, [2]int{n - 1, j})
	}

	return assemble(methodArrow, n, lower)
}

// Banded returns the n×n matrix with all entries |i-j| <= bw. bw == 0 gives
// a diagonal matrix.
func Banded(n, bw int) (*sparse.CSC, error) {
	if n < minSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBanded, n, minSize, ErrTooSmall)
	}
	if bw < 0 {
		return nil, fmt.Errorf("%s: bw=%d < 0: %w", methodBanded, bw, ErrTooSmall)
	}
	var lower [][2]int
	for j := 0; j < n; j++ {
		for i := j + 1; i <= j+bw && i < n; i++ {
			lower = append(lower, [2]int{i, j})
		}
	}

	return assemble(methodBanded, n, lower)
}

// Grid2D returns the 5-point Laplacian pattern of a rows×cols grid with
// vertices numbered row-major.
func Grid2D(rows, cols int) (*sparse.CSC, error) {
	if rows < minSize || cols < minSize {
		return nil, fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid2D, rows, cols, minSize, minSize, ErrTooSmall)
	}
	n := rows * cols
	lower := make([][2]int, 0, 2*n)
	for v := 0; v < n; v++ {
		if (v+1)%cols != 0 {
			lower = append(lower, [2]int{v + 1, v})
		}
		if v+cols < n {
			lower = append(lower, [2]int{v + cols, v})
		}
	}

	return assemble(methodGrid2D, n, lower)
}

// RandomSPD returns an n×n matrix where every strictly-lower entry (and its
// mirror) is present independently with probability p. Requires an RNG.
func RandomSPD(n int, p float64, opts ...Option) (*sparse.CSC, error) {
	// 1. Validate before drawing anything.
	if n < minSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSPD, n, minSize, ErrTooSmall)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSPD, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := resolve(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSPD, ErrNeedRandSource)
	}
	// 2. Fixed trial order: columns ascending, rows ascending.
	var lower [][2]int
	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			if cfg.rng.Float64() < p {
				lower = append(lower, [2]int{i, j})
			}
		}
	}

	return assemble(methodRandomSPD, n, lower)
}

// assemble mirrors the strictly-lower entries and adds a dominant diagonal.
func assemble(method string, n int, lower [][2]int) (*sparse.CSC, error) {
	degree := make([]int, n)
	ts := make([]sparse.Triplet, 0, n+2*len(lower))
	for _, e := range lower {
		degree[e[0]]++
		degree[e[1]]++
		ts = append(ts,
			sparse.Triplet{Row: e[0], Col: e[1], Val: -1},
			sparse.Triplet{Row: e[1], Col: e[0], Val: -1})
	}
	for j := 0; j < n; j++ {
		ts = append(ts, sparse.Triplet{Row: j, Col: j, Val: float64(degree[j] + 1)})
	}
	a, err := sparse.FromTriplets(n, n, ts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return a, nil
}
