// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/symbolic/gen"
	"github.com/katalvlaran/symbolic/sparse"
)

const (
	kindTridiagonal = "tridiagonal"
	kindArrow       = "arrow"
	kindBanded      = "banded"
	kindGrid        = "grid"
	kindRandom      = "random"
	kindFile        = "file"
)

// buildMatrix produces the pattern described by cfg.
func buildMatrix(cfg MatrixConfig) (*sparse.CSC, error) {
	switch cfg.Kind {
	case kindTridiagonal:
		return gen.Tridiagonal(cfg.N)
	case kindArrow:
		return gen.Arrow(cfg.N)
	case kindBanded:
		return gen.Banded(cfg.N, cfg.Bandwidth)
	case kindGrid:
		return gen.Grid2D(cfg.Rows, cfg.Cols)
	case kindRandom:
		return gen.RandomSPD(cfg.N, cfg.Density, gen.WithSeed(cfg.Seed))
	case kindFile:
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open matrix: %w", err)
		}
		defer f.Close()
		return readMatrixMarket(f)
	default:
		return nil, fmt.Errorf("unknown matrix kind %q", cfg.Kind)
	}
}

// readMatrixMarket reads a coordinate Matrix Market file. Symmetric files
// are mirrored; pattern files get unit values. Indices are 1-based.
func readMatrixMarket(r io.Reader) (*sparse.CSC, error) {
	sc := bufio.NewScanner(r)
	// 1. Banner.
	if !sc.Scan() {
		return nil, fmt.Errorf("matrix market: empty input")
	}
	banner := strings.Fields(strings.ToLower(sc.Text()))
	if len(banner) < 5 || banner[0] != "%%matrixmarket" || banner[1] != "matrix" || banner[2] != "coordinate" {
		return nil, fmt.Errorf("matrix market: unsupported banner %q", sc.Text())
	}
	pattern := banner[3] == "pattern"
	symmetric := banner[4] == "symmetric"
	// 2. Size line after comments.
	var rows, cols, nnz int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if _, err := fmt.Sscan(line, &rows, &cols, &nnz); err != nil {
			return nil, fmt.Errorf("matrix market: size line %q: %w", line, err)
		}
		break
	}
	// 3. Entries.
	ts := make([]sparse.Triplet, 0, 2*nnz)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "%") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("matrix market: entry %q", sc.Text())
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("matrix market: row %q: %w", fields[0], err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("matrix market: column %q: %w", fields[1], err)
		}
		v := 1.0
		if !pattern && len(fields) > 2 {
			if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("matrix market: value %q: %w", fields[2], err)
			}
		}
		ts = append(ts, sparse.Triplet{Row: i - 1, Col: j - 1, Val: v})
		if symmetric && i != j {
			ts = append(ts, sparse.Triplet{Row: j - 1, Col: i - 1, Val: v})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix market: %w", err)
	}

	return sparse.FromTriplets(rows, cols, ts)
}
