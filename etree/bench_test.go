package etree_test

import (
	"testing"

	"github.com/katalvlaran/symbolic/etree"
	"github.com/katalvlaran/symbolic/sparse"
)

// grid5 assembles the 5-point Laplacian pattern of a side×side grid.
func grid5(b *testing.B, side int) *sparse.CSC {
	b.Helper()
	n := side * side
	ts := make([]sparse.Triplet, 0, 5*n)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			ts = append(ts, sparse.Triplet{Row: v, Col: v, Val: 4})
			if c+1 < side {
				ts = append(ts, sparse.Triplet{Row: v + 1, Col: v, Val: -1}, sparse.Triplet{Row: v, Col: v + 1, Val: -1})
			}
			if r+1 < side {
				ts = append(ts, sparse.Triplet{Row: v + side, Col: v, Val: -1}, sparse.Triplet{Row: v, Col: v + side, Val: -1})
			}
		}
	}
	a, err := sparse.FromTriplets(n, n, ts)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

// BenchmarkCompute_Grid measures tree construction on a 100×100 grid.
func BenchmarkCompute_Grid(b *testing.B) {
	a := grid5(b, 100)
	b.ReportAllocs()
	b.SetBytes(int64(a.NNZ()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = etree.Compute(a)
	}
}

// BenchmarkSymbolicFactor_Grid measures the full L pattern of a 50×50 grid.
func BenchmarkSymbolicFactor_Grid(b *testing.B) {
	a := grid5(b, 50)
	parent, err := etree.Compute(a)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = etree.SymbolicFactor(a, parent)
	}
}
