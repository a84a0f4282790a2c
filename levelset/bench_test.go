package levelset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
)

// banded returns the DAG of a lower-banded matrix: node v depends on the
// bw nodes before it.
func banded(b *testing.B, n, bw int) *dag.Graph {
	b.Helper()
	edges := make([][2]int, 0, n*bw)
	for v := 0; v < n; v++ {
		for k := 1; k <= bw && v-k >= 0; k++ {
			edges = append(edges, [2]int{v - k, v})
		}
	}
	g, err := dag.FromEdges(n, edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkAlgorithms_Banded compares the general strategies on a deep DAG.
func BenchmarkAlgorithms_Banded(b *testing.B) {
	g := banded(b, 5000, 4)
	for _, alg := range []levelset.Algorithm{levelset.Naive, levelset.Queue, levelset.Compact} {
		b.Run(alg.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.Len() + g.EdgeCount()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = alg.Build(g)
			}
		})
	}
}

// BenchmarkBuildTree_Random levels a random forest of 100k nodes.
func BenchmarkBuildTree_Random(b *testing.B) {
	const n = 100000
	rng := rand.New(rand.NewSource(1))
	parent := randomForest(rng, n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = levelset.BuildTree(parent)
	}
}
