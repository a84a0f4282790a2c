package supernode_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/sparse"
	"github.com/katalvlaran/symbolic/supernode"
)

// arrowL is the factor of a 5×5 arrow matrix: columns {j, 4} and {4},
// values 1..9 in storage order.
func arrowL(t *testing.T) *sparse.CSC {
	t.Helper()
	l, err := sparse.NewCSC(5, 5,
		[]int{0, 2, 4, 6, 8, 9},
		[]int{0, 4, 1, 4, 2, 4, 3, 4, 4},
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	return l
}

// denseL is a fully dense 5×5 lower-triangular pattern.
func denseL(t *testing.T) *sparse.CSC {
	t.Helper()
	l, err := sparse.NewCSC(5, 5,
		[]int{0, 5, 9, 12, 14, 15},
		[]int{0, 1, 2, 3, 4, 1, 2, 3, 4, 2, 3, 4, 3, 4, 4},
		nil)
	require.NoError(t, err)

	return l
}

func identity(t *testing.T, n int) *sparse.CSC {
	t.Helper()
	ptr := make([]int, n+1)
	idx := make([]int, n)
	for j := 0; j < n; j++ {
		ptr[j+1] = j + 1
		idx[j] = j
	}
	a, err := sparse.NewCSC(n, n, ptr, idx, nil)
	require.NoError(t, err)

	return a
}

// TestFind covers hits, misses and range limits.
func TestFind(t *testing.T) {
	sup := []int{0, 2, 3, 7}
	assert.Equal(t, 0, supernode.Find(sup, 0, 3, 0))
	assert.Equal(t, 0, supernode.Find(sup, 0, 3, 1))
	assert.Equal(t, 1, supernode.Find(sup, 0, 3, 2))
	assert.Equal(t, 2, supernode.Find(sup, 0, 3, 6))
	assert.Equal(t, -1, supernode.Find(sup, 0, 3, 7))
	assert.Equal(t, -1, supernode.Find(sup, 1, 3, 1))
	assert.Equal(t, 2, supernode.Find(sup, 2, 3, 3))
	assert.Equal(t, -1, supernode.Find(sup, 0, 4, 1))
	assert.Equal(t, -1, supernode.Find(sup, 2, 2, 3))
}

// TestSup2Node_RoundTrip: Find recovers Sup2Node for random partitions.
func TestSup2Node_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(60)
		sup := []int{0}
		for v := 1; v < n; v++ {
			if rng.Intn(3) == 0 {
				sup = append(sup, v)
			}
		}
		sup = append(sup, n)

		of, err := supernode.Sup2Node(n, sup)
		require.NoError(t, err)
		for v := 0; v < n; v++ {
			assert.Equal(t, of[v], supernode.Find(sup, 0, len(sup)-1, v))
		}
	}
}

// TestSup2Node_Malformed rejects boundaries that are not a partition.
func TestSup2Node_Malformed(t *testing.T) {
	for _, sup := range [][]int{nil, {1, 5}, {0, 4}, {0, 2, 2, 5}, {0, 3, 2, 5}} {
		_, err := supernode.Sup2Node(5, sup)
		assert.ErrorIs(t, err, supernode.ErrMalformed, "%v", sup)
	}
}

// TestDetect finds fundamental supernodes and honours the size cap.
func TestDetect(t *testing.T) {
	sup, err := supernode.Detect(arrowL(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 5}, sup)

	sup, err = supernode.Detect(denseL(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5}, sup)

	sup, err = supernode.Detect(denseL(t), supernode.WithMaxSize(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 5}, sup)

	noDiag, err := sparse.NewCSC(2, 2, []int{0, 1, 1}, []int{1}, nil)
	require.NoError(t, err)
	_, err = supernode.Detect(noDiag)
	assert.ErrorIs(t, err, supernode.ErrMalformed)

	assert.Panics(t, func() { supernode.WithMaxSize(0) })
}

// TestBlock checks layout, dense panels and gonum views.
func TestBlock(t *testing.T) {
	b, err := supernode.Block(arrowL(t))
	require.NoError(t, err)

	assert.Equal(t, 4, b.NSuper())
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, b.Ptr)
	assert.Equal(t, []int{0, 4, 1, 4, 2, 4, 3, 4}, b.RowIdx)
	assert.Equal(t, []int{0, 1, 2, 3, 5}, b.Sup2Col)
	assert.Equal(t, []int{0, 1, 2, 3, 3}, b.Col2Sup)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 0, 9}, b.Values)

	v, err := b.View(3)
	require.NoError(t, err)
	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.True(t, mat.Equal(v, mat.NewDense(2, 2, []float64{7, 0, 8, 9})))

	v, err = b.View(0)
	require.NoError(t, err)
	assert.True(t, mat.Equal(v, mat.NewDense(2, 1, []float64{1, 2})))

	_, err = b.View(4)
	assert.ErrorIs(t, err, supernode.ErrOutOfRange)
}

// TestBlockWith_PatternOnly blocks a dense pattern with a fixed partition.
func TestBlockWith_PatternOnly(t *testing.T) {
	b, err := supernode.BlockWith(denseL(t), []int{0, 2, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1}, []int{b.NRows(0), b.NRows(1), b.NRows(2)})
	assert.Equal(t, 17, b.NNZ())
	assert.Nil(t, b.Values)

	_, err = b.View(1)
	assert.ErrorIs(t, err, supernode.ErrNoValues)

	_, err = supernode.BlockWith(denseL(t), []int{0, 6})
	assert.ErrorIs(t, err, supernode.ErrMalformed)
}

// TestBlock_ColumnLevelsRespectL schedules the blocked factor and checks
// every cross-block dependency of L.
func TestBlock_ColumnLevelsRespectL(t *testing.T) {
	l := arrowL(t)
	b, err := supernode.Block(l)
	require.NoError(t, err)
	bl, err := levelset.BuildBCSC(b.BCSC, nil)
	require.NoError(t, err)

	cols := bl.Columns
	for j := 0; j < l.Cols(); j++ {
		for _, i := range l.Range(j) {
			if i > j && b.Col2Sup[i] != b.Col2Sup[j] {
				assert.Less(t, cols.Of(j), cols.Of(i), "L(%d,%d)", i, j)
			}
		}
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1}, cols.Node2Level())
}

// TestLevelSetBN schedules supernodes in both directions and for chained
// kernels.
func TestLevelSetBN(t *testing.T) {
	l := arrowL(t)
	sup := []int{0, 1, 2, 3, 5}

	lo, err := supernode.LevelSetBN(l, sup, 1, dag.Lower, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1}, lo.Node2Level())

	up, err := supernode.LevelSetBN(l.Transpose(), sup, 1, dag.Upper, levelset.Compact)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 0}, up.Node2Level())

	two, err := supernode.LevelSetBN(l, sup, 2, dag.Lower, levelset.Naive)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 1, 2}, two.Node2Level())

	_, err = supernode.LevelSetBN(l, []int{0, 5, 4}, 1, dag.Lower, nil)
	assert.ErrorIs(t, err, supernode.ErrMalformed)
}

// TestMergeGraphs builds the fused graph of L, I, L.
func TestMergeGraphs(t *testing.T) {
	b, err := supernode.Block(arrowL(t))
	require.NoError(t, err)

	f, err := supernode.MergeGraphs(b.BCSC, identity(t, 5), b.BCSC)
	require.NoError(t, err)
	assert.Equal(t, 12, f.Cols())
	assert.Equal(t, []int{0, 3, 4}, f.Range(0))
	assert.Equal(t, []int{3, 7}, f.Range(3))
	assert.Equal(t, []int{7, 11}, f.Range(7))
	assert.Equal(t, []int{8, 11}, f.Range(8))
	assert.Equal(t, []int{11}, f.Range(11))

	g, err := dag.FromCSC(f, dag.Lower)
	require.NoError(t, err)
	lv, err := levelset.Queue.Build(g)
	require.NoError(t, err)
	want := []int{0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3}
	assert.Equal(t, want, lv.Node2Level())

	// the same fusion from plain column storage
	fl, err := supernode.FusedLevels(arrowL(t), identity(t, 5), arrowL(t), b.Sup2Col, nil)
	require.NoError(t, err)
	assert.Equal(t, want, fl.Node2Level())
}

// TestMergeGraphs_Mismatch rejects partitions and shapes that differ.
func TestMergeGraphs_Mismatch(t *testing.T) {
	a, err := supernode.Block(arrowL(t))
	require.NoError(t, err)
	c, err := supernode.BlockWith(arrowL(t), []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	_, err = supernode.MergeGraphs(a.BCSC, identity(t, 5), c.BCSC)
	assert.ErrorIs(t, err, supernode.ErrDimensionMismatch)

	_, err = supernode.MergeGraphs(a.BCSC, identity(t, 4), a.BCSC)
	assert.ErrorIs(t, err, supernode.ErrDimensionMismatch)

	_, err = supernode.FusedLevels(arrowL(t), identity(t, 4), arrowL(t), a.Sup2Col, nil)
	assert.ErrorIs(t, err, supernode.ErrDimensionMismatch)
}
