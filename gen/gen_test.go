package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symbolic/etree"
	"github.com/katalvlaran/symbolic/gen"
	"github.com/katalvlaran/symbolic/sparse"
)

// requireSymmetric checks pattern and values are mirrored.
func requireSymmetric(t *testing.T, a *sparse.CSC) {
	t.Helper()
	at := a.Transpose()
	require.Equal(t, a.Ptr(), at.Ptr())
	require.Equal(t, a.Idx(), at.Idx())
	require.Equal(t, a.Values, at.Values)
}

// TestShapes checks sizes and nonzero counts of the deterministic generators.
func TestShapes(t *testing.T) {
	tri, err := gen.Tridiagonal(5)
	require.NoError(t, err)
	assert.Equal(t, 13, tri.NNZ())
	requireSymmetric(t, tri)

	arrow, err := gen.Arrow(5)
	require.NoError(t, err)
	assert.Equal(t, 13, arrow.NNZ())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, arrow.Range(4))
	assert.Equal(t, []float64{5}, arrow.ColValues(4)[4:])
	requireSymmetric(t, arrow)

	band, err := gen.Banded(6, 2)
	require.NoError(t, err)
	assert.Equal(t, 6+2*(5+4), band.NNZ())
	requireSymmetric(t, band)

	diag, err := gen.Banded(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, diag.NNZ())

	grid, err := gen.Grid2D(3, 4)
	require.NoError(t, err)
	// 12 diagonal + 2*(horizontal 9 + vertical 8)
	assert.Equal(t, 12+2*17, grid.NNZ())
	assert.Equal(t, []int{0, 1, 4}, grid.Range(0))
	requireSymmetric(t, grid)
}

// TestKnownTrees ties generators to their textbook elimination trees.
func TestKnownTrees(t *testing.T) {
	tri, err := gen.Tridiagonal(5)
	require.NoError(t, err)
	parent, err := etree.Compute(tri)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, etree.None}, parent)

	arrow, err := gen.Arrow(5)
	require.NoError(t, err)
	parent, err = etree.Compute(arrow)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4, 4, etree.None}, parent)
}

// TestRandomSPD covers determinism, density limits and validation.
func TestRandomSPD(t *testing.T) {
	a, err := gen.RandomSPD(30, 0.2, gen.WithSeed(42))
	require.NoError(t, err)
	b, err := gen.RandomSPD(30, 0.2, gen.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Idx(), b.Idx())
	requireSymmetric(t, a)

	full, err := gen.RandomSPD(4, 1, gen.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Equal(t, 16, full.NNZ())

	empty, err := gen.RandomSPD(4, 0, gen.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 4, empty.NNZ())

	_, err = gen.RandomSPD(4, 0.5)
	assert.ErrorIs(t, err, gen.ErrNeedRandSource)
	_, err = gen.RandomSPD(4, 1.5, gen.WithSeed(1))
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)
	_, err = gen.RandomSPD(0, 0.5, gen.WithSeed(1))
	assert.ErrorIs(t, err, gen.ErrTooSmall)
}

// TestValidation rejects sizes below the minimum.
func TestValidation(t *testing.T) {
	_, err := gen.Tridiagonal(0)
	assert.ErrorIs(t, err, gen.ErrTooSmall)
	_, err = gen.Arrow(-1)
	assert.ErrorIs(t, err, gen.ErrTooSmall)
	_, err = gen.Banded(3, -1)
	assert.ErrorIs(t, err, gen.ErrTooSmall)
	_, err = gen.Grid2D(0, 3)
	assert.ErrorIs(t, err, gen.ErrTooSmall)
	assert.Panics(t, func() { gen.WithRand(nil) })
}
