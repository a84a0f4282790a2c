package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symbolic/sparse"
)

// TestNewPattern_Malformed covers every invariant NewPattern enforces.
func TestNewPattern_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		minor int
		ptr   []int
		idx   []int
	}{
		{"empty ptr", 3, nil, nil},
		{"ptr[0] not zero", 3, []int{1, 1}, []int{0}},
		{"decreasing ptr", 3, []int{0, 2, 1}, []int{0, 1}},
		{"ptr[n] != nnz", 3, []int{0, 1, 3}, []int{0, 1}},
		{"index too large", 3, []int{0, 1}, []int{3}},
		{"negative index", 3, []int{0, 1}, []int{-1}},
		{"negative minor", -1, []int{0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := sparse.NewPattern(tc.minor, tc.ptr, tc.idx)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, sparse.ErrMalformed)
		})
	}
}

// TestPattern_Accessors checks range views on a small pattern.
func TestPattern_Accessors(t *testing.T) {
	p, err := sparse.NewPattern(4, []int{0, 2, 2, 5}, []int{3, 1, 2, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 4, p.Minor())
	assert.Equal(t, 5, p.NNZ())
	assert.Equal(t, []int{3, 1}, p.Range(0))
	assert.Empty(t, p.Range(1))
	assert.Equal(t, 3, p.Degree(2))
	lo, hi := p.Span(2)
	assert.Equal(t, [2]int{2, 5}, [2]int{lo, hi})
	assert.True(t, p.Contains(2, 0))
	assert.False(t, p.Contains(1, 0))

	s := p.Sorted()
	assert.Equal(t, []int{1, 3}, s.Range(0))
	assert.Equal(t, []int{3, 1}, p.Range(0), "Sorted must not touch the receiver")
}

// TestPattern_Transpose verifies that a double transpose sorts every range.
func TestPattern_Transpose(t *testing.T) {
	p, err := sparse.NewPattern(3, []int{0, 2, 3}, []int{2, 0, 1})
	require.NoError(t, err)

	tp := p.Transpose()
	assert.Equal(t, 3, tp.Len())
	assert.Equal(t, 2, tp.Minor())
	assert.Equal(t, []int{0}, tp.Range(0))
	assert.Equal(t, []int{1}, tp.Range(1))
	assert.Equal(t, []int{0}, tp.Range(2))

	back := tp.Transpose()
	assert.Equal(t, []int{0, 2}, back.Range(0))
	assert.Equal(t, []int{1}, back.Range(1))
}

// TestCSC_Conversions round-trips values through CSR and checks triangles.
func TestCSC_Conversions(t *testing.T) {
	// [ 4 1 0 ]
	// [ 1 5 2 ]
	// [ 0 2 6 ]
	a, err := sparse.FromTriplets(3, 3, []sparse.Triplet{
		{0, 0, 4}, {1, 0, 1}, {0, 1, 1}, {1, 1, 5}, {2, 1, 2}, {1, 2, 2}, {2, 2, 3}, {2, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, a.NNZ(), "duplicates are summed")
	assert.Equal(t, []float64{2, 6}, a.ColValues(2))

	r := a.ToCSR()
	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, []int{0, 1, 2}, r.Range(1))
	assert.Equal(t, []float64{1, 5, 2}, r.Values[r.Ptr()[1]:r.Ptr()[2]])

	back := r.ToCSC()
	assert.Equal(t, a.Ptr(), back.Ptr())
	assert.Equal(t, a.Idx(), back.Idx())
	assert.Equal(t, a.Values, back.Values)

	lo := a.Lower()
	assert.Equal(t, []int{0, 1}, lo.Range(0))
	assert.Equal(t, []int{1, 2}, lo.Range(1))
	assert.Equal(t, []int{2}, lo.Range(2))

	up := a.Upper()
	assert.Equal(t, []int{0}, up.Range(0))
	assert.Equal(t, []int{1, 2}, up.Range(2))

	rl := r.Lower()
	assert.Equal(t, []int{0, 1}, rl.Range(1))
}

// TestNewCSC_Errors checks dimension validation of the matrix constructors.
func TestNewCSC_Errors(t *testing.T) {
	_, err := sparse.NewCSC(2, 2, []int{0, 1}, []int{0}, nil)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.NewCSC(2, 1, []int{0, 1}, []int{0}, []float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.NewCSR(1, 2, []int{0, 1}, []int{5}, nil)
	assert.ErrorIs(t, err, sparse.ErrMalformed)

	_, err = sparse.FromTriplets(2, 2, []sparse.Triplet{{Row: 2, Col: 0}})
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestBCSC_CompressAndValidate builds a two-block matrix by hand.
//
//	block 0: columns {0,1}, rows {0,1,3}
//	block 1: column  {2},   rows {2,3}
//	block 2: column  {3},   rows {3}
func TestBCSC_CompressAndValidate(t *testing.T) {
	b, err := sparse.NewBCSC(
		[]int{0, 3, 6, 8, 9},
		[]int{0, 3, 5, 6},
		[]int{0, 1, 3, 2, 3, 3},
		[]int{0, 2, 3, 4},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, 4, b.N())
	assert.Equal(t, 3, b.NSuper())
	assert.Equal(t, []int{0, 0, 1, 2}, b.Col2Sup)
	assert.Equal(t, 3, b.NRows(0))
	assert.Equal(t, 9, b.NNZ())

	c := b.Compress()
	assert.Equal(t, 3, c.Cols())
	assert.Equal(t, []int{0, 2}, c.Range(0))
	assert.Equal(t, []int{1, 2}, c.Range(1))
	assert.Equal(t, []int{2}, c.Range(2))

	// column 1 stores 2 values but block 0 has 3 rows
	_, err = sparse.NewBCSC([]int{0, 3, 5, 7, 8}, []int{0, 3, 5, 6}, []int{0, 1, 3, 2, 3, 3}, []int{0, 2, 3, 4}, nil)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	// block 1 row list does not start with its own column
	_, err = sparse.NewBCSC([]int{0, 3, 6, 8, 9}, []int{0, 3, 5, 6}, []int{0, 1, 3, 3, 2, 3}, []int{0, 2, 3, 4}, nil)
	assert.ErrorIs(t, err, sparse.ErrMalformed)
}
