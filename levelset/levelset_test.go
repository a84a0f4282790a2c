package levelset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/sparse"
)

// randomDAG returns a DAG on n nodes whose edges all point from a smaller
// to a larger id, so it is acyclic by construction.
func randomDAG(t *testing.T, rng *rand.Rand, n int, p float64) *dag.Graph {
	t.Helper()
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	g, err := dag.FromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// randomForest returns parent pointers that always point to a larger id.
func randomForest(rng *rand.Rand, n int) []int {
	parent := make([]int, n)
	for v := range parent {
		if v == n-1 || rng.Intn(5) == 0 {
			parent[v] = -1
			continue
		}
		parent[v] = v + 1 + rng.Intn(n-v-1)
	}

	return parent
}

// TestAlgorithms_Contract runs every general strategy on random DAGs and
// checks they agree with Naive on node2level and pass Verify.
func TestAlgorithms_Contract(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		g := randomDAG(t, rng, 1+rng.Intn(40), 0.1)
		want, err := levelset.Naive.Build(g)
		require.NoError(t, err)
		require.NoError(t, want.Verify(g))

		for _, alg := range []levelset.Algorithm{levelset.Queue, levelset.Compact} {
			got, err := alg.Build(g)
			require.NoError(t, err, alg.Name())
			assert.Equal(t, want.Node2Level(), got.Node2Level(), alg.Name())
			assert.Equal(t, want.Count(), got.Count(), alg.Name())
			assert.Equal(t, want.Ptr(), got.Ptr(), alg.Name())
			assert.ElementsMatch(t, allNodes(g.Len()), got.Set(), alg.Name())
			assert.NoError(t, got.Verify(g), alg.Name())
		}
	}
}

// TestAlgorithms_Cycle expects ErrCycleDetected from every strategy.
func TestAlgorithms_Cycle(t *testing.T) {
	g, err := dag.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	for _, alg := range levelset.All() {
		_, err := alg.Build(g)
		assert.ErrorIs(t, err, levelset.ErrCycleDetected, alg.Name())
	}

	// a self-loop is a cycle as well
	self, err := dag.FromParents([]int{0})
	require.NoError(t, err)
	for _, alg := range levelset.All() {
		_, err := alg.Build(self)
		assert.ErrorIs(t, err, levelset.ErrCycleDetected, alg.Name())
	}
}

// TestAlgorithms_AgreeWithGonumTopo cross-checks acyclicity and order with
// gonum's topological sort.
func TestAlgorithms_AgreeWithGonumTopo(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomDAG(t, rng, 30, 0.15)

	dg := simple.NewDirectedGraph()
	for v := 0; v < g.Len(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dg.SetEdge(dg.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	order, err := topo.Sort(dg)
	require.NoError(t, err)
	require.Len(t, order, g.Len())

	l, err := levelset.Queue.Build(g)
	require.NoError(t, err)
	// the level set order is itself a topological order
	pos := make([]int, g.Len())
	for i, v := range l.Set() {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e[0]], pos[e[1]])
	}

	// adding a back edge makes both sides give up
	dg.SetEdge(dg.NewEdge(simple.Node(g.Len()-1), simple.Node(0)))
	_, err = topo.Sort(dg)
	require.Error(t, err)
}

// TestLevels_Diamond checks a hand-computed schedule.
func TestLevels_Diamond(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3, 3 -> 4, 0 -> 4
	g, err := dag.FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {0, 4}})
	require.NoError(t, err)

	l, err := levelset.Queue.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Count())
	assert.Equal(t, []int{0, 1, 3, 4, 5}, l.Ptr())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.Set())
	assert.Equal(t, []int{0, 1, 1, 2, 3}, l.Node2Level())
	assert.Equal(t, []int{1, 2}, l.Level(1))
	assert.Equal(t, 2, l.MaxWidth())
	assert.InDelta(t, 1.25, l.Parallelism(), 1e-12)
}

// TestLevels_Empty checks the zero-node schedule.
func TestLevels_Empty(t *testing.T) {
	g, err := dag.FromEdges(0, nil)
	require.NoError(t, err)
	for _, alg := range levelset.All() {
		l, err := alg.Build(g)
		require.NoError(t, err, alg.Name())
		assert.Zero(t, l.Count(), alg.Name())
		assert.Zero(t, l.MaxWidth(), alg.Name())
		assert.Zero(t, l.Parallelism(), alg.Name())
	}
}

// TestNewLevels_Validation rejects arrays that are not a partition.
func TestNewLevels_Validation(t *testing.T) {
	_, err := levelset.NewLevels([]int{0, 1, 3}, []int{2, 0, 1})
	require.NoError(t, err)

	bad := []struct {
		name     string
		ptr, set []int
	}{
		{"empty ptr", nil, nil},
		{"short span", []int{0, 1}, []int{0, 1}},
		{"decreasing", []int{0, 2, 1, 2}, []int{0, 1}},
		{"duplicate", []int{0, 1, 2}, []int{0, 0}},
		{"out of range", []int{0, 2}, []int{0, 5}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := levelset.NewLevels(tc.ptr, tc.set)
			assert.ErrorIs(t, err, levelset.ErrMalformed)
		})
	}
}

// TestVerify_Rejects catches both dependency and maximality violations.
func TestVerify_Rejects(t *testing.T) {
	g, err := dag.FromEdges(3, [][2]int{{0, 1}})
	require.NoError(t, err)

	// 1 placed together with its predecessor
	l, err := levelset.NewLevels([]int{0, 3}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, l.Verify(g), levelset.ErrInvalidSchedule)

	// 2 has no predecessor but waits for level 1
	l, err = levelset.NewLevels([]int{0, 1, 3}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, l.Verify(g), levelset.ErrInvalidSchedule)

	// correct
	l, err = levelset.NewLevels([]int{0, 2, 3}, []int{0, 2, 1})
	require.NoError(t, err)
	assert.NoError(t, l.Verify(g))

	// size mismatch
	l, err = levelset.NewLevels([]int{0, 1}, []int{0})
	require.NoError(t, err)
	assert.ErrorIs(t, l.Verify(g), levelset.ErrInvalidSchedule)
}

// TestTree_MatchesGeneralStrategies compares BuildTree with Queue on the
// child→parent graph of random forests.
func TestTree_MatchesGeneralStrategies(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		parent := randomForest(rng, 1+rng.Intn(50))
		g, err := dag.FromParents(parent)
		require.NoError(t, err)

		want, err := levelset.Queue.Build(g)
		require.NoError(t, err)

		got, err := levelset.BuildTree(parent)
		require.NoError(t, err)
		assert.Equal(t, want.Node2Level(), got.Node2Level())
		assert.NoError(t, got.Verify(g))

		viaAlg, err := levelset.Tree.Build(g)
		require.NoError(t, err)
		assert.Equal(t, want.Node2Level(), viaAlg.Node2Level())
	}
}

// TestBuildTree_Errors covers malformed parents and cycles.
func TestBuildTree_Errors(t *testing.T) {
	_, err := levelset.BuildTree([]int{1, 5})
	assert.ErrorIs(t, err, levelset.ErrMalformed)

	_, err = levelset.BuildTree([]int{1, 0, -1})
	assert.ErrorIs(t, err, levelset.ErrCycleDetected)

	// two successors
	g, err := dag.FromEdges(3, [][2]int{{0, 1}, {0, 2}})
	require.NoError(t, err)
	_, err = levelset.Tree.Build(g)
	assert.ErrorIs(t, err, levelset.ErrNotForest)

	// a back edge 1 -> 0 gives node 1 two successors and closes a cycle
	g, err = dag.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {1, 0}})
	require.NoError(t, err)
	_, err = levelset.Tree.Build(g)
	assert.ErrorIs(t, err, levelset.ErrCycleDetected)
	assert.NotErrorIs(t, err, levelset.ErrNotForest)
}

// TestBuildTreeCounted uses precomputed child counts.
func TestBuildTreeCounted(t *testing.T) {
	parent := []int{2, 2, 4, 4, -1}
	nChild := []int{0, 0, 2, 0, 2}
	l, err := levelset.BuildTreeCounted(parent, nChild)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 0, 2}, l.Node2Level())
	assert.Equal(t, []int{0, 0, 2, 0, 2}, nChild, "input must not change")

	// counts too low: node 2 is released a third time
	_, err = levelset.BuildTreeCounted(parent, []int{0, 0, 1, 0, 2})
	assert.ErrorIs(t, err, levelset.ErrMalformed)

	// counts too high: node 4 never becomes ready
	_, err = levelset.BuildTreeCounted(parent, []int{0, 0, 2, 0, 3})
	assert.ErrorIs(t, err, levelset.ErrCycleDetected)

	_, err = levelset.BuildTreeCounted(parent, []int{0})
	assert.ErrorIs(t, err, levelset.ErrMalformed)
}

// TestByName resolves every registered strategy.
func TestByName(t *testing.T) {
	for _, alg := range levelset.All() {
		got, err := levelset.ByName(alg.Name())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	_, err := levelset.ByName("behrooz")
	assert.ErrorIs(t, err, levelset.ErrUnknownAlgorithm)
	assert.Equal(t, levelset.Queue, levelset.Default)
}

// TestTimed reports elapsed time alongside the schedule.
func TestTimed(t *testing.T) {
	g, err := dag.FromEdges(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	l, d, err := levelset.Timed(levelset.Compact, g)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Count())
	assert.GreaterOrEqual(t, int64(d), int64(0))
}

// TestMultiGraph checks level(t*n+v) == level(v) + t.
func TestMultiGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := randomDAG(t, rng, 12, 0.2)
	base, err := levelset.Queue.Build(g)
	require.NoError(t, err)

	const nKern = 3
	l, err := levelset.MultiGraph(g, nKern, nil)
	require.NoError(t, err)
	require.Equal(t, nKern*g.Len(), l.Len())
	for k := 0; k < nKern; k++ {
		for v := 0; v < g.Len(); v++ {
			assert.Equal(t, base.Of(v)+k, l.Of(k*g.Len()+v))
		}
	}

	_, err = levelset.MultiGraph(g, 0, levelset.Naive)
	assert.ErrorIs(t, err, dag.ErrBadParameter)
}

// TestDepth checks longest paths to a sink.
func TestDepth(t *testing.T) {
	g, err := dag.FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {0, 4}})
	require.NoError(t, err)
	d, err := levelset.Depth(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2, 1, 0}, d)

	cyc, err := dag.FromEdges(2, [][2]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	_, err = levelset.Depth(cyc)
	assert.ErrorIs(t, err, levelset.ErrCycleDetected)
}

// blocked returns a 4-column BCSC with blocks {0,1}, {2}, {3}:
//
//	block 0 rows {0,1,3}, block 1 rows {2,3}, block 2 rows {3}
func blocked(t *testing.T) *sparse.BCSC {
	t.Helper()
	b, err := sparse.NewBCSC(
		[]int{0, 3, 6, 8, 9},
		[]int{0, 3, 5, 6},
		[]int{0, 1, 3, 2, 3, 3},
		[]int{0, 2, 3, 4},
		nil)
	require.NoError(t, err)

	return b
}

// TestBuildBCSC levels supernodes and expands to columns.
func TestBuildBCSC(t *testing.T) {
	bl, err := levelset.BuildBCSC(blocked(t), nil)
	require.NoError(t, err)

	// blocks 0 and 1 are independent, both feed block 2
	assert.Equal(t, []int{0, 0, 1}, bl.Supernodes.Node2Level())
	assert.Equal(t, []int{0, 2, 3}, bl.Supernodes.Ptr())
	assert.Equal(t, []int{0, 0, 0, 1}, bl.Columns.Node2Level())
	assert.Equal(t, []int{0, 3, 4}, bl.Columns.Ptr())
	assert.Equal(t, []int{0, 1, 2, 3}, bl.Columns.Set())
}

// TestExpand_Errors rejects boundaries that do not fit the schedule.
func TestExpand_Errors(t *testing.T) {
	sup, err := levelset.NewLevels([]int{0, 2}, []int{1, 0})
	require.NoError(t, err)

	cols, err := levelset.Expand(sup, []int{0, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 0, 1, 2}, cols.Set())

	_, err = levelset.Expand(sup, []int{0, 3})
	assert.ErrorIs(t, err, levelset.ErrMalformed)
	_, err = levelset.Expand(sup, []int{0, 3, 3})
	assert.ErrorIs(t, err, levelset.ErrMalformed)
	_, err = levelset.Expand(sup, []int{1, 3, 4})
	assert.ErrorIs(t, err, levelset.ErrMalformed)
}

func allNodes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
