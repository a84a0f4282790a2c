// SPDX-License-Identifier: MIT

package inspect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/etree"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/sparse"
	"github.com/katalvlaran/symbolic/supernode"
)

// Stage names, also used as metric labels.
const (
	StageDAG        = "dag"
	StageGrouped    = "grouped"
	StageETree      = "etree"
	StageFactor     = "factor"
	StageSupernodes = "supernodes"
)

// runner carries one Run's state between stages.
type runner struct {
	opts   options
	m      *metrics
	report *Report
}

// Run analyzes the symmetric matrix a (full pattern, or at least its lower
// triangle for the DAG stages and upper triangle for the tree stages; a full
// pattern serves both) and returns the report.
//
// ctx is checked before every stage; a cancelled context aborts with its
// error wrapped. Analysis errors are wrapped with the stage name.
func Run(ctx context.Context, a *sparse.CSC, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("Run: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if a.Cols() == 0 {
		return nil, fmt.Errorf("Run: %w", ErrEmpty)
	}

	r := &runner{
		opts: o,
		m:    newMetrics(o.registerer),
		report: &Report{
			ID:        uuid.New().String(),
			Algorithm: o.alg.Name(),
			N:         a.Cols(),
			NNZ:       a.NNZ(),
		},
	}
	o.logger.Debug("inspect start", "id", r.report.ID, "n", r.report.N, "nnz", r.report.NNZ, "algorithm", r.report.Algorithm)

	lower := a.Lower().ToCSR()
	var l *sparse.CSC
	stages := []struct {
		name string
		fn   func() error
	}{
		{StageDAG, func() error { return r.dagStage(lower) }},
		{StageGrouped, func() error { return r.groupedStage(lower) }},
		{StageETree, func() error { return r.treeStage(a) }},
		{StageFactor, func() (err error) {
			l, err = r.factorStage(a)
			return err
		}},
		{StageSupernodes, func() error { return r.supernodeStage(l) }},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Run: before %s: %w", st.name, err)
		}
		start := time.Now()
		if err := st.fn(); err != nil {
			return nil, fmt.Errorf("Run: %s: %w", st.name, err)
		}
		d := time.Since(start)
		r.report.Stages = append(r.report.Stages, Stage{Name: st.name, Duration: d})
		r.m.observeStage(st.name, d)
		o.logger.Debug("stage done", "stage", st.name, "duration", d)
	}
	o.logger.Debug("inspect done", "id", r.report.ID, "levels", r.report.DAG.Levels, "supernodes", r.report.Supernodes.Count)

	return r.report, nil
}

func (r *runner) dagStage(lower *sparse.CSR) error {
	g, _, err := dag.FromCSR(lower)
	if err != nil {
		return err
	}
	lv, err := r.opts.alg.Build(g)
	if err != nil {
		return err
	}
	depth, err := levelset.Depth(g)
	if err != nil {
		return err
	}
	r.report.Graph, r.report.Levels = g, lv
	r.report.DAG = scheduleOf(g, lv, depth)
	r.m.setLevels(StageDAG, lv.Count())

	return nil
}

func (r *runner) groupedStage(lower *sparse.CSR) error {
	gr, _, err := dag.FromCSRGrouped(lower, dag.WithMaxGroupSize(r.opts.maxGroupSize))
	if err != nil {
		return err
	}
	lv, err := r.opts.alg.Build(gr.Graph)
	if err != nil {
		return err
	}
	depth, err := levelset.Depth(gr.Graph)
	if err != nil {
		return err
	}
	r.report.Grouped = GroupedStats{Groups: gr.Groups.Len(), Schedule: scheduleOf(gr.Graph, lv, depth)}
	r.m.setLevels(StageGrouped, lv.Count())

	return nil
}

func (r *runner) treeStage(a *sparse.CSC) error {
	parent, err := etree.Compute(a)
	if err != nil {
		return err
	}
	post, err := etree.Postorder(parent)
	if err != nil {
		return err
	}
	// child counts fall out of the postorder walk
	nChild := make([]int, len(parent))
	roots := 0
	for _, v := range post {
		if p := parent[v]; p == etree.None {
			roots++
		} else {
			nChild[p]++
		}
	}
	lv, err := levelset.BuildTreeCounted(parent, nChild)
	if err != nil {
		return err
	}
	r.report.Parent = parent
	r.report.Tree = TreeStats{Roots: roots, Height: lv.Count()}
	r.m.setLevels(StageETree, lv.Count())

	return nil
}

func (r *runner) factorStage(a *sparse.CSC) (*sparse.CSC, error) {
	l, err := etree.SymbolicFactor(a, r.report.Parent)
	if err != nil {
		return nil, err
	}
	lowerNNZ := a.Lower().NNZ()
	r.report.Factor = FactorStats{NNZ: l.NNZ(), Fill: l.NNZ() - lowerNNZ}

	return l, nil
}

func (r *runner) supernodeStage(l *sparse.CSC) error {
	var opts []supernode.Option
	if r.opts.maxSuper > 0 {
		opts = append(opts, supernode.WithMaxSize(r.opts.maxSuper))
	}
	b, err := supernode.Block(l, opts...)
	if err != nil {
		return err
	}
	bl, err := levelset.BuildBCSC(b.BCSC, r.opts.alg)
	if err != nil {
		return err
	}
	width := 0
	for s := 0; s < b.NSuper(); s++ {
		if lo, hi := b.Columns(s); hi-lo > width {
			width = hi - lo
		}
	}
	r.report.Blocked = b
	r.report.Supernodes = SupernodeStats{
		Count:        b.NSuper(),
		MaxWidth:     width,
		BlockedNNZ:   b.NNZ(),
		Levels:       bl.Supernodes.Count(),
		ColumnLevels: bl.Columns.Count(),
	}
	r.m.setLevels(StageSupernodes, bl.Supernodes.Count())
	r.m.setFactor(r.report.Factor.NNZ, b.NSuper())

	return nil
}
