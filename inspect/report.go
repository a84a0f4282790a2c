// SPDX-License-Identifier: MIT

package inspect

import (
	"time"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/supernode"
)

// Report summarizes one Run. Exported artifacts tagged "-" are kept for
// callers that render or reuse them; they are not serialized.
type Report struct {
	ID        string `json:"id" yaml:"id"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	N         int    `json:"n" yaml:"n"`
	NNZ       int    `json:"nnz" yaml:"nnz"`

	DAG        Schedule       `json:"dag" yaml:"dag"`
	Grouped    GroupedStats   `json:"grouped" yaml:"grouped"`
	Tree       TreeStats      `json:"etree" yaml:"etree"`
	Factor     FactorStats    `json:"factor" yaml:"factor"`
	Supernodes SupernodeStats `json:"supernodes" yaml:"supernodes"`
	Stages     []Stage        `json:"stages" yaml:"stages"`

	Graph   *dag.Graph         `json:"-" yaml:"-"`
	Levels  *levelset.Levels   `json:"-" yaml:"-"`
	Parent  []int              `json:"-" yaml:"-"`
	Blocked *supernode.Blocked `json:"-" yaml:"-"`
}

// Schedule describes one level partition.
type Schedule struct {
	Nodes        int     `json:"nodes" yaml:"nodes"`
	Edges        int     `json:"edges" yaml:"edges"`
	Levels       int     `json:"levels" yaml:"levels"`
	MaxWidth     int     `json:"max_width" yaml:"max_width"`
	Parallelism  float64 `json:"parallelism" yaml:"parallelism"`
	CriticalPath int     `json:"critical_path" yaml:"critical_path"`
}

// GroupedStats describes the chain-grouped DAG.
type GroupedStats struct {
	Groups   int      `json:"groups" yaml:"groups"`
	Schedule Schedule `json:"schedule" yaml:"schedule"`
}

// TreeStats describes the elimination tree.
type TreeStats struct {
	Roots  int `json:"roots" yaml:"roots"`
	Height int `json:"height" yaml:"height"`
}

// FactorStats describes the pattern of L.
type FactorStats struct {
	NNZ  int `json:"nnz" yaml:"nnz"`
	Fill int `json:"fill" yaml:"fill"`
}

// SupernodeStats describes the blocked factor and its schedule.
type SupernodeStats struct {
	Count        int `json:"count" yaml:"count"`
	MaxWidth     int `json:"max_width" yaml:"max_width"`
	BlockedNNZ   int `json:"blocked_nnz" yaml:"blocked_nnz"`
	Levels       int `json:"levels" yaml:"levels"`
	ColumnLevels int `json:"column_levels" yaml:"column_levels"`
}

// Stage is the wall time of one pipeline stage.
type Stage struct {
	Name     string        `json:"name" yaml:"name"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// scheduleOf summarizes l on g; depth is the critical path length in nodes.
func scheduleOf(g *dag.Graph, l *levelset.Levels, depth []int) Schedule {
	cp := 0
	for _, d := range depth {
		if d+1 > cp {
			cp = d + 1
		}
	}

	return Schedule{
		Nodes:        g.Len(),
		Edges:        g.EdgeCount(),
		Levels:       l.Count(),
		MaxWidth:     l.MaxWidth(),
		Parallelism:  l.Parallelism(),
		CriticalPath: cp,
	}
}
