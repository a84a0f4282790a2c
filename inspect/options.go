// SPDX-License-Identifier: MIT

package inspect

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
)

// Option configures Run. Constructors panic on meaningless values.
type Option func(*options)

type options struct {
	logger       *log.Logger
	registerer   prometheus.Registerer
	alg          levelset.Algorithm
	maxGroupSize int
	maxSuper     int // 0 means unbounded
}

// defaultOptions is the configuration Run starts from: a discarding logger,
// no metrics, levelset.Default and dag.DefaultMaxGroupSize.
func defaultOptions() options {
	return options{
		logger:       log.New(io.Discard),
		alg:          levelset.Default,
		maxGroupSize: dag.DefaultMaxGroupSize,
	}
}

// WithLogger routes stage logs to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("inspect: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithRegisterer records metrics on r. Panics on nil.
func WithRegisterer(r prometheus.Registerer) Option {
	if r == nil {
		panic("inspect: WithRegisterer(nil)")
	}
	return func(o *options) { o.registerer = r }
}

// WithAlgorithm selects the leveling strategy for the DAG stages. Panics
// on nil.
func WithAlgorithm(alg levelset.Algorithm) Option {
	if alg == nil {
		panic("inspect: WithAlgorithm(nil)")
	}
	return func(o *options) { o.alg = alg }
}

// WithMaxGroupSize bounds the grouped DAG stage. Panics if size < 1.
func WithMaxGroupSize(size int) Option {
	if size < 1 {
		panic("inspect: WithMaxGroupSize(size<1)")
	}
	return func(o *options) { o.maxGroupSize = size }
}

// WithMaxSupernode caps supernode width. Panics if size < 1.
func WithMaxSupernode(size int) Option {
	if size < 1 {
		panic("inspect: WithMaxSupernode(size<1)")
	}
	return func(o *options) { o.maxSuper = size }
}
