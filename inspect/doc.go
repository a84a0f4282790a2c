// SPDX-License-Identifier: MIT

// Package inspect runs the complete symbolic analysis of a sparse symmetric
// matrix and summarizes it in a Report.
//
// Stages, in order:
//
//  1. dag:        lower-triangular DAG and its level schedule
//  2. grouped:    chain-grouped DAG and its level schedule
//  3. etree:      elimination tree, postorder, tree levels
//  4. factor:     pattern of the Cholesky factor L
//  5. supernodes: fundamental supernodes, blocked layout, block schedule
//
// Run checks its context between stages, logs every stage at debug level
// through a charmbracelet logger, and records stage durations and schedule
// sizes on a caller-supplied prometheus.Registerer. Without options nothing
// is logged and no metric is registered.
package inspect
