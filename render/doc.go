// SPDX-License-Identifier: MIT

// Package render draws level schedules as Graphviz diagrams.
//
// DOT emits one node per DAG node and pins every level to its own rank, so
// the picture reads top to bottom in execution order: everything on one row
// may run concurrently. SVG lays a DOT document out with the embedded
// Graphviz runtime of github.com/goccy/go-graphviz; no system binary is
// needed.
package render
