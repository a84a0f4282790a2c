// SPDX-License-Identifier: MIT

// Package symbolic is the symbolic-analysis front end of a sparse direct
// solver: everything that can be computed from a sparse pattern before a
// single floating-point operation runs.
//
// What is in the box?
//
//	sparse/     CSC, CSR and blocked BCSC patterns with validation
//	dag/        dependency DAGs from triangular patterns, grouping, coarsening, kernel chaining
//	levelset/   level-set schedules (naive, queue, compact, tree) with verification
//	etree/      elimination trees, postorder, row reach, symbolic Cholesky pattern
//	supernode/  fundamental supernodes, blocked panels, supernodal and fused schedules
//	gen/        reproducible SPD test patterns (banded, arrow, grid, random)
//	inspect/    one-call pipeline with a JSON/YAML report, logging and Prometheus metrics
//	render/     Graphviz DOT and SVG of level schedules
//
// Quick ASCII example, a 4×4 lower-triangular pattern and its levels:
//
//	[ x . . . ]        level 0: 0
//	[ x x . . ]        level 1: 1 3
//	[ . x x . ]        level 2: 2
//	[ x . . x ]
//
// Rows in the same level have no dependency between them and can be solved
// in parallel.
//
// The symbolic command (cmd/symbolic) exposes the pipeline:
//
//	symbolic analyze --kind grid --rows 32 --cols 32 -f json
//	symbolic dot --kind arrow -n 8 --schedule etree --svg -o tree.svg
package symbolic
