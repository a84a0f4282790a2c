// SPDX-License-Identifier: MIT

// Package supernode groups contiguous columns of a triangular factor into
// supernodes, rewrites the factor in blocked storage, and schedules work at
// supernode granularity.
//
// A supernode partition is a boundary array: supernode s owns the columns
// [supernodes[s], supernodes[s+1]); supernodes[0] == 0 and the last entry is
// n. Find and Sup2Node translate between columns and supernodes, Detect
// derives fundamental supernodes from a factor pattern, Block and BlockWith
// produce a *Blocked matrix whose blocks are dense column-major panels that
// View exposes as gonum matrices.
//
// Scheduling helpers coarsen a matrix DAG onto its supernodes (CompressCSC,
// LevelSetBN) or fuse three cooperating matrices (a triangular factor, an
// intermediate product, a second factor) into one supernodal graph that is
// leveled globally (MergeGraphs, FusedLevels).
package supernode
