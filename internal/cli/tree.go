// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/inspect"
	"github.com/katalvlaran/symbolic/sparse"
)

// treeGraph runs the inspector and returns the elimination tree as a
// child→parent graph.
func treeGraph(cmd *cobra.Command, a *sparse.CSC, opts []inspect.Option) (*dag.Graph, error) {
	rep, err := inspect.Run(cmd.Context(), a, opts...)
	if err != nil {
		return nil, err
	}

	return dag.FromParents(rep.Parent)
}
