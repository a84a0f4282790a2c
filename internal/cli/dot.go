// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
	"github.com/katalvlaran/symbolic/render"
)

const (
	scheduleDAG  = "dag"
	scheduleTree = "etree"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags    analysisFlags
		schedule string
		svg      bool
		output   string
		labels   bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render a level schedule as Graphviz DOT (or SVG)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &flags)
			if err != nil {
				return err
			}
			a, err := buildMatrix(cfg.Matrix)
			if err != nil {
				return err
			}
			alg, err := levelset.ByName(cfg.Analysis.Algorithm)
			if err != nil {
				return err
			}

			// 1. Pick the graph to draw.
			var g *dag.Graph
			switch schedule {
			case scheduleDAG:
				if g, _, err = dag.FromCSR(a.Lower().ToCSR()); err != nil {
					return err
				}
			case scheduleTree:
				opts, err := c.inspectOptions(cfg.Analysis)
				if err != nil {
					return err
				}
				if g, err = treeGraph(cmd, a, opts); err != nil {
					return err
				}
				alg = levelset.Tree
			default:
				return fmt.Errorf("unknown schedule %q", schedule)
			}
			// 2. Level and render.
			l, err := alg.Build(g)
			if err != nil {
				return err
			}
			doc, err := render.DOT(g, l, render.Options{Title: fmt.Sprintf("%s %s (%s)", cfg.Matrix.Kind, schedule, alg.Name()), LevelLabels: labels})
			if err != nil {
				return err
			}
			out := []byte(doc)
			if svg {
				if out, err = render.SVG(cmd.Context(), doc); err != nil {
					return err
				}
			}
			c.Logger.Debug("rendered", "nodes", g.Len(), "levels", l.Count(), "bytes", len(out))
			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			c.Logger.Info("wrote", "file", output)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&schedule, "schedule", scheduleDAG, "graph to draw: dag or etree")
	cmd.Flags().BoolVar(&svg, "svg", false, "lay out and emit SVG instead of DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw level markers")

	return cmd
}
