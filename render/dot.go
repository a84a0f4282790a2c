// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/symbolic/dag"
	"github.com/katalvlaran/symbolic/levelset"
)

// ErrMismatch indicates a schedule that does not cover the graph's nodes.
var ErrMismatch = errors.New("render: schedule does not match graph")

// Options configures DOT.
type Options struct {
	// Title, when set, is drawn above the diagram.
	Title string
	// LevelLabels adds an "L<k>" marker node at the head of every rank.
	LevelLabels bool
}

// DOT renders g with one rank per level of l. Node v is labelled with its
// id; edges follow the successor lists of g.
func DOT(g *dag.Graph, l *levelset.Levels, opts Options) (string, error) {
	if l.Len() != g.Len() {
		return "", fmt.Errorf("DOT: %d scheduled nodes for %d graph nodes: %w", l.Len(), g.Len(), ErrMismatch)
	}
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}

	// 1. One rank per level.
	for k := 0; k < l.Count(); k++ {
		buf.WriteString("  { rank=same;")
		if opts.LevelLabels {
			fmt.Fprintf(&buf, " \"L%d\" [shape=plaintext, fillcolor=transparent];", k)
		}
		for _, v := range l.Level(k) {
			fmt.Fprintf(&buf, " %d;", v)
		}
		buf.WriteString(" }\n")
	}
	// 2. Marker chain keeps level labels in order.
	if opts.LevelLabels {
		for k := 0; k+1 < l.Count(); k++ {
			fmt.Fprintf(&buf, "  \"L%d\" -> \"L%d\" [style=invis];\n", k, k+1)
		}
	}
	// 3. Dependencies.
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d;\n", e[0], e[1])
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// SVG lays out a DOT document and returns the SVG bytes.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("SVG: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("SVG: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("SVG: render: %w", err)
	}

	return buf.Bytes(), nil
}
