// Package render visualizes generated scan sequences, as a Graphviz
// path diagram of the visitation order and as PNG charts of the tilt
// and dose trajectories.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/floretscan/floret/pkg/scan"
)

// ToDOT returns a Graphviz DOT representation of the acquisition order:
// one node per (position, angle) pair, chained in visitation order.
//
// The output is a complete DOT digraph that can be rendered with the
// Graphviz tools or programmatically with RenderSVG. Left-to-right
// layout keeps long tilt series readable.
func ToDOT(seq scan.Sequence) string {
	var b strings.Builder
	b.WriteString("digraph scan {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\"];\n")

	for i := 0; i < seq.Len(); i++ {
		fmt.Fprintf(&b, "  n%d [label=\"%d\\np=%g\\na=%g\"];\n",
			i, i, seq.Positions[i], seq.Angles[i])
	}
	for i := 1; i < seq.Len(); i++ {
		fmt.Fprintf(&b, "  n%d -> n%d;\n", i-1, i)
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
