package perm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the cycle diagram of d.
//
// Every cycle becomes a cluster with one edge from each element to its
// successor. Fixed points are drawn with a self-loop. Clusters appear in
// storage order, so normalize d first for a canonical drawing.
//
// If labels[i] exists it is shown for element i, otherwise the numeric
// index is used. Pass nil to use numeric labels. The labels slice is not
// modified.
func (d *Decomposition) ToDOT(labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Cycles {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n\n")

	for k := range d.starts {
		c := d.Cycle(k)
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", k)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("length %d", c.Len()))
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for x := range c.All() {
			fmt.Fprintf(&buf, "    n%d [label=%q];\n", x, elementLabel(x, labels))
		}
		for j := 0; j < c.Len(); j++ {
			fmt.Fprintf(&buf, "    n%d -> n%d;\n", c.At(j), c.At((j+1)%c.Len()))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the cycle diagram as an SVG document.
//
// RenderSVG generates a DOT representation via ToDOT and renders it with
// the Graphviz library (github.com/goccy/go-graphviz). Errors are returned
// if Graphviz cannot initialize, the DOT is malformed, or rendering fails.
// All errors are wrapped with context using fmt.Errorf with %w.
func (d *Decomposition) RenderSVG(ctx context.Context, labels []string) ([]byte, error) {
	dot := d.ToDOT(labels)

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

func elementLabel(x int, labels []string) string {
	if x < len(labels) && labels[x] != "" {
		return labels[x]
	}
	return fmt.Sprintf("%d", x)
}
