// Package nodetree renders block definitions as structural tree diagrams.
//
// The diagram shows the block node with one child per row, labeled with the
// row's kind and dimensions. It is a debugging view: where the sink package
// draws the block's actual silhouette, nodetree exposes the structure that
// produced it.
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering of the generated DOT source.
package nodetree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/snapblocks/snapblocks/pkg/block"
)

// Options configures tree diagram generation.
type Options struct {
	// Detailed includes row dimensions in node labels.
	// When false, only the row kind is shown.
	Detailed bool
}

// ToDOT converts a block definition to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(def *block.Def, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightblue];\n", rootID(def), rootLabel(def, opts.Detailed))
	for i, r := range def.Rows {
		id := fmt.Sprintf("row%d", i)
		attrs := fmt.Sprintf("label=%q", rowLabel(i, r, opts.Detailed))
		if r.Kind == block.KindStatement {
			attrs += ", style=\"rounded,filled,dashed\", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for i := range def.Rows {
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID(def), fmt.Sprintf("row%d", i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rootID(def *block.Def) string {
	if def.ID != "" {
		return def.ID
	}
	return "block"
}

func rootLabel(def *block.Def, detailed bool) string {
	label := rootID(def)
	if !detailed {
		return label
	}
	mode := "external"
	if def.InputsInline {
		mode = "inline"
	}
	return fmt.Sprintf("%s\nmode: %s\nprev: %v next: %v output: %v",
		label, mode, def.HasPrevious, def.HasNext, def.HasOutput)
}

func rowLabel(i int, r *block.Row, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%d: %s", i, r.Kind)
	}
	return fmt.Sprintf("%d: %s\nfields: %dx%d\nchild: %dx%d",
		i, r.Kind, r.MinFieldWidth, r.FieldHeight, r.MinChildWidth, r.MinChildHeight)
}

// RenderSVG renders a DOT graph to SVG using Graphviz. It backs the
// "tree-svg" output format of the render command and the render endpoint.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
