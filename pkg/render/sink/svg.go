package sink

import (
	"bytes"
	"fmt"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// defaultFill is used when the definition carries no color.
const defaultFill = "#5b80a5"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fill        string
	stroke      string
	strokeWidth int
	padding     int
	label       bool
	rowGuides   bool
}

// WithFill overrides the block fill color.
func WithFill(color string) SVGOption { return func(r *svgRenderer) { r.fill = color } }

// WithStroke sets the outline stroke color and width.
func WithStroke(color string, width int) SVGOption {
	return func(r *svgRenderer) { r.stroke = color; r.strokeWidth = width }
}

// WithPadding adds empty space around the block.
func WithPadding(px int) SVGOption { return func(r *svgRenderer) { r.padding = px } }

// WithLabel renders the block's label centered on the first row.
func WithLabel() SVGOption { return func(r *svgRenderer) { r.label = true } }

// WithRowGuides overlays the row bounding boxes, useful for debugging layout.
func WithRowGuides() SVGOption { return func(r *svgRenderer) { r.rowGuides = true } }

// RenderSVG renders a measured block and its outline path as an SVG document.
// The outline's cutout contours become holes via the even-odd fill rule.
func RenderSVG(def *block.Def, res layout.Result, p geom.Path, opts ...SVGOption) []byte {
	r := newSVGRenderer(def, opts...)

	w := res.Width + 2*r.padding
	h := res.Height + 2*r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <g transform="translate(%d %d)">`+"\n", r.padding, r.padding)

	fmt.Fprintf(&buf, `    <path d="%s" fill="%s" fill-rule="evenodd"`, p.Data(), r.fill)
	if r.stroke != "" {
		fmt.Fprintf(&buf, ` stroke="%s" stroke-width="%d"`, r.stroke, r.strokeWidth)
	}
	buf.WriteString("/>\n")

	if r.rowGuides {
		renderRowGuides(&buf, def, res)
	}
	if r.label && def.Label != "" && len(def.Rows) > 0 {
		renderLabel(&buf, def, res)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(def *block.Def, opts ...SVGOption) svgRenderer {
	r := svgRenderer{fill: defaultFill}
	if def.Color != "" {
		r.fill = def.Color
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderRowGuides(buf *bytes.Buffer, def *block.Def, res layout.Result) {
	for _, rect := range layout.Place(def, res) {
		fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#e06666" stroke-width="1" stroke-dasharray="3 2"/>`+"\n",
			rect.X, rect.Y, rect.Width, rect.Height)
	}
}

func renderLabel(buf *bytes.Buffer, def *block.Def, res layout.Result) {
	first := def.Rows[0]
	cx := res.MarginLeft + res.Origins[0].X + first.FieldWidth/2
	cy := res.Origins[0].Y + first.Height/2
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="12" fill="#ffffff">%s</text>`+"\n",
		cx, cy, escapeText(def.Label))
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
