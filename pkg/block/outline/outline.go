package outline

import (
	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// Build traces the block's silhouette as one closed path: clockwise from
// the top-left corner, with connector notches spliced into the edges the
// definition's flags and rows call for, plus a separate cutout contour per
// inline Value row.
//
// Build never re-measures: it consumes the definition's rows exactly as the
// layout pass left them, together with the pass's [layout.Result]. The
// origin table length must equal the row count; guaranteeing that is the
// caller's contract.
func Build(def *block.Def, res layout.Result, m layout.Metrics) geom.Path {
	var p geom.Path

	xLeft := res.MarginLeft
	xRight := res.MarginLeft + res.CoreWidth
	yTop := 0
	yBottom := res.NextOffset

	// Top edge, with the previous connector.
	p.MoveTo(xLeft, yTop)
	if def.HasPrevious {
		addPrevious(&p, xLeft, yTop, m)
	}
	p.LineTo(xRight, yTop)

	// Right edge, walking rows top to bottom.
	for i, r := range def.Rows {
		origin := res.Origins[i]
		switch r.Kind {
		case block.KindValue:
			if !def.InputsInline {
				addValueInput(&p, xRight, origin.Y, m)
			}
		case block.KindStatement:
			addStatement(&p, xRight, origin.Y, xLeft+r.FieldWidth, r.MinChildHeight, m)
		}
	}
	p.LineTo(xRight, yBottom)

	// Bottom edge, with the next connector.
	if def.HasNext {
		addNext(&p, xLeft, yBottom, m)
	}
	p.LineTo(xLeft, yBottom)

	// Left edge, with the output connector.
	if def.HasOutput {
		addOutput(&p, xLeft, yTop, m)
	}
	p.LineTo(xLeft, yTop)
	// Overdraw a short segment so the closing joint lands mid-edge rather
	// than on the corner.
	p.LineTo(xLeft+m.CornerOffset, yTop)
	p.Close()

	// Holes for open inline value sockets.
	if def.InputsInline {
		for i, r := range def.Rows {
			if r.Kind != block.KindValue {
				continue
			}
			origin := res.Origins[i]
			w := r.MinChildWidth
			if w < m.NotchWidth {
				w = m.NotchWidth
			}
			addInlineCutout(&p, xLeft+origin.X+r.FieldWidth, origin.Y, w, r.Height, m)
		}
	}

	return p
}
