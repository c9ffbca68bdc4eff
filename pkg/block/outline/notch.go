package outline

import (
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// Connector notch contours. Each function assumes the pen sits on the edge
// being walked, splices the notch in walk direction and leaves the pen back
// on the edge, so callers can continue with a straight segment.

// addPrevious splices the previous-connector notch into the top edge at the
// block's top-left corner (x, y), walking left to right. The notch dips
// into the block.
func addPrevious(p *geom.Path, x, y int, m layout.Metrics) {
	p.LineTo(x+m.CornerOffset, y)
	p.LineTo(x+m.CornerOffset, y+m.NotchDepth)
	p.LineTo(x+m.CornerOffset+m.NotchWidth, y+m.NotchDepth)
	p.LineTo(x+m.CornerOffset+m.NotchWidth, y)
}

// addNext splices the next-connector notch into the bottom edge anchored at
// the bottom-left corner (x, y), walking right to left. The notch protrudes
// below the edge into the next-connector margin.
func addNext(p *geom.Path, x, y int, m layout.Metrics) {
	p.LineTo(x+m.CornerOffset+m.NotchWidth, y)
	p.LineTo(x+m.CornerOffset+m.NotchWidth, y+m.NotchDepth)
	p.LineTo(x+m.CornerOffset, y+m.NotchDepth)
	p.LineTo(x+m.CornerOffset, y)
}

// addOutput splices the output-connector tab into the left edge anchored at
// the top-left corner (x, y), walking bottom to top. The tab protrudes left
// into the output margin.
func addOutput(p *geom.Path, x, y int, m layout.Metrics) {
	p.LineTo(x, y+m.CornerOffset+m.NotchWidth)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset+m.NotchWidth)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset)
	p.LineTo(x, y+m.CornerOffset)
}

// addValueInput splices a value-input socket notch into the right edge at
// vertical position y, walking top to bottom. The notch cuts into the block.
func addValueInput(p *geom.Path, x, y int, m layout.Metrics) {
	p.LineTo(x, y+m.CornerOffset)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset+m.NotchWidth)
	p.LineTo(x, y+m.CornerOffset+m.NotchWidth)
}

// addStatement carves the statement-input connector into the right edge,
// walking top to bottom: left along the top of the carve to xOffset (with
// the attachment notch for the first nested block), down by childHeight,
// then back out to the right edge. The carve re-emerges exactly childHeight
// below its entry point.
func addStatement(p *geom.Path, xRight, y, xOffset, childHeight int, m layout.Metrics) {
	p.LineTo(xRight, y)
	p.LineTo(xOffset+m.CornerOffset+m.NotchWidth, y)
	p.LineTo(xOffset+m.CornerOffset+m.NotchWidth, y+m.NotchDepth)
	p.LineTo(xOffset+m.CornerOffset, y+m.NotchDepth)
	p.LineTo(xOffset+m.CornerOffset, y)
	p.LineTo(xOffset, y)
	p.LineTo(xOffset, y+childHeight)
	p.LineTo(xRight, y+childHeight)
}

// addInlineCutout appends a separate closed contour for an open inline
// value socket at (x, y): a rectangle of the socket's size with the value
// notch on its left edge. Combined with even-odd fill, the contour punches
// a hole into the outer silhouette.
func addInlineCutout(p *geom.Path, x, y, width, height int, m layout.Metrics) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.LineTo(x, y+m.CornerOffset+m.NotchWidth)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset+m.NotchWidth)
	p.LineTo(x-m.NotchDepth, y+m.CornerOffset)
	p.LineTo(x, y+m.CornerOffset)
	p.Close()
}
