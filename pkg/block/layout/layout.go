package layout

import (
	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// Result is the complete output of one layout pass.
//
// Origins always has exactly one entry per row, in row order. CoreWidth is
// the width of the block rectangle itself, excluding child extents and
// connector margins; Width and Height are the full container dimensions
// with connector margins applied.
type Result struct {
	// CoreWidth is the block rectangle width without connector margins or
	// child content hanging off the right edge.
	CoreWidth int
	// Width and Height are the container dimensions including the output
	// connector margin (left) and next connector margin (bottom).
	Width  int
	Height int
	// NextOffset is the vertical offset at which a following block
	// attaches: the container height before the next-connector margin.
	NextOffset int
	// MarginLeft is the horizontal offset of the block rectangle inside
	// the container, non-zero only when the block has an output connector.
	MarginLeft int
	// Origins holds one (x, y) position per row, relative to the block
	// rectangle's top-left corner.
	Origins []geom.Point
}

// Measure runs one layout pass over the definition's rows: it assigns field
// widths, measures every row in place and computes the container size and
// per-row origins. The pass is pure apart from the row write-backs; running
// it twice with identical inputs yields identical results.
//
// Layout mode is selected by def.InputsInline. Connector margins are folded
// in afterwards: a next connector extends the height by the notch depth and
// an output connector shifts the block right by the same amount.
func Measure(def *block.Def, c block.Constraints, m Metrics) Result {
	c = c.Normalize()

	var res Result
	if def.InputsInline {
		res = measureInline(def.Rows, c, m)
	} else {
		res = measureExternal(def.Rows, c, m)
	}

	res.NextOffset = res.Height
	if def.HasNext {
		res.Height += m.NotchDepth
	}

	if def.HasOutput {
		res.MarginLeft = m.NotchDepth
		res.Width += res.MarginLeft
	}

	return res
}

// Place converts a layout result into absolute row rectangles inside the
// container: each row's origin shifted by the output-connector margin,
// paired with its measured size.
//
// The origin table and row list must come from the same pass; a length
// mismatch is a caller error.
func Place(def *block.Def, res Result) []geom.Rect {
	rects := make([]geom.Rect, len(def.Rows))
	for i, r := range def.Rows {
		o := res.Origins[i]
		rects[i] = geom.Rect{
			X:      res.MarginLeft + o.X,
			Y:      o.Y,
			Width:  r.Width,
			Height: r.Height,
		}
	}
	return rects
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
