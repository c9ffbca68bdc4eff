package layout

import (
	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// measureExternal lays out rows in external mode: every row occupies its
// own full-width line. All Dummy/Value rows share one field width and all
// Statement rows share another, so field columns and connector notches line
// up down the block.
func measureExternal(rows []*block.Row, c block.Constraints, m Metrics) Result {
	// First pass: accumulate the field and child extents per row class.
	// The input accumulator is floored at MinWidth; the statement
	// accumulator stays zero unless Statement rows exist, so blocks
	// without statements reserve no indent.
	maxInputFieldsWidth := m.MinWidth
	maxStatementFieldsWidth := 0

	maxInputChildWidth := 0
	maxStatementChildWidth := 0

	hasValueInput := false
	for _, r := range rows {
		switch r.Kind {
		case block.KindStatement:
			maxStatementFieldsWidth = maxInt(maxStatementFieldsWidth, maxInt(m.MinWidth, r.MinFieldWidth))
			maxStatementChildWidth = maxInt(maxStatementChildWidth, r.MinChildWidth)
		case block.KindValue:
			hasValueInput = true
			fallthrough
		default:
			maxInputFieldsWidth = maxInt(maxInputFieldsWidth, r.MinFieldWidth)
			maxInputChildWidth = maxInt(maxInputChildWidth, r.MinChildWidth)
		}
	}

	// A Dummy/Value field column must clear the statement connector indent
	// of any statement line below it.
	if maxStatementFieldsWidth > 0 {
		maxInputFieldsWidth = maxInt(maxInputFieldsWidth, maxStatementFieldsWidth+m.StatementIndent)
	}

	// Second pass: force uniform field widths per row class, measure and
	// stack the rows vertically.
	origins := make([]geom.Point, len(rows))

	rowTop := 0
	for i, r := range rows {
		if r.Kind == block.KindStatement {
			r.FieldWidth = maxStatementFieldsWidth
		} else {
			r.FieldWidth = maxInputFieldsWidth
		}
		r.Measure(c)
		if r.Kind == block.KindValue {
			// The row must span its connector notch on the right edge.
			r.Height = maxInt(r.Height, m.CornerOffset+m.NotchWidth)
		}

		origins[i] = geom.Point{X: 0, Y: rowTop}

		rowTop += r.Height
		if r.Kind == block.KindStatement {
			rowTop += m.StatementBottomHeight
		}
	}

	coreWidth := maxInt(maxInputFieldsWidth, maxStatementFieldsWidth)
	if hasValueInput {
		coreWidth += m.NotchDepth
	}

	// The container must also hold child content hanging off either row
	// class, not just the block rectangle.
	width := maxInt(coreWidth, maxInt(
		maxInputFieldsWidth+maxInputChildWidth,
		maxStatementFieldsWidth+maxStatementChildWidth,
	))

	return Result{
		CoreWidth: coreWidth,
		Width:     width,
		Height:    maxInt(m.MinHeight, rowTop),
		Origins:   origins,
	}
}
