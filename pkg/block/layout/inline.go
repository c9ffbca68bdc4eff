package layout

import (
	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// measureInline lays out rows in inline mode: Dummy and Value rows pack
// left-to-right within a visual line, Statement rows always occupy a line
// of their own and all share one field width so their connector notches
// align vertically.
func measureInline(rows []*block.Row, c block.Constraints, m Metrics) Result {
	// First pass: the widest field requirement over all Statement rows.
	maxStatementFieldsWidth := 0
	for _, r := range rows {
		if r.Kind == block.KindStatement {
			maxStatementFieldsWidth = maxInt(maxStatementFieldsWidth, r.MinFieldWidth)
		}
	}

	// Second pass: assign field widths, measure and position each row.
	origins := make([]geom.Point, len(rows))

	rowLeft := 0
	rowTop := 0
	rowHeight := 0
	maxRowWidth := 0

	for i, r := range rows {
		if r.Kind == block.KindStatement {
			r.FieldWidth = maxStatementFieldsWidth
			// A Statement starts a fresh line.
			rowTop += rowHeight
			rowHeight = 0
			rowLeft = 0
		} else {
			r.FieldWidth = r.MinFieldWidth
		}

		origins[i] = geom.Point{X: rowLeft, Y: rowTop}

		r.Measure(c)
		if r.Kind == block.KindValue {
			// The row must contain its socket cutout, including the cutout's
			// attachment notch, even when no child size is declared.
			r.Width = maxInt(r.Width, r.FieldWidth+maxInt(r.MinChildWidth, m.NotchWidth))
			r.Height = maxInt(r.Height, m.CornerOffset+m.NotchWidth)
		}
		rowHeight = maxInt(rowHeight, r.Height)
		rowLeft += r.Width

		if r.Kind == block.KindStatement {
			// The statement line must also fit the nested connector indent.
			maxRowWidth = maxInt(maxRowWidth, rowLeft+m.StatementIndent)
			// And the next row starts a fresh line again.
			rowTop += rowHeight
			rowLeft = 0
			rowHeight = 0
		} else {
			maxRowWidth = maxInt(maxRowWidth, rowLeft)
		}
	}

	// Account for a trailing non-Statement line.
	rowTop += rowHeight

	width := maxInt(m.MinWidth, maxRowWidth)
	return Result{
		CoreWidth: width,
		Width:     width,
		Height:    maxInt(m.MinHeight, rowTop),
		Origins:   origins,
	}
}
