// Package layout computes container sizes and row positions for blocks.
//
// # Overview
//
// A layout pass takes a [block.Def] (ordered rows plus connector flags),
// measurement budgets and a [Metrics] table, and produces a [Result]:
//
//   - Container size (width, height) with connector margins applied
//   - One origin point per row, in row order
//   - The core block-rectangle width used by the outline builder
//
// The two layout modes mirror the two ways a block presents its rows:
//
//   - Inline: Dummy and Value rows flow left-to-right within a line;
//     Statement rows break onto their own line before and after, and all
//     Statement rows share the widest Statement field width.
//   - External: every row is its own full-width line; Dummy/Value rows
//     share one uniform field width and Statement rows another, with the
//     Dummy/Value column widened to clear the statement connector indent.
//
// # Determinism
//
// All computation is exact integer max/sum arithmetic. [Measure] holds no
// state between passes and rebuilds the origin table from scratch each
// time, so identical inputs always produce bit-identical results. The only
// mutation is the pass-scoped write-back of assigned field widths and
// measured sizes into the rows themselves.
//
// # Usage
//
//	def := &block.Def{Rows: rows, HasPrevious: true, HasNext: true}
//	res := layout.Measure(def, block.Unbounded(), layout.DefaultMetrics())
//	path := outline.Build(def, res, layout.DefaultMetrics())
//
// The result feeds [outline.Build] for the silhouette path and [Place] for
// absolute row rectangles.
//
// [outline.Build]: github.com/snapblocks/snapblocks/pkg/block/outline#Build
package layout
