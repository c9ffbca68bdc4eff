package outline

import (
	"fmt"
	"testing"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

func measure(def *block.Def) layout.Result {
	return layout.Measure(def, block.Unbounded(), layout.DefaultMetrics())
}

// hasPoint reports whether any segment of the path ends at (x, y).
func hasPoint(p *geom.Path, x, y int) bool {
	for _, s := range p.Segments() {
		if s.To == (geom.Point{X: x, Y: y}) {
			return true
		}
	}
	return false
}

func TestBuildClosedForAllConnectorCombinations(t *testing.T) {
	for _, prev := range []bool{false, true} {
		for _, next := range []bool{false, true} {
			for _, output := range []bool{false, true} {
				name := fmt.Sprintf("prev=%v_next=%v_output=%v", prev, next, output)
				t.Run(name, func(t *testing.T) {
					def := &block.Def{
						HasPrevious: prev, HasNext: next, HasOutput: output,
						Rows: []*block.Row{{Kind: block.KindDummy, MinFieldWidth: 40, FieldHeight: 30}},
					}
					res := measure(def)
					p := Build(def, res, layout.DefaultMetrics())

					if !p.Closed() {
						t.Errorf("path not closed: %s", p.Data())
					}
					if p.Start() != p.End() {
						t.Errorf("start %v != end %v", p.Start(), p.End())
					}
				})
			}
		}
	}
}

func TestBuildPlainRectangle(t *testing.T) {
	m := layout.DefaultMetrics()
	def := &block.Def{
		Rows: []*block.Row{{Kind: block.KindDummy, MinFieldWidth: 60, FieldHeight: 40}},
	}
	res := measure(def)
	p := Build(def, res, m)

	if got := p.Contours(); got != 1 {
		t.Fatalf("contours = %d, want 1", got)
	}
	// No connectors: four corners plus the re-entrant closing segment.
	want := fmt.Sprintf("M 0 0 L %d 0 L %d %d L 0 %d L 0 0 L %d 0 Z",
		res.CoreWidth, res.CoreWidth, res.Height, res.Height, m.CornerOffset)
	if got := p.Data(); got != want {
		t.Errorf("Data() = %q, want %q", got, want)
	}
}

func TestBuildStatementNotchSpansChildHeight(t *testing.T) {
	m := layout.DefaultMetrics()
	def := &block.Def{
		Rows: []*block.Row{
			{Kind: block.KindDummy, MinFieldWidth: 30, FieldHeight: 20},
			{Kind: block.KindStatement, MinFieldWidth: 25, FieldHeight: 20, MinChildHeight: 50},
		},
	}
	res := measure(def)
	p := Build(def, res, m)

	xRight := res.MarginLeft + res.CoreWidth
	oy := res.Origins[1].Y

	// The carve enters the right edge at the row origin and re-emerges
	// exactly the child height below it.
	if !hasPoint(&p, xRight, oy) {
		t.Errorf("no carve entry at (%d, %d)", xRight, oy)
	}
	if !hasPoint(&p, xRight, oy+50) {
		t.Errorf("no carve exit at (%d, %d)", xRight, oy+50)
	}
	// The carve walls sit at the statement's field width.
	xOffset := res.MarginLeft + def.Rows[1].FieldWidth
	if !hasPoint(&p, xOffset, oy) || !hasPoint(&p, xOffset, oy+50) {
		t.Errorf("carve walls missing at x=%d between y=%d and y=%d", xOffset, oy, oy+50)
	}
}

func TestBuildExternalValueNotchAtRowOrigin(t *testing.T) {
	m := layout.DefaultMetrics()
	def := &block.Def{
		Rows: []*block.Row{
			{Kind: block.KindDummy, MinFieldWidth: 30, FieldHeight: 26},
			{Kind: block.KindValue, MinFieldWidth: 20, FieldHeight: 30},
		},
	}
	res := measure(def)
	p := Build(def, res, m)

	xRight := res.MarginLeft + res.CoreWidth
	oy := res.Origins[1].Y
	if !hasPoint(&p, xRight-m.NotchDepth, oy+m.CornerOffset) {
		t.Errorf("no value notch at row origin y=%d: %s", oy, p.Data())
	}
}

func TestBuildInlineCutouts(t *testing.T) {
	def := &block.Def{
		InputsInline: true,
		Rows: []*block.Row{
			{Kind: block.KindValue, MinFieldWidth: 20, FieldHeight: 30, MinChildWidth: 40, MinChildHeight: 28},
			{Kind: block.KindDummy, MinFieldWidth: 15, FieldHeight: 20},
			{Kind: block.KindValue, MinFieldWidth: 25, FieldHeight: 30},
		},
	}
	res := measure(def)
	p := Build(def, res, layout.DefaultMetrics())

	// Outer silhouette plus one hole per inline Value row.
	if got := p.Contours(); got != 3 {
		t.Errorf("contours = %d, want 3", got)
	}
	if !p.Closed() {
		t.Errorf("path with cutouts not closed: %s", p.Data())
	}
}

func TestBuildExternalHasNoCutouts(t *testing.T) {
	def := &block.Def{
		Rows: []*block.Row{
			{Kind: block.KindValue, MinFieldWidth: 20, FieldHeight: 30, MinChildWidth: 40, MinChildHeight: 28},
		},
	}
	res := measure(def)
	p := Build(def, res, layout.DefaultMetrics())

	if got := p.Contours(); got != 1 {
		t.Errorf("contours = %d, want 1 (no cutouts in external mode)", got)
	}
}

func TestBuildIdempotent(t *testing.T) {
	def := &block.Def{
		HasPrevious: true, HasNext: true,
		Rows: []*block.Row{
			{Kind: block.KindValue, MinFieldWidth: 20, FieldHeight: 30},
			{Kind: block.KindStatement, MinFieldWidth: 25, FieldHeight: 20, MinChildHeight: 44},
		},
	}
	res := measure(def)
	first := Build(def, res, layout.DefaultMetrics())
	second := Build(def, res, layout.DefaultMetrics())
	if first.Data() != second.Data() {
		t.Error("rebuilding from the same layout diverged")
	}
}

func TestBuildOutputMarginShiftsEdges(t *testing.T) {
	m := layout.DefaultMetrics()
	def := &block.Def{
		HasOutput: true,
		Rows:      []*block.Row{{Kind: block.KindDummy, MinFieldWidth: 40, FieldHeight: 30}},
	}
	res := measure(def)
	p := Build(def, res, m)

	// The outline starts at the margin, not at x=0, and the output tab
	// reaches back to the container's left edge.
	if p.Start() != (geom.Point{X: m.NotchDepth, Y: 0}) {
		t.Errorf("start = %v, want (%d, 0)", p.Start(), m.NotchDepth)
	}
	if !hasPoint(&p, 0, m.CornerOffset) {
		t.Errorf("output tab does not reach container left edge: %s", p.Data())
	}
}
