package layout

import (
	"reflect"
	"testing"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

func dummy(fieldW, fieldH int) *block.Row {
	return &block.Row{Kind: block.KindDummy, MinFieldWidth: fieldW, FieldHeight: fieldH}
}

func value(fieldW, fieldH, childW, childH int) *block.Row {
	return &block.Row{
		Kind: block.KindValue, MinFieldWidth: fieldW, FieldHeight: fieldH,
		MinChildWidth: childW, MinChildHeight: childH,
	}
}

func statement(fieldW, fieldH, childW, childH int) *block.Row {
	return &block.Row{
		Kind: block.KindStatement, MinFieldWidth: fieldW, FieldHeight: fieldH,
		MinChildWidth: childW, MinChildHeight: childH,
	}
}

func TestExternalSingleDummyRow(t *testing.T) {
	m := DefaultMetrics()

	tests := []struct {
		name       string
		fieldW     int
		fieldH     int
		wantWidth  int
		wantHeight int
	}{
		{"smaller than floors", 40, 20, m.MinWidth, m.MinHeight},
		{"larger than floors", 60, 50, 60, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &block.Def{Rows: []*block.Row{dummy(tt.fieldW, tt.fieldH)}}
			res := Measure(def, block.Unbounded(), m)

			if res.Width != tt.wantWidth || res.Height != tt.wantHeight {
				t.Errorf("size = (%d, %d), want (%d, %d)", res.Width, res.Height, tt.wantWidth, tt.wantHeight)
			}
			if res.Origins[0] != (geom.Point{}) {
				t.Errorf("origin = %v, want (0, 0)", res.Origins[0])
			}
		})
	}
}

func TestExternalValueRowOutputMargin(t *testing.T) {
	m := DefaultMetrics()
	def := &block.Def{
		HasOutput: true,
		Rows:      []*block.Row{value(30, 20, 0, 0)},
	}
	res := Measure(def, block.Unbounded(), m)

	// One Value row adds the connector margin to the core exactly once.
	wantCore := m.MinWidth + m.NotchDepth
	if res.CoreWidth != wantCore {
		t.Errorf("CoreWidth = %d, want %d", res.CoreWidth, wantCore)
	}
	if res.MarginLeft != m.NotchDepth {
		t.Errorf("MarginLeft = %d, want %d", res.MarginLeft, m.NotchDepth)
	}
	if res.Width != wantCore+m.NotchDepth {
		t.Errorf("Width = %d, want core + output margin = %d", res.Width, wantCore+m.NotchDepth)
	}
}

func TestInlineStatementBreaksLine(t *testing.T) {
	m := DefaultMetrics()
	rows := []*block.Row{
		dummy(10, 20),
		statement(30, 20, 0, 0),
		dummy(15, 20),
	}
	def := &block.Def{InputsInline: true, Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	// The Statement starts a new line even though the first line had
	// horizontal space left.
	want := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 20}, {X: 0, Y: 40}}
	if !reflect.DeepEqual(res.Origins, want) {
		t.Errorf("origins = %v, want %v", res.Origins, want)
	}

	// Width is driven by the statement line plus its connector indent,
	// not by the dummy lines.
	wantWidth := 30 + m.StatementIndent
	if wantWidth < m.MinWidth {
		wantWidth = m.MinWidth
	}
	if res.Width != wantWidth {
		t.Errorf("Width = %d, want %d", res.Width, wantWidth)
	}
	if res.Height != 60 {
		t.Errorf("Height = %d, want 60", res.Height)
	}
}

func TestInlineStatementOriginsAtLineStart(t *testing.T) {
	m := DefaultMetrics()
	rows := []*block.Row{
		dummy(10, 10),
		dummy(20, 10),
		statement(25, 12, 0, 40),
		value(15, 10, 0, 0),
		statement(35, 12, 0, 30),
	}
	def := &block.Def{InputsInline: true, Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	for i, r := range rows {
		if r.Kind == block.KindStatement && res.Origins[i].X != 0 {
			t.Errorf("statement row %d has origin x = %d, want 0", i, res.Origins[i].X)
		}
	}
}

func TestInlineUniformStatementFieldWidth(t *testing.T) {
	rows := []*block.Row{
		statement(25, 12, 0, 0),
		dummy(10, 10),
		statement(40, 12, 0, 0),
		statement(18, 12, 0, 0),
	}
	def := &block.Def{InputsInline: true, Rows: rows}
	Measure(def, block.Unbounded(), DefaultMetrics())

	for i, r := range rows {
		if r.Kind != block.KindStatement {
			continue
		}
		if r.FieldWidth != 40 {
			t.Errorf("statement row %d FieldWidth = %d, want 40 (widest statement)", i, r.FieldWidth)
		}
	}
}

func TestValueRowConnectorFloors(t *testing.T) {
	m := DefaultMetrics()
	minSpan := m.CornerOffset + m.NotchWidth

	t.Run("inline reserves empty socket", func(t *testing.T) {
		rows := []*block.Row{value(25, 10, 0, 0)}
		def := &block.Def{InputsInline: true, Rows: rows}
		Measure(def, block.Unbounded(), m)

		// An open socket still gets a cutout, so the row reserves at least
		// a notch-wide child area and enough height for the notch span.
		if want := 25 + m.NotchWidth; rows[0].Width != want {
			t.Errorf("Width = %d, want field + empty socket = %d", rows[0].Width, want)
		}
		if rows[0].Height != minSpan {
			t.Errorf("Height = %d, want notch span %d", rows[0].Height, minSpan)
		}
	})

	t.Run("external floors row height", func(t *testing.T) {
		rows := []*block.Row{value(25, 10, 0, 0), value(25, 10, 0, 0)}
		def := &block.Def{Rows: rows}
		res := Measure(def, block.Unbounded(), m)

		for i, r := range rows {
			if r.Height != minSpan {
				t.Errorf("row %d Height = %d, want notch span %d", i, r.Height, minSpan)
			}
		}
		// Consecutive notches must not overlap vertically.
		if res.Origins[1].Y < minSpan {
			t.Errorf("second row origin y = %d, want >= %d", res.Origins[1].Y, minSpan)
		}
	})
}

func TestExternalHeightIsSumOfRows(t *testing.T) {
	m := DefaultMetrics()
	rows := []*block.Row{
		dummy(30, 26),
		value(20, 30, 50, 40),
		statement(25, 28, 60, 70),
		dummy(10, 25),
		statement(15, 26, 0, 0),
	}
	def := &block.Def{Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	sum := 0
	statements := 0
	for _, r := range rows {
		sum += r.Height
		if r.Kind == block.KindStatement {
			statements++
		}
	}
	want := sum + statements*m.StatementBottomHeight
	if res.Height != want {
		t.Errorf("Height = %d, want sum of row heights + statement gaps = %d", res.Height, want)
	}
}

func TestExternalUniformFieldWidths(t *testing.T) {
	m := DefaultMetrics()
	rows := []*block.Row{
		dummy(30, 20),
		value(55, 20, 0, 0),
		statement(60, 20, 0, 0),
		statement(52, 20, 0, 0),
	}
	def := &block.Def{Rows: rows}
	Measure(def, block.Unbounded(), m)

	// Statements share the widest statement field width.
	if rows[2].FieldWidth != 60 || rows[3].FieldWidth != 60 {
		t.Errorf("statement FieldWidths = %d, %d, want 60, 60", rows[2].FieldWidth, rows[3].FieldWidth)
	}
	// Dummy/Value rows clear the statement indent.
	wantInput := 60 + m.StatementIndent
	if rows[0].FieldWidth != wantInput || rows[1].FieldWidth != wantInput {
		t.Errorf("input FieldWidths = %d, %d, want %d", rows[0].FieldWidth, rows[1].FieldWidth, wantInput)
	}
}

func TestExternalStatementChildWidthAccumulatesIndependently(t *testing.T) {
	// A wide statement child must widen the container even when the
	// Dummy/Value child accumulator saw nothing.
	m := DefaultMetrics()
	rows := []*block.Row{
		statement(20, 20, 200, 50),
	}
	def := &block.Def{Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	if want := rows[0].FieldWidth + 200; res.Width < want {
		t.Errorf("Width = %d, want at least statement fields + child = %d", res.Width, want)
	}
}

func TestExternalNoStatementNoIndent(t *testing.T) {
	// Without statement rows the input field column must not be widened
	// by the statement indent.
	m := DefaultMetrics()
	rows := []*block.Row{dummy(40, 20)}
	def := &block.Def{Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	if res.Width != m.MinWidth {
		t.Errorf("Width = %d, want %d", res.Width, m.MinWidth)
	}
}

func TestConnectorMargins(t *testing.T) {
	m := DefaultMetrics()

	t.Run("next extends height below NextOffset", func(t *testing.T) {
		def := &block.Def{HasNext: true, Rows: []*block.Row{dummy(30, 50)}}
		res := Measure(def, block.Unbounded(), m)
		if res.NextOffset != 50 {
			t.Errorf("NextOffset = %d, want 50", res.NextOffset)
		}
		if res.Height != 50+m.NotchDepth {
			t.Errorf("Height = %d, want %d", res.Height, 50+m.NotchDepth)
		}
	})

	t.Run("no next leaves NextOffset at height", func(t *testing.T) {
		def := &block.Def{Rows: []*block.Row{dummy(30, 30)}}
		res := Measure(def, block.Unbounded(), m)
		if res.NextOffset != res.Height {
			t.Errorf("NextOffset = %d, Height = %d, want equal", res.NextOffset, res.Height)
		}
	})

	t.Run("output shifts block right", func(t *testing.T) {
		def := &block.Def{HasOutput: true, InputsInline: true, Rows: []*block.Row{dummy(60, 20)}}
		res := Measure(def, block.Unbounded(), m)
		if res.MarginLeft != m.NotchDepth {
			t.Errorf("MarginLeft = %d, want %d", res.MarginLeft, m.NotchDepth)
		}
		if res.Width != res.CoreWidth+m.NotchDepth {
			t.Errorf("Width = %d, want CoreWidth + margin = %d", res.Width, res.CoreWidth+m.NotchDepth)
		}
	})
}

func TestMeasureIdempotent(t *testing.T) {
	for _, inline := range []bool{false, true} {
		name := "external"
		if inline {
			name = "inline"
		}
		t.Run(name, func(t *testing.T) {
			rows := []*block.Row{
				dummy(30, 20),
				value(20, 25, 40, 35),
				statement(25, 22, 60, 50),
			}
			def := &block.Def{
				HasPrevious: true, HasNext: true,
				InputsInline: inline,
				Rows:         rows,
			}

			first := Measure(def, block.Unbounded(), DefaultMetrics())
			second := Measure(def, block.Unbounded(), DefaultMetrics())

			if !reflect.DeepEqual(first, second) {
				t.Errorf("repeated pass diverged:\nfirst:  %+v\nsecond: %+v", first, second)
			}
		})
	}
}

func TestWidthMonotonicInChildWidth(t *testing.T) {
	for _, inline := range []bool{false, true} {
		name := "external"
		if inline {
			name = "inline"
		}
		t.Run(name, func(t *testing.T) {
			prev := -1
			for childW := 0; childW <= 300; childW += 25 {
				rows := []*block.Row{
					dummy(30, 20),
					value(20, 25, childW, 35),
					statement(25, 22, 0, 50),
				}
				def := &block.Def{InputsInline: inline, Rows: rows}
				res := Measure(def, block.Unbounded(), DefaultMetrics())
				if res.Width < prev {
					t.Fatalf("width decreased from %d to %d at childW=%d", prev, res.Width, childW)
				}
				prev = res.Width
			}
		})
	}
}

func TestOriginTableMatchesRowCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		rows := make([]*block.Row, n)
		for i := range rows {
			rows[i] = dummy(10+i, 10)
		}
		def := &block.Def{Rows: rows}
		res := Measure(def, block.Unbounded(), DefaultMetrics())
		if len(res.Origins) != n {
			t.Errorf("n=%d: origin table length = %d", n, len(res.Origins))
		}
	}
}

func TestNegativeBudgetsClamped(t *testing.T) {
	def := &block.Def{Rows: []*block.Row{dummy(40, 20)}}
	res := Measure(def, block.Constraints{MaxWidth: -5, MaxHeight: -5}, DefaultMetrics())
	// Negative budgets degrade to unbounded measurement.
	want := Measure(def, block.Unbounded(), DefaultMetrics())
	if !reflect.DeepEqual(res, want) {
		t.Errorf("negative budgets: got %+v, want %+v", res, want)
	}
}

func TestBoundedBudgetClampsRows(t *testing.T) {
	rows := []*block.Row{dummy(500, 400)}
	def := &block.Def{Rows: rows}
	Measure(def, block.Constraints{MaxWidth: 100, MaxHeight: 80}, DefaultMetrics())
	if rows[0].Width != 100 {
		t.Errorf("row width = %d, want clamped to 100", rows[0].Width)
	}
	if rows[0].Height != 80 {
		t.Errorf("row height = %d, want clamped to 80", rows[0].Height)
	}
}

func TestPlace(t *testing.T) {
	m := DefaultMetrics()
	rows := []*block.Row{
		dummy(30, 26),
		statement(25, 28, 0, 40),
	}
	def := &block.Def{HasOutput: true, Rows: rows}
	res := Measure(def, block.Unbounded(), m)

	rects := Place(def, res)
	if len(rects) != len(rows) {
		t.Fatalf("got %d rects, want %d", len(rects), len(rows))
	}
	for i, r := range rects {
		if r.X != res.MarginLeft+res.Origins[i].X {
			t.Errorf("rect %d X = %d, want margin + origin = %d", i, r.X, res.MarginLeft+res.Origins[i].X)
		}
		if r.Y != res.Origins[i].Y {
			t.Errorf("rect %d Y = %d, want %d", i, r.Y, res.Origins[i].Y)
		}
		if r.Width != rows[i].Width || r.Height != rows[i].Height {
			t.Errorf("rect %d size = (%d, %d), want measured (%d, %d)", i, r.Width, r.Height, rows[i].Width, rows[i].Height)
		}
	}
}
