package block

// Kind identifies the layout behavior of a row.
//
// The set is closed: every algorithm that cares about row kinds switches
// exhaustively over these three values.
type Kind int

const (
	// KindDummy is a fields-only row with no attachment point.
	KindDummy Kind = iota
	// KindValue is a row with fields and an optional nested expression
	// block; it produces a socket on the block's outline.
	KindValue
	// KindStatement is a row with fields and an optional nested statement
	// sequence; it produces a notch spanning the nested content.
	KindStatement
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDummy:
		return "dummy"
	case KindValue:
		return "value"
	case KindStatement:
		return "statement"
	default:
		return "unknown"
	}
}

// Constraints are the measurement budgets for a layout pass.
// A zero dimension means unbounded.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unbounded returns constraints with no width or height budget.
func Unbounded() Constraints { return Constraints{} }

// Normalize clamps negative budgets to zero (unbounded). A negative budget
// is a caller contract violation; there is no meaningful partial result to
// produce, so the engine degrades to unbounded measurement instead.
func (c Constraints) Normalize() Constraints {
	if c.MaxWidth < 0 {
		c.MaxWidth = 0
	}
	if c.MaxHeight < 0 {
		c.MaxHeight = 0
	}
	return c
}

// ClampWidth limits w to the width budget. Unbounded budgets pass w through.
func (c Constraints) ClampWidth(w int) int {
	if c.MaxWidth > 0 && w > c.MaxWidth {
		return c.MaxWidth
	}
	return w
}

// ClampHeight limits h to the height budget.
func (c Constraints) ClampHeight(h int) int {
	if c.MaxHeight > 0 && h > c.MaxHeight {
		return c.MaxHeight
	}
	return h
}

// Row is one layout slot inside a block.
//
// The Min* and FieldHeight fields are inputs queried by the layout engine.
// FieldWidth, Width and Height are pass-scoped outputs: the engine assigns
// FieldWidth before the final measurement of each pass and Measure writes
// Width/Height back. Re-measuring with identical inputs is idempotent.
type Row struct {
	Kind Kind

	// MinFieldWidth is the horizontal space the row's own fields require.
	MinFieldWidth int
	// FieldHeight is the natural height of the row's fields.
	FieldHeight int
	// MinChildWidth is the space required by nested content, 0 if none.
	MinChildWidth int
	// MinChildHeight is the height of nested content, 0 if none.
	MinChildHeight int

	// FieldWidth is the field width assigned by the engine for this pass.
	FieldWidth int
	// Width and Height are the measured row dimensions for this pass.
	Width  int
	Height int
}

// Measure computes the row's dimensions from the assigned FieldWidth and
// the row's nested content, clamped to the given budgets. It must be called
// after the engine sets FieldWidth; calling it again with the same inputs
// produces the same result.
func (r *Row) Measure(c Constraints) {
	c = c.Normalize()
	r.Width = c.ClampWidth(r.FieldWidth + r.MinChildWidth)
	h := r.FieldHeight
	if r.MinChildHeight > h {
		h = r.MinChildHeight
	}
	r.Height = c.ClampHeight(h)
}

// Def describes a single block to be laid out: its ordered rows, connector
// flags and layout mode. Connector flags and layout mode are fixed for the
// block's lifetime; rows are owned exclusively by the definition and are
// re-measured in place on every layout pass.
type Def struct {
	ID    string
	Label string
	// Color is the fill color used when rendering, e.g. "#4a90d9".
	Color string

	HasPrevious bool
	HasNext     bool
	HasOutput   bool
	// InputsInline selects the inline layout mode: Dummy/Value rows pack
	// left-to-right and only Statement rows force a new line. When false
	// (external mode) every row occupies its own full-width line.
	InputsInline bool

	Rows []*Row
}

// HasValueInput reports whether any row is a Value row. External layout
// reserves a connector margin on the block's right edge when true.
func (d *Def) HasValueInput() bool {
	for _, r := range d.Rows {
		if r.Kind == KindValue {
			return true
		}
	}
	return false
}
