package layout

// Metrics holds the fixed pixel dimensions the layout engine and outline
// builder share. All values are integer pixels. The zero value is not
// usable; start from [DefaultMetrics] or load overrides from configuration.
type Metrics struct {
	// MinWidth is the floor width of a block, matching an empty row.
	MinWidth int `toml:"min_width" json:"min_width" bson:"min_width"`
	// MinHeight is the floor height of a block, matching an empty row.
	MinHeight int `toml:"min_height" json:"min_height" bson:"min_height"`

	// StatementIndent is the horizontal space reserved to the right of a
	// Statement row's fields for the nested statement connector.
	StatementIndent int `toml:"statement_indent" json:"statement_indent" bson:"statement_indent"`
	// StatementBottomHeight is the vertical gap left after a Statement row
	// for the closing connector notch.
	StatementBottomHeight int `toml:"statement_bottom_height" json:"statement_bottom_height" bson:"statement_bottom_height"`

	// NotchDepth is the perpendicular size of a connector notch. It is the
	// margin added for output connectors (left) and next connectors (bottom).
	NotchDepth int `toml:"notch_depth" json:"notch_depth" bson:"notch_depth"`
	// NotchWidth is the parallel size of a connector notch along its edge.
	NotchWidth int `toml:"notch_width" json:"notch_width" bson:"notch_width"`
	// CornerOffset is the distance between a block corner and the start of
	// the nearest connector notch.
	CornerOffset int `toml:"corner_offset" json:"corner_offset" bson:"corner_offset"`
}

// DefaultMetrics returns the standard block dimensions.
func DefaultMetrics() Metrics {
	// StatementIndent must cover CornerOffset + NotchWidth so the nested
	// attachment notch fits inside the carve; MinHeight must cover
	// CornerOffset + NotchWidth so the output tab fits the left edge.
	return Metrics{
		MinWidth:              48,
		MinHeight:             40,
		StatementIndent:       32,
		StatementBottomHeight: 24,
		NotchDepth:            12,
		NotchWidth:            20,
		CornerOffset:          8,
	}
}
