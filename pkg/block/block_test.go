package block

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDummy, "dummy"},
		{KindValue, "value"},
		{KindStatement, "statement"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstraintsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Constraints
		want Constraints
	}{
		{"zero stays unbounded", Constraints{}, Constraints{}},
		{"positive untouched", Constraints{MaxWidth: 100, MaxHeight: 80}, Constraints{MaxWidth: 100, MaxHeight: 80}},
		{"negative width clamped", Constraints{MaxWidth: -1, MaxHeight: 80}, Constraints{MaxHeight: 80}},
		{"negative height clamped", Constraints{MaxWidth: 100, MaxHeight: -7}, Constraints{MaxWidth: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConstraintsClamp(t *testing.T) {
	c := Constraints{MaxWidth: 100, MaxHeight: 50}

	if got := c.ClampWidth(120); got != 100 {
		t.Errorf("ClampWidth(120) = %d, want 100", got)
	}
	if got := c.ClampWidth(60); got != 60 {
		t.Errorf("ClampWidth(60) = %d, want 60", got)
	}
	if got := c.ClampHeight(70); got != 50 {
		t.Errorf("ClampHeight(70) = %d, want 50", got)
	}

	// Unbounded budgets pass everything through.
	u := Unbounded()
	if got := u.ClampWidth(100000); got != 100000 {
		t.Errorf("unbounded ClampWidth = %d, want passthrough", got)
	}
	if got := u.ClampHeight(100000); got != 100000 {
		t.Errorf("unbounded ClampHeight = %d, want passthrough", got)
	}
}

func TestRowMeasure(t *testing.T) {
	tests := []struct {
		name       string
		row        Row
		c          Constraints
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "fields only",
			row:        Row{FieldWidth: 40, FieldHeight: 22},
			c:          Unbounded(),
			wantWidth:  40,
			wantHeight: 22,
		},
		{
			name:       "child widens and tallens",
			row:        Row{FieldWidth: 40, FieldHeight: 22, MinChildWidth: 30, MinChildHeight: 50},
			c:          Unbounded(),
			wantWidth:  70,
			wantHeight: 50,
		},
		{
			name:       "fields taller than child",
			row:        Row{FieldWidth: 40, FieldHeight: 60, MinChildHeight: 50},
			c:          Unbounded(),
			wantWidth:  40,
			wantHeight: 60,
		},
		{
			name:       "budget clamps both axes",
			row:        Row{FieldWidth: 400, FieldHeight: 300},
			c:          Constraints{MaxWidth: 100, MaxHeight: 80},
			wantWidth:  100,
			wantHeight: 80,
		},
		{
			name:       "negative budget treated as unbounded",
			row:        Row{FieldWidth: 400, FieldHeight: 300},
			c:          Constraints{MaxWidth: -1, MaxHeight: -1},
			wantWidth:  400,
			wantHeight: 300,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.row.Measure(tt.c)
			if tt.row.Width != tt.wantWidth || tt.row.Height != tt.wantHeight {
				t.Errorf("measured (%d, %d), want (%d, %d)", tt.row.Width, tt.row.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestRowMeasureIdempotent(t *testing.T) {
	r := Row{Kind: KindValue, FieldWidth: 35, FieldHeight: 24, MinChildWidth: 20, MinChildHeight: 30}
	r.Measure(Unbounded())
	w, h := r.Width, r.Height
	r.Measure(Unbounded())
	if r.Width != w || r.Height != h {
		t.Errorf("second Measure changed result: (%d, %d) -> (%d, %d)", w, h, r.Width, r.Height)
	}
}

func TestDefHasValueInput(t *testing.T) {
	tests := []struct {
		name string
		rows []*Row
		want bool
	}{
		{"no rows", nil, false},
		{"dummy and statement only", []*Row{{Kind: KindDummy}, {Kind: KindStatement}}, false},
		{"value present", []*Row{{Kind: KindDummy}, {Kind: KindValue}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Def{Rows: tt.rows}
			if got := d.HasValueInput(); got != tt.want {
				t.Errorf("HasValueInput() = %v, want %v", got, tt.want)
			}
		})
	}
}
