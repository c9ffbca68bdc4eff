// Package blockdef defines the serialized form of block definitions.
//
// A [Definition] is the storage and wire representation of a block: JSON on
// the API and on disk, BSON in MongoDB. [Definition.Block] converts it into
// the in-memory model the layout engine consumes; [FromBlock] goes the other
// way.
package blockdef

import (
	"encoding/json"
	"os"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/errors"
)

// Row kind names used on the wire.
const (
	KindDummy     = "dummy"
	KindValue     = "value"
	KindStatement = "statement"
)

// RowDef is the serialized form of a single block row.
type RowDef struct {
	Kind string `json:"kind" bson:"kind"`

	FieldWidth  int `json:"field_width" bson:"field_width"`
	FieldHeight int `json:"field_height" bson:"field_height"`
	ChildWidth  int `json:"child_width,omitempty" bson:"child_width,omitempty"`
	ChildHeight int `json:"child_height,omitempty" bson:"child_height,omitempty"`
}

// Definition is the serialized form of a block.
type Definition struct {
	ID    string `json:"id" bson:"_id"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`

	HasPrevious  bool `json:"has_previous,omitempty" bson:"has_previous,omitempty"`
	HasNext      bool `json:"has_next,omitempty" bson:"has_next,omitempty"`
	HasOutput    bool `json:"has_output,omitempty" bson:"has_output,omitempty"`
	InputsInline bool `json:"inputs_inline,omitempty" bson:"inputs_inline,omitempty"`

	Rows []RowDef `json:"rows" bson:"rows"`
}

// kindFromString maps a wire kind name to the model kind.
func kindFromString(s string) (block.Kind, error) {
	switch s {
	case KindDummy:
		return block.KindDummy, nil
	case KindValue:
		return block.KindValue, nil
	case KindStatement:
		return block.KindStatement, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidKind, "unknown row kind %q", s)
	}
}

// Validate checks the definition for structural problems: a safe ID, a known
// kind per row, non-negative dimensions and a valid color.
func (d *Definition) Validate() error {
	if err := errors.ValidateBlockID(d.ID); err != nil {
		return err
	}
	if err := errors.ValidateColor(d.Color); err != nil {
		return err
	}
	if len(d.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidDefinition, "block %q has no rows", d.ID)
	}
	for i, r := range d.Rows {
		if _, err := kindFromString(r.Kind); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDefinition, err, "block %q row %d", d.ID, i)
		}
		if r.FieldWidth < 0 || r.FieldHeight < 0 || r.ChildWidth < 0 || r.ChildHeight < 0 {
			return errors.New(errors.ErrCodeInvalidDefinition, "block %q row %d has negative dimensions", d.ID, i)
		}
	}
	return nil
}

// Block converts the definition into the layout engine's model.
// The definition must be valid; Block validates first and reports the same
// errors [Definition.Validate] would.
func (d *Definition) Block() (*block.Def, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	def := &block.Def{
		ID:           d.ID,
		Label:        d.Label,
		Color:        d.Color,
		HasPrevious:  d.HasPrevious,
		HasNext:      d.HasNext,
		HasOutput:    d.HasOutput,
		InputsInline: d.InputsInline,
		Rows:         make([]*block.Row, len(d.Rows)),
	}
	for i, r := range d.Rows {
		kind, err := kindFromString(r.Kind)
		if err != nil {
			return nil, err
		}
		def.Rows[i] = &block.Row{
			Kind:           kind,
			MinFieldWidth:  r.FieldWidth,
			FieldHeight:    r.FieldHeight,
			MinChildWidth:  r.ChildWidth,
			MinChildHeight: r.ChildHeight,
		}
	}
	return def, nil
}

// FromBlock converts an in-memory block back into its serialized form.
// Pass-scoped measurement outputs are not carried over.
func FromBlock(def *block.Def) *Definition {
	d := &Definition{
		ID:           def.ID,
		Label:        def.Label,
		Color:        def.Color,
		HasPrevious:  def.HasPrevious,
		HasNext:      def.HasNext,
		HasOutput:    def.HasOutput,
		InputsInline: def.InputsInline,
		Rows:         make([]RowDef, len(def.Rows)),
	}
	for i, r := range def.Rows {
		d.Rows[i] = RowDef{
			Kind:        r.Kind.String(),
			FieldWidth:  r.MinFieldWidth,
			FieldHeight: r.FieldHeight,
			ChildWidth:  r.MinChildWidth,
			ChildHeight: r.MinChildHeight,
		}
	}
	return d
}

// Unmarshal parses and validates a JSON definition.
func Unmarshal(data []byte) (*Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse block definition")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal serializes the definition as indented JSON.
func Marshal(d *Definition) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize block definition")
	}
	return data, nil
}

// ReadFile loads and validates a JSON definition from disk.
func ReadFile(path string) (*Definition, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "block definition %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read %s", path)
	}
	return Unmarshal(data)
}

// WriteFile writes the definition to disk as indented JSON.
func WriteFile(path string, d *Definition) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", path)
	}
	return nil
}
