package sink

import (
	"encoding/json"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/errors"
	"github.com/snapblocks/snapblocks/pkg/geom"
)

// Layout is the JSON export of a measured and outlined block.
type Layout struct {
	ID     string `json:"id,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	NextOffset int `json:"next_offset"`
	MarginLeft int `json:"margin_left,omitempty"`

	Origins []geom.Point `json:"origins"`
	Rows    []geom.Rect  `json:"rows"`

	Path     string `json:"path"`
	Contours int    `json:"contours"`
}

// RenderJSON exports the layout result and outline path as indented JSON,
// for consumers that draw the block themselves.
func RenderJSON(def *block.Def, res layout.Result, p geom.Path) ([]byte, error) {
	out := Layout{
		ID:         def.ID,
		Width:      res.Width,
		Height:     res.Height,
		NextOffset: res.NextOffset,
		MarginLeft: res.MarginLeft,
		Origins:    res.Origins,
		Rows:       layout.Place(def, res),
		Path:       p.Data(),
		Contours:   p.Contours(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize layout")
	}
	return data, nil
}
