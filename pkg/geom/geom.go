// Package geom provides the integer vector-path primitives used by the
// block outline builder.
//
// Paths are sequences of contours. A contour begins with a MoveTo, continues
// with LineTo segments and ends with a Close that returns to the contour's
// starting point. All coordinates are integer pixels; there is no curve or
// interpolation support, so two paths built from identical inputs are always
// bit-identical.
//
// Secondary contours combined with [Path.Data] and an even-odd fill rule
// punch holes into the outer silhouette (open inline sockets).
package geom

import (
	"bytes"
	"fmt"
)

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Op identifies a path segment operation.
type Op int

const (
	// OpMove starts a new contour at the segment point.
	OpMove Op = iota
	// OpLine draws a straight line to the segment point.
	OpLine
	// OpClose returns to the current contour's starting point.
	OpClose
)

// String returns the SVG path-data letter for the operation.
func (o Op) String() string {
	switch o {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpClose:
		return "Z"
	default:
		return "?"
	}
}

// Segment is a single path operation. For OpClose, To holds the contour
// start the segment returns to.
type Segment struct {
	Op Op
	To Point
}

// Path is an ordered list of segments forming one or more contours.
// The zero value is an empty path ready for use.
type Path struct {
	segs  []Segment
	start Point // start of the current (last-opened) contour
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y int) {
	p.start = Point{X: x, Y: y}
	p.segs = append(p.segs, Segment{Op: OpMove, To: p.start})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y int) {
	p.segs = append(p.segs, Segment{Op: OpLine, To: Point{X: x, Y: y}})
}

// Close ends the current contour, returning to its starting point.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: OpClose, To: p.start})
}

// Segments returns the path's segments in drawing order.
// The returned slice is owned by the path and must not be modified.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Len returns the number of segments in the path.
func (p *Path) Len() int { return len(p.segs) }

// Start returns the starting point of the first contour.
// Returns the zero point for an empty path.
func (p *Path) Start() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.segs[0].To
}

// End returns the final pen position, accounting for contour closes.
// Returns the zero point for an empty path.
func (p *Path) End() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.segs[len(p.segs)-1].To
}

// Contours returns the number of contours (MoveTo segments) in the path.
func (p *Path) Contours() int {
	n := 0
	for _, s := range p.segs {
		if s.Op == OpMove {
			n++
		}
	}
	return n
}

// Closed reports whether every contour in the path ends with a Close that
// returns to the contour's starting point. An empty path is closed.
func (p *Path) Closed() bool {
	var start Point
	open := false
	for _, s := range p.segs {
		switch s.Op {
		case OpMove:
			if open {
				return false
			}
			start = s.To
			open = true
		case OpClose:
			if !open || s.To != start {
				return false
			}
			open = false
		}
	}
	return !open
}

// Data renders the path as an SVG path-data string, e.g. "M 0 0 L 10 0 Z".
// Output is deterministic for identical paths.
func (p *Path) Data() string {
	var buf bytes.Buffer
	for i, s := range p.segs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if s.Op == OpClose {
			buf.WriteString("Z")
			continue
		}
		fmt.Fprintf(&buf, "%s %d %d", s.Op, s.To.X, s.To.Y)
	}
	return buf.String()
}
