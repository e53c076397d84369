package document

import (
	"github.com/inamate/sketchboard/internal/geometry"
)

// Kind discriminates the closed set of drawable element variants.
type Kind string

const (
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindDiamond   Kind = "diamond"
	KindCircle    Kind = "circle"
	KindFreehand  Kind = "freehand"
	KindText      Kind = "text"
)

// Kinds lists every element kind in tool-bar order.
var Kinds = []Kind{KindLine, KindRectangle, KindDiamond, KindCircle, KindFreehand, KindText}

// Element is the atomic drawable unit. Which fields are meaningful depends on Kind:
// line, rectangle, diamond and circle use the two corners (for a line, the two
// endpoints), freehand uses Points, and text uses the anchor (X1, Y1), the measured
// extent (X2, Y2) and Text.
//
// Elements are values. Every update produces a new Element; slices are never
// written through after the element has been placed in a Scene.
type Element struct {
	ID     string           `json:"id"`
	Kind   Kind             `json:"kind"`
	X1     float64          `json:"x1"`
	Y1     float64          `json:"y1"`
	X2     float64          `json:"x2"`
	Y2     float64          `json:"y2"`
	Points []geometry.Point `json:"points,omitempty"`
	Text   string           `json:"text,omitempty"`
}

// Start returns (X1, Y1).
func (e Element) Start() geometry.Point {
	return geometry.Point{X: e.X1, Y: e.Y1}
}

// End returns (X2, Y2).
func (e Element) End() geometry.Point {
	return geometry.Point{X: e.X2, Y: e.Y2}
}

// Bounds returns the axis-aligned box covered by the element. For freehand strokes
// this is the box around the sampled points.
func (e Element) Bounds() geometry.Rect {
	if e.Kind == KindFreehand {
		r, _ := geometry.BoundingBox(e.Points)
		return r
	}
	return geometry.RectFromCorners(e.Start(), e.End())
}

// IsBoxed reports whether the kind is described by two opposite corners and gets
// normalized at the end of a gesture.
func (k Kind) IsBoxed() bool {
	switch k {
	case KindLine, KindRectangle, KindDiamond, KindCircle:
		return true
	}
	return false
}

// WithCorners returns a copy of e with new corner coordinates.
func (e Element) WithCorners(x1, y1, x2, y2 float64) Element {
	e.X1, e.Y1, e.X2, e.Y2 = x1, y1, x2, y2
	return e
}

// WithPoint returns a copy of e with p appended to its stroke. The returned
// element never shares a backing array with e.
func (e Element) WithPoint(p geometry.Point) Element {
	pts := make([]geometry.Point, len(e.Points), len(e.Points)+1)
	copy(pts, e.Points)
	e.Points = append(pts, p)
	return e
}
