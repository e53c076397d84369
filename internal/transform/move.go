package transform

import (
	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
)

// Grip records where the pointer grabbed an element at the start of a move. Boxed
// kinds and text keep one offset to (X1, Y1); freehand strokes keep one offset per
// sampled point.
type Grip struct {
	Offset  geometry.Point
	Offsets []geometry.Point
}

// Grab captures the offsets from every anchor of e to the pointer at p.
func Grab(p geometry.Point, e document.Element) Grip {
	if e.Kind == document.KindFreehand {
		offsets := make([]geometry.Point, len(e.Points))
		for i, pt := range e.Points {
			offsets[i] = p.Sub(pt)
		}
		return Grip{Offsets: offsets}
	}
	return Grip{Offset: p.Sub(e.Start())}
}

// Drag positions e so that its anchors sit at their captured offsets from p. The
// element's size is preserved. e must be the element the grip was taken from.
func Drag(p geometry.Point, g Grip, e document.Element) document.Element {
	if e.Kind == document.KindFreehand {
		pts := make([]geometry.Point, len(g.Offsets))
		for i, off := range g.Offsets {
			pts[i] = p.Sub(off)
		}
		e.Points = pts
		return e
	}

	origin := p.Sub(g.Offset)
	w, h := e.X2-e.X1, e.Y2-e.Y1
	return e.WithCorners(origin.X, origin.Y, origin.X+w, origin.Y+h)
}

// Translate shifts every coordinate of e by delta.
func Translate(delta geometry.Point, e document.Element) document.Element {
	if e.Kind == document.KindFreehand {
		pts := make([]geometry.Point, len(e.Points))
		for i, pt := range e.Points {
			pts[i] = pt.Add(delta)
		}
		e.Points = pts
		return e
	}
	return e.WithCorners(e.X1+delta.X, e.Y1+delta.Y, e.X2+delta.X, e.Y2+delta.Y)
}
