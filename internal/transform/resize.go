// Package transform recomputes element coordinates for resize and move gestures.
// Every function takes the element as it was when the gesture started and returns
// a new value; nothing is modified in place.
package transform

import (
	"errors"
	"fmt"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
	"github.com/inamate/sketchboard/internal/hittest"
)

// ErrInvalidHandle is returned when a handle tag cannot resize the given kind.
var ErrInvalidHandle = errors.New("invalid handle")

// Resize drags the handle identified by tag to p, keeping the opposite corner or
// edge of e fixed. On ErrInvalidHandle the element is returned unchanged.
func Resize(p geometry.Point, tag hittest.Tag, e document.Element) (document.Element, error) {
	var (
		out document.Element
		ok  bool
	)

	switch e.Kind {
	case document.KindLine, document.KindRectangle:
		out, ok = resizeCorner(p, tag, e)
	case document.KindCircle:
		out, ok = resizeCorner(p, tag, e)
		if !ok {
			out, ok = resizeEdge(p, tag, e)
		}
	case document.KindDiamond:
		out, ok = resizeEdge(p, tag, e)
	}

	if !ok {
		return e, fmt.Errorf("%w: %q on %s", ErrInvalidHandle, tag, e.Kind)
	}
	return out, nil
}

// resizeCorner moves the corner named by tag straight to p.
func resizeCorner(p geometry.Point, tag hittest.Tag, e document.Element) (document.Element, bool) {
	switch tag {
	case hittest.TopLeft, hittest.Start:
		return e.WithCorners(p.X, p.Y, e.X2, e.Y2), true
	case hittest.TopRight:
		return e.WithCorners(e.X1, p.Y, p.X, e.Y2), true
	case hittest.BottomLeft:
		return e.WithCorners(p.X, e.Y1, e.X2, p.Y), true
	case hittest.BottomRight, hittest.End:
		return e.WithCorners(e.X1, e.Y1, p.X, p.Y), true
	}
	return e, false
}

// resizeEdge moves the edge named by tag to p and mirrors the opposite edge to
// old_low + old_high - new, which keeps the box centered where it was.
func resizeEdge(p geometry.Point, tag hittest.Tag, e document.Element) (document.Element, bool) {
	switch tag {
	case hittest.Top:
		return e.WithCorners(e.X1, p.Y, e.X2, e.Y1+e.Y2-p.Y), true
	case hittest.Bottom:
		return e.WithCorners(e.X1, e.Y1+e.Y2-p.Y, e.X2, p.Y), true
	case hittest.Left:
		return e.WithCorners(p.X, e.Y1, e.X1+e.X2-p.X, e.Y2), true
	case hittest.Right:
		return e.WithCorners(e.X1+e.X2-p.X, e.Y1, p.X, e.Y2), true
	}
	return e, false
}
