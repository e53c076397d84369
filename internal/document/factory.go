package document

import (
	"fmt"
	"slices"

	"github.com/inamate/sketchboard/internal/geometry"
	"github.com/inamate/sketchboard/internal/typeid"
)

// ParseKind maps a tool or kind name onto a Kind. "pencil" is accepted for freehand.
func ParseKind(name string) (Kind, error) {
	if name == "pencil" {
		return KindFreehand, nil
	}
	if k := Kind(name); slices.Contains(Kinds, k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

// Create allocates a new element of the given kind. When id is empty a fresh one is
// generated. Coordinates are stored exactly as given; callers normalize once the
// gesture that produced them has finished.
//
// A freehand element starts its stroke at (x1, y1).
func Create(kind Kind, x1, y1, x2, y2 float64, id string) (Element, error) {
	if !slices.Contains(Kinds, kind) {
		return Element{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	if id == "" {
		id = typeid.NewElementID()
	}

	e := Element{
		ID:   id,
		Kind: kind,
		X1:   x1,
		Y1:   y1,
		X2:   x2,
		Y2:   y2,
	}
	if kind == KindFreehand {
		e.Points = []geometry.Point{{X: x1, Y: y1}}
	}
	return e, nil
}

// Normalize puts the coordinates of line, rectangle, diamond and circle elements
// into canonical order. Lines keep their endpoints and only swap them so that
// (X1, Y1) sorts lexicographically first; boxes are rewritten to min/max corners.
// Other kinds are returned unchanged. Normalize is idempotent.
func Normalize(e Element) Element {
	switch e.Kind {
	case KindLine:
		if e.End().Less(e.Start()) {
			return e.WithCorners(e.X2, e.Y2, e.X1, e.Y1)
		}
		return e

	case KindRectangle, KindDiamond, KindCircle:
		return e.WithCorners(
			min(e.X1, e.X2), min(e.Y1, e.Y2),
			max(e.X1, e.X2), max(e.Y1, e.Y2),
		)
	}
	return e
}
