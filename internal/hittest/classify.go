package hittest

import (
	"errors"
	"fmt"
	"math"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
)

// diamondBand is the half-width of the band around the diamond outline, measured
// in the normalized diamond metric, inside which a point counts as on the border.
const diamondBand = 0.1

// ErrDegenerateGeometry is reported for diamonds and circles with zero extent.
// Classify recovers from it by returning None.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// circleSectors lists the tag for each π/4 sector of a circle, starting at angle 0
// (pointing right) and turning clockwise on screen, where y grows downward.
var circleSectors = [8]Tag{Right, BottomRight, Bottom, BottomLeft, Left, TopLeft, Top, TopRight}

// Validate reports ErrDegenerateGeometry for diamonds with no width or height and
// circles with no radius.
func Validate(e document.Element) error {
	switch e.Kind {
	case document.KindDiamond:
		if e.X1 == e.X2 || e.Y1 == e.Y2 {
			return fmt.Errorf("diamond %s: %w", e.ID, ErrDegenerateGeometry)
		}
	case document.KindCircle:
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			return fmt.Errorf("circle %s: %w", e.ID, ErrDegenerateGeometry)
		}
	}
	return nil
}

// Classify returns the tag describing where p lies relative to e, or None.
func Classify(p geometry.Point, e document.Element) Tag {
	switch e.Kind {
	case document.KindLine:
		return classifyLine(p, e)
	case document.KindRectangle:
		return classifyRectangle(p, e)
	case document.KindDiamond:
		return classifyDiamond(p, e)
	case document.KindCircle:
		return classifyCircle(p, e)
	case document.KindFreehand:
		if len(e.Points) > 0 && e.Bounds().Contains(p) {
			return Inside
		}
	case document.KindText:
		if e.Bounds().Contains(p) {
			return Inside
		}
	}
	return None
}

func classifyLine(p geometry.Point, e document.Element) Tag {
	a, b := e.Start(), e.End()
	switch {
	case geometry.WithinTolerance(p, a):
		return Start
	case geometry.WithinTolerance(p, b):
		return End
	case geometry.DistanceFromSegment(p, a, b) < geometry.Tolerance:
		return OnLine
	}
	return None
}

func classifyRectangle(p geometry.Point, e document.Element) Tag {
	corners := []struct {
		tag Tag
		at  geometry.Point
	}{
		{TopLeft, geometry.Pt(e.X1, e.Y1)},
		{TopRight, geometry.Pt(e.X2, e.Y1)},
		{BottomLeft, geometry.Pt(e.X1, e.Y2)},
		{BottomRight, geometry.Pt(e.X2, e.Y2)},
	}
	for _, c := range corners {
		if geometry.WithinTolerance(p, c.at) {
			return c.tag
		}
	}

	if e.Bounds().Contains(p) {
		return Inside
	}
	return None
}

func classifyDiamond(p geometry.Point, e document.Element) Tag {
	if Validate(e) != nil {
		return None
	}

	c := e.Bounds().Center()
	hw := math.Abs(e.X2-e.X1) / 2
	hh := math.Abs(e.Y2-e.Y1) / 2

	// The diamond's vertices sit on the midpoints of its bounding-box edges; these
	// are the points an edge resize drags.
	vertices := []struct {
		tag Tag
		at  geometry.Point
	}{
		{Top, geometry.Pt(c.X, c.Y-hh)},
		{Bottom, geometry.Pt(c.X, c.Y+hh)},
		{Left, geometry.Pt(c.X-hw, c.Y)},
		{Right, geometry.Pt(c.X+hw, c.Y)},
	}
	for _, v := range vertices {
		if geometry.WithinTolerance(p, v.at) {
			return v.tag
		}
	}

	dx, dy := p.X-c.X, p.Y-c.Y
	metric := math.Abs(dx)/hw + math.Abs(dy)/hh

	switch {
	case math.Abs(metric-1) <= diamondBand:
		return quadrant(dx, dy)
	case metric < 1-diamondBand:
		return Inside
	}
	return None
}

// quadrant picks a corner tag from the signs of the offset from a center.
// Offsets on an axis go to the quadrant clockwise of it, so opposite points
// always get opposite tags.
func quadrant(dx, dy float64) Tag {
	left := dx < 0 || (dx == 0 && dy > 0)
	up := dy < 0 || (dy == 0 && dx > 0)
	switch {
	case up && left:
		return TopLeft
	case up:
		return TopRight
	case left:
		return BottomLeft
	default:
		return BottomRight
	}
}

func classifyCircle(p geometry.Point, e document.Element) Tag {
	if Validate(e) != nil {
		return None
	}

	c := e.Bounds().Center()
	r := geometry.Distance(e.Start(), e.End()) / 2
	d := geometry.Distance(p, c)

	// Exact handle points first, so a pointer right on a handle gets its tag even
	// when rounding would put it in a neighbouring sector.
	for i, tag := range circleSectors {
		angle := float64(i) * math.Pi / 4
		at := geometry.Pt(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle))
		if geometry.WithinTolerance(p, at) {
			return tag
		}
	}

	switch {
	case math.Abs(d-r) <= geometry.Tolerance:
		return circleSectors[sector(p.Sub(c))]
	case d < r-geometry.Tolerance:
		return Inside
	}
	return None
}

// sector returns the index of the π/4-wide sector, centred on the multiples of π/4,
// that the vector v points into.
func sector(v geometry.Point) int {
	angle := math.Atan2(v.Y, v.X)
	i := int(math.Round(angle / (math.Pi / 4)))
	return (i%8 + 8) % 8
}
