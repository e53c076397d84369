package freehand

import (
	"math"

	"github.com/inamate/sketchboard/internal/geometry"
)

// Outliner converts raw stroke samples into a closed polygon approximating the
// stroke drawn with a brush of the given width.
type Outliner interface {
	Outline(points []geometry.Point, width float64) []geometry.Point
}

// OutlinerFunc adapts a plain function to the Outliner interface.
type OutlinerFunc func(points []geometry.Point, width float64) []geometry.Point

func (f OutlinerFunc) Outline(points []geometry.Point, width float64) []geometry.Point {
	return f(points, width)
}

// Ribbon is the default Outliner. It offsets every sample along its local normal
// by half the width on both sides and joins the two offset rails with round caps:
// forward rail, end cap, backward rail reversed, start cap.
type Ribbon struct {
	// CapSegments is the number of segments per semicircular cap. Zero means 8.
	CapSegments int
}

func (r Ribbon) capSegments() int {
	if r.CapSegments <= 0 {
		return 8
	}
	return r.CapSegments
}

// Outline implements Outliner.
func (r Ribbon) Outline(points []geometry.Point, width float64) []geometry.Point {
	pts := dedupe(points)
	if len(pts) == 0 || width <= 0 {
		return nil
	}

	radius := width / 2
	steps := r.capSegments()

	if len(pts) == 1 {
		// A tap draws a dot.
		return arc(pts[0], radius, 0, -2*math.Pi, 2*steps)[:2*steps]
	}

	n := len(pts)
	left := make([]geometry.Point, n)
	right := make([]geometry.Point, n)
	normals := make([]geometry.Point, n)
	for i := range pts {
		prev, next := pts[max(i-1, 0)], pts[min(i+1, n-1)]
		normal := next.Sub(prev).Normalize().Perp()
		normals[i] = normal
		left[i] = pts[i].Add(normal.Scale(radius))
		right[i] = pts[i].Sub(normal.Scale(radius))
	}

	out := make([]geometry.Point, 0, 2*n+2*steps)
	out = append(out, left...)

	// End cap turns from the left rail through the stroke direction to the right rail.
	endAngle := math.Atan2(normals[n-1].Y, normals[n-1].X)
	capPts := arc(pts[n-1], radius, endAngle, endAngle-math.Pi, steps)
	out = append(out, capPts[1:len(capPts)-1]...)

	for i := n - 1; i >= 0; i-- {
		out = append(out, right[i])
	}

	// Start cap turns from the right rail back around to the left rail.
	startAngle := math.Atan2(normals[0].Y, normals[0].X) - math.Pi
	capPts = arc(pts[0], radius, startAngle, startAngle-math.Pi, steps)
	out = append(out, capPts[1:len(capPts)-1]...)

	return out
}

// arc samples segments+1 points on the circle around c from angle from to angle to.
func arc(c geometry.Point, radius, from, to float64, segments int) []geometry.Point {
	out := make([]geometry.Point, segments+1)
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/float64(segments)
		out[i] = geometry.Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	return out
}

// dedupe drops consecutive duplicate samples, which carry no direction.
func dedupe(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
