// Package geometry holds the stateless math shared by hit-testing, resizing and
// stroke smoothing. All coordinates are scene-space pixels with y growing downward.
package geometry

import "math"

// Tolerance is the pixel distance within which a pointer counts as "on" a handle
// or a line. It is the same for every shape kind.
const Tolerance = 5.0

// Point is a 2D coordinate in scene space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector in the direction of p, or the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns p rotated by 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Less reports whether p sorts before q in lexicographic order:
// smaller x first, ties broken by smaller y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// DistanceFromSegment returns the shortest distance from p to the segment [a, b].
// The projection of p onto the line is clamped to the segment, so points beyond
// either end measure to the nearest endpoint. A zero-length segment degenerates
// to the distance between p and a.
func DistanceFromSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return Distance(p, a)
	}

	t := p.Sub(a).Dot(ab) / lenSq
	t = max(0, min(1, t))

	return Distance(p, a.Add(ab.Scale(t)))
}

// WithinTolerance reports whether p and q are at most Tolerance apart.
func WithinTolerance(p, q Point) bool {
	return Distance(p, q) <= Tolerance
}
