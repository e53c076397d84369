package engine

import "github.com/inamate/sketchboard/internal/geometry"

// Viewport maps screen coordinates onto the infinite canvas. Only panning is
// supported. The zero value has no offset.
type Viewport struct {
	offset geometry.Point
}

// Offset returns the current pan offset in screen units.
func (v Viewport) Offset() geometry.Point {
	return v.offset
}

// PanTo returns a viewport whose offset is o.
func (v Viewport) PanTo(o geometry.Point) Viewport {
	return Viewport{offset: o}
}

// Matrix returns the scene-to-screen transform.
func (v Viewport) Matrix() geometry.Matrix2D {
	return geometry.Translate(v.offset.X, v.offset.Y)
}

// ScreenToScene converts a pointer position into scene coordinates.
func (v Viewport) ScreenToScene(p geometry.Point) geometry.Point {
	return v.Matrix().Invert().Apply(p)
}

// SceneToScreen converts a scene position into screen coordinates.
func (v Viewport) SceneToScreen(p geometry.Point) geometry.Point {
	return v.Matrix().Apply(p)
}

// Transform returns the matrix attached to draw commands, or nil at the origin.
func (v Viewport) Transform() []float64 {
	m := v.Matrix()
	if m.IsIdentity() {
		return nil
	}
	return m.ToSlice()
}
