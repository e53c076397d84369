package freehand

import (
	"github.com/inamate/sketchboard/internal/geometry"
)

// SmoothPath threads quadratic curves through an outline polygon. Outlines with
// fewer than four points produce an empty path. The result starts with a move to
// the first point, uses every following vertex as a control point with the
// midpoint to its successor as the endpoint, and is closed.
func SmoothPath(outline []geometry.Point) []geometry.PathCommand {
	n := len(outline)
	if n < 4 {
		return nil
	}

	cmds := make([]geometry.PathCommand, 0, n)
	cmds = append(cmds,
		geometry.MoveTo(outline[0]),
		geometry.QuadTo(outline[1], geometry.Midpoint(outline[1], outline[2])),
	)
	for i := 2; i <= n-2; i++ {
		cmds = append(cmds, geometry.QuadTo(outline[i], geometry.Midpoint(outline[i], outline[i+1])))
	}
	return append(cmds, geometry.ClosePath())
}

// Stroke outlines the raw samples with o and smooths the result.
func Stroke(points []geometry.Point, width float64, o Outliner) []geometry.PathCommand {
	if o == nil {
		o = Ribbon{}
	}
	return SmoothPath(o.Outline(points, width))
}
