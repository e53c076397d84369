// Package freehand turns a pressure-less pointer trail into a fillable outline.
//
// Conversion happens in two stages. An Outliner widens the raw samples into a
// closed ribbon polygon of the brush width. SmoothPath then threads quadratic
// curves through that polygon: every vertex becomes a control point and every
// midpoint between neighbours becomes an on-curve endpoint, which gives a
// C1-continuous outline without storing tangents.
//
//	outline := freehand.Ribbon{}.Outline(points, 8)
//	path := freehand.SmoothPath(outline)
package freehand
