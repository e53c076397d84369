package transform

import (
	"testing"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
)

func TestDragBox(t *testing.T) {
	rect := document.Element{Kind: document.KindRectangle, X1: 10, Y1: 10, X2: 50, Y2: 30}
	grip := Grab(geometry.Pt(20, 15), rect)

	got := Drag(geometry.Pt(120, 215), grip, rect)
	want := [4]float64{110, 210, 150, 230}
	if corners(got) != want {
		t.Errorf("Drag = %v, want %v", corners(got), want)
	}
}

func TestDragFreehandUsesPerPointOffsets(t *testing.T) {
	stroke := document.Element{
		Kind:   document.KindFreehand,
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 9, Y: 7}},
	}
	grip := Grab(geometry.Pt(3, 3), stroke)

	// Several coalesced frames all derive from the start state.
	var got document.Element
	for _, p := range []geometry.Point{{X: 4, Y: 4}, {X: 50, Y: 60}, {X: 13, Y: 23}} {
		got = Drag(p, grip, stroke)
	}

	want := []geometry.Point{{X: 10, Y: 20}, {X: 15, Y: 22}, {X: 19, Y: 27}}
	for i := range want {
		if got.Points[i] != want[i] {
			t.Errorf("Points[%d] = %v, want %v", i, got.Points[i], want[i])
		}
	}
	if stroke.Points[0] != (geometry.Point{}) {
		t.Error("Drag mutated the gesture-start stroke")
	}
}

func TestTranslate(t *testing.T) {
	line := document.Element{Kind: document.KindLine, X1: 1, Y1: 2, X2: 3, Y2: 4}
	if got := corners(Translate(geometry.Pt(10, -1), line)); got != [4]float64{11, 1, 13, 3} {
		t.Errorf("Translate(line) = %v", got)
	}

	stroke := document.Element{Kind: document.KindFreehand, Points: []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 3}}}
	moved := Translate(geometry.Pt(-1, 1), stroke)
	if moved.Points[0] != geometry.Pt(0, 2) || moved.Points[1] != geometry.Pt(1, 4) {
		t.Errorf("Translate(stroke) = %v", moved.Points)
	}
	if stroke.Points[0] != geometry.Pt(1, 1) {
		t.Error("Translate mutated the input stroke")
	}
}
