package hittest

import (
	"errors"
	"math"
	"testing"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
)

func element(kind document.Kind, x1, y1, x2, y2 float64) document.Element {
	return document.Element{ID: string(kind), Kind: kind, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func TestClassifyRectangle(t *testing.T) {
	rect := element(document.KindRectangle, 10, 10, 50, 50)

	tests := []struct {
		name string
		p    geometry.Point
		want Tag
	}{
		{"top-left corner", geometry.Pt(10, 10), TopLeft},
		{"near top-left corner", geometry.Pt(13, 12), TopLeft},
		{"top-right corner", geometry.Pt(50, 10), TopRight},
		{"bottom-left corner", geometry.Pt(10, 50), BottomLeft},
		{"bottom-right corner", geometry.Pt(49, 52), BottomRight},
		{"center", geometry.Pt(30, 30), Inside},
		{"on edge", geometry.Pt(30, 10), Inside},
		{"far away", geometry.Pt(100, 100), None},
		{"just outside edge", geometry.Pt(30, 9), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, rect); got != tt.want {
				t.Errorf("Classify(%v, rect) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyRectangleUnnormalized(t *testing.T) {
	// Mid-drag a rectangle can be stored with its corners swapped. The handle names
	// follow the stored coordinates and containment still works.
	rect := element(document.KindRectangle, 50, 50, 10, 10)

	if got := Classify(geometry.Pt(50, 50), rect); got != TopLeft {
		t.Errorf("Classify((50,50)) = %q, want %q", got, TopLeft)
	}
	if got := Classify(geometry.Pt(30, 30), rect); got != Inside {
		t.Errorf("Classify((30,30)) = %q, want %q", got, Inside)
	}
}

func TestClassifyLine(t *testing.T) {
	line := element(document.KindLine, 0, 0, 10, 0)

	tests := []struct {
		name string
		p    geometry.Point
		want Tag
	}{
		{"start", geometry.Pt(0, 0), Start},
		{"near start", geometry.Pt(-2, 2), Start},
		{"end", geometry.Pt(10, 0), End},
		{"slightly off the middle", geometry.Pt(5, 1), OnLine},
		{"far from the middle", geometry.Pt(5, 20), None},
		{"past the end", geometry.Pt(20, 0), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, line); got != tt.want {
				t.Errorf("Classify(%v, line) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyDiamond(t *testing.T) {
	// Center (50,50), half width 40, half height 20.
	diamond := element(document.KindDiamond, 10, 30, 90, 70)

	tests := []struct {
		name string
		p    geometry.Point
		want Tag
	}{
		{"top vertex", geometry.Pt(50, 30), Top},
		{"bottom vertex", geometry.Pt(50, 71), Bottom},
		{"left vertex", geometry.Pt(10, 50), Left},
		{"right vertex", geometry.Pt(88, 50), Right},
		{"center", geometry.Pt(50, 50), Inside},
		{"upper-left edge", geometry.Pt(30, 40), TopLeft},
		{"upper-right edge", geometry.Pt(70, 40), TopRight},
		{"lower-left edge", geometry.Pt(30, 60), BottomLeft},
		{"lower-right edge", geometry.Pt(70, 60), BottomRight},
		{"bounding box corner", geometry.Pt(12, 32), None},
		{"outside", geometry.Pt(200, 50), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, diamond); got != tt.want {
				t.Errorf("Classify(%v, diamond) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyDiamondPointSymmetry(t *testing.T) {
	diamond := element(document.KindDiamond, 0, 0, 80, 80)
	center := geometry.Pt(40, 40)

	opposite := map[Tag]Tag{
		None: None, Inside: Inside,
		Top: Bottom, Bottom: Top, Left: Right, Right: Left,
		TopLeft: BottomRight, BottomRight: TopLeft, TopRight: BottomLeft, BottomLeft: TopRight,
	}

	for dx := -55.0; dx <= 55; dx += 2.5 {
		for dy := -55.0; dy <= 55; dy += 2.5 {
			p := center.Add(geometry.Pt(dx, dy))
			q := center.Sub(geometry.Pt(dx, dy))

			got, rotated := Classify(p, diamond), Classify(q, diamond)
			if opposite[got] != rotated {
				t.Errorf("Classify(%v) = %q but Classify(%v) = %q, want %q", p, got, q, rotated, opposite[got])
			}
		}
	}
}

func TestClassifyDiamondAxisPoints(t *testing.T) {
	diamond := element(document.KindDiamond, 0, 0, 200, 200)

	tests := []struct {
		name string
		p, q geometry.Point
		want Tag
	}{
		{"vertical axis", geometry.Pt(100, 8), geometry.Pt(100, 192), TopRight},
		{"horizontal axis", geometry.Pt(192, 100), geometry.Pt(8, 100), TopRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, diamond); got != tt.want {
				t.Errorf("Classify(%v, diamond) = %q, want %q", tt.p, got, tt.want)
			}
			if got := Classify(tt.q, diamond); got != BottomLeft {
				t.Errorf("Classify(%v, diamond) = %q, want %q", tt.q, got, BottomLeft)
			}
		})
	}
}

func TestTagIsHandle(t *testing.T) {
	tests := []struct {
		tag  Tag
		want bool
	}{
		{None, false},
		{Inside, false},
		{OnLine, false},
		{TopLeft, true},
		{Right, true},
		{Start, true},
	}
	for _, tt := range tests {
		if got := tt.tag.IsHandle(); got != tt.want {
			t.Errorf("%q.IsHandle() = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestClassifyDegenerate(t *testing.T) {
	flat := element(document.KindDiamond, 10, 10, 50, 10)
	if got := Classify(geometry.Pt(10, 10), flat); got != None {
		t.Errorf("Classify(flat diamond) = %q, want none", got)
	}
	if err := Validate(flat); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Validate(flat diamond) = %v, want ErrDegenerateGeometry", err)
	}

	dot := element(document.KindCircle, 5, 5, 5, 5)
	if got := Classify(geometry.Pt(5, 5), dot); got != None {
		t.Errorf("Classify(zero circle) = %q, want none", got)
	}
	if err := Validate(dot); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("Validate(zero circle) = %v, want ErrDegenerateGeometry", err)
	}

	if err := Validate(element(document.KindRectangle, 0, 0, 0, 0)); err != nil {
		t.Errorf("Validate(rectangle) = %v, want nil", err)
	}
}

func TestClassifyCircle(t *testing.T) {
	// Box (0,0)-(60,80): center (30,40), radius 50.
	circle := element(document.KindCircle, 0, 0, 60, 80)
	c := geometry.Pt(30, 40)

	at := func(angle, radius float64) geometry.Point {
		return geometry.Pt(c.X+radius*math.Cos(angle), c.Y+radius*math.Sin(angle))
	}

	tests := []struct {
		name string
		p    geometry.Point
		want Tag
	}{
		{"right", at(0, 50), Right},
		{"bottom-right", at(math.Pi/4, 50), BottomRight},
		{"bottom", at(math.Pi/2, 50), Bottom},
		{"bottom-left", at(3*math.Pi/4, 50), BottomLeft},
		{"left", at(math.Pi, 50), Left},
		{"top-left", at(-3*math.Pi/4, 50), TopLeft},
		{"top", at(-math.Pi/2, 50), Top},
		{"top-right", at(-math.Pi/4, 50), TopRight},
		{"right sector off axis", at(0.3, 52), Right},
		{"top sector just inside ring", at(-math.Pi/2+0.3, 47), Top},
		{"box corner lies on the circle", geometry.Pt(0, 0), TopLeft},
		{"center", c, Inside},
		{"inside near ring", at(1, 44), Inside},
		{"outside", at(2, 60), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, circle); got != tt.want {
				t.Errorf("Classify(%v, circle) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyCircleAxisPointsAgreeWithSectors(t *testing.T) {
	circle := element(document.KindCircle, 100, 100, 300, 300)
	c := geometry.Pt(200, 200)
	r := geometry.Distance(circle.Start(), circle.End()) / 2

	for i, want := range circleSectors {
		angle := float64(i) * math.Pi / 4
		p := geometry.Pt(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle))
		if got := circleSectors[sector(p.Sub(c))]; got != want {
			t.Errorf("sector tag at angle %v = %q, want %q", angle, got, want)
		}
		if got := Classify(p, circle); got != want {
			t.Errorf("Classify(axis point %d) = %q, want %q", i, got, want)
		}
	}
}

func TestClassifyFreehandAndText(t *testing.T) {
	stroke := document.Element{
		Kind:   document.KindFreehand,
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 20, Y: 5}, {X: 10, Y: 30}},
	}
	if got := Classify(geometry.Pt(15, 15), stroke); got != Inside {
		t.Errorf("Classify(inside stroke box) = %q, want inside", got)
	}
	if got := Classify(geometry.Pt(25, 15), stroke); got != None {
		t.Errorf("Classify(outside stroke box) = %q, want none", got)
	}
	if got := Classify(geometry.Pt(0, 0), document.Element{Kind: document.KindFreehand}); got != None {
		t.Errorf("Classify(empty stroke) = %q, want none", got)
	}

	text := document.Element{Kind: document.KindText, X1: 10, Y1: 10, X2: 110, Y2: 38, Text: "hello"}
	if got := Classify(geometry.Pt(60, 20), text); got != Inside {
		t.Errorf("Classify(inside text) = %q, want inside", got)
	}
	if got := Classify(geometry.Pt(60, 50), text); got != None {
		t.Errorf("Classify(below text) = %q, want none", got)
	}
}

func TestCursorFor(t *testing.T) {
	tests := map[Tag]string{
		TopLeft: "nwse-resize", End: "nwse-resize",
		TopRight: "nesw-resize", BottomLeft: "nesw-resize",
		Top: "ns-resize", Right: "ew-resize",
		Inside: "grab", OnLine: "move", None: "auto",
	}
	for tag, want := range tests {
		if got := CursorFor(tag); got != want {
			t.Errorf("CursorFor(%q) = %q, want %q", tag, got, want)
		}
	}
}
