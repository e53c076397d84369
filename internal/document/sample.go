package document

import (
	"math"

	"github.com/inamate/sketchboard/internal/geometry"
	"github.com/inamate/sketchboard/internal/typeid"
)

// NewSampleScene returns a small scene with one element of every kind, laid out
// left to right. Hosts use it to exercise a fresh canvas.
func NewSampleScene() Scene {
	wave := make([]geometry.Point, 0, 24)
	for i := 0; i < 24; i++ {
		x := 620 + float64(i)*6
		wave = append(wave, geometry.Point{X: x, Y: 140 + 18*math.Sin(float64(i)/3)})
	}

	return Scene{
		{ID: typeid.NewElementID(), Kind: KindRectangle, X1: 40, Y1: 80, X2: 180, Y2: 200},
		{ID: typeid.NewElementID(), Kind: KindDiamond, X1: 220, Y1: 80, X2: 340, Y2: 200},
		{ID: typeid.NewElementID(), Kind: KindCircle, X1: 390, Y1: 100, X2: 470, Y2: 180},
		{ID: typeid.NewElementID(), Kind: KindLine, X1: 500, Y1: 200, X2: 590, Y2: 80},
		{ID: typeid.NewElementID(), Kind: KindFreehand, Points: wave},
		{ID: typeid.NewElementID(), Kind: KindText, X1: 40, Y1: 240, X2: 204, Y2: 268, Text: "Sketchboard"},
	}
}
