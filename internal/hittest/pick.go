package hittest

import (
	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
)

// Hit is the result of a successful pick.
type Hit struct {
	Element document.Element
	Tag     Tag
}

// Pick returns the topmost element under p together with its tag. Elements are
// tested front to back, so when shapes overlap the one drawn last wins.
func Pick(p geometry.Point, scene document.Scene) (Hit, bool) {
	for i := len(scene) - 1; i >= 0; i-- {
		if tag := Classify(p, scene[i]); tag != None {
			return Hit{Element: scene[i], Tag: tag}, true
		}
	}
	return Hit{}, false
}
