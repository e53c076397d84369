// Package textmetrics measures text boxes for text elements.
package textmetrics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var ErrInvalidFont = errors.New("invalid font")

// Font describes the face text is laid out with. Family is informational; the
// default measurer always uses Go Regular.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// DefaultFont matches the editor's 24px sans-serif.
var DefaultFont = Font{Family: "sans-serif", Size: 24}

// Measurer returns the width and height of text rendered in f.
type Measurer interface {
	Measure(text string, f Font) (width, height float64)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(text string, f Font) (float64, float64)

func (fn MeasurerFunc) Measure(text string, f Font) (float64, float64) { return fn(text, f) }

// FaceMeasurer measures with an opentype face. Faces are cached per size and the
// cache is safe for concurrent use.
type FaceMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer parses ttf. A nil ttf selects Go Regular.
func NewFaceMeasurer(ttf []byte) (*FaceMeasurer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Default returns a measurer backed by Go Regular.
func Default() *FaceMeasurer {
	m, err := NewFaceMeasurer(nil)
	if err != nil {
		// goregular is embedded and always parses.
		panic(err)
	}
	return m
}

func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, size)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	m.faces[size] = f
	return f, nil
}

// Measure returns the widest line's advance and the height of all lines. Lines
// are split on '\n'. An invalid size measures as zero.
func (m *FaceMeasurer) Measure(text string, f Font) (float64, float64) {
	if text == "" {
		return 0, 0
	}
	face, err := m.face(f.Size)
	if err != nil {
		return 0, 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var width float64
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := float64(font.MeasureString(face, line)) / 64
		width = max(width, w)
	}
	lineHeight := float64(face.Metrics().Height) / 64
	return width, lineHeight * float64(len(lines))
}

// Close releases all cached faces.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for size, f := range m.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(m.faces, size)
	}
	return errors.Join(errs...)
}
