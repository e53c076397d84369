package engine

import (
	"encoding/json"
	"hash/fnv"
	"math"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/freehand"
	"github.com/inamate/sketchboard/internal/geometry"
	"github.com/inamate/sketchboard/internal/textmetrics"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// Shapes arrive as "path" ops for a sketchy renderer to stroke; freehand strokes are
// already outlined and only need filling; text is a "text" op drawn with a top baseline.
type DrawCommand struct {
	Op          string                 `json:"op"`                    // "path" or "text"
	ObjectID    string                 `json:"objectId,omitempty"`    // For hit correlation
	Kind        document.Kind          `json:"kind,omitempty"`        // Element kind
	Seed        uint32                 `json:"seed,omitempty"`        // Stable per element, drives hand-drawn wobble
	Transform   []float64              `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        []geometry.PathCommand `json:"path,omitempty"`        // Path data for "path" ops
	Fill        string                 `json:"fill,omitempty"`        // Fill color
	Stroke      string                 `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64                `json:"strokeWidth,omitempty"` // Stroke width
	Text        string                 `json:"text,omitempty"`        // Payload for "text" ops
	Font        *textmetrics.Font      `json:"font,omitempty"`        // Font for "text" ops
	X           float64                `json:"x,omitempty"`           // Text anchor
	Y           float64                `json:"y,omitempty"`
}

// Style holds the presentation settings shared by every element.
type Style struct {
	Ink         string
	StrokeWidth float64
	BrushSize   float64
	Font        textmetrics.Font
	Outliner    freehand.Outliner
}

// DefaultStyle draws black ink with an 8px brush and 24px text.
var DefaultStyle = Style{
	Ink:         "#000000",
	StrokeWidth: 1,
	BrushSize:   8,
	Font:        textmetrics.DefaultFont,
}

// RenderElement converts an element to a draw command using DefaultStyle.
func RenderElement(e document.Element) DrawCommand {
	return DefaultStyle.Render(e)
}

// Render converts an element to a draw command. Commands for the same element id
// always carry the same seed.
func (s Style) Render(e document.Element) DrawCommand {
	cmd := DrawCommand{
		Op:       "path",
		ObjectID: e.ID,
		Kind:     e.Kind,
		Seed:     Seed(e.ID),
	}

	switch e.Kind {
	case document.KindLine:
		cmd.Path = []geometry.PathCommand{geometry.MoveTo(e.Start()), geometry.LineTo(e.End())}
		cmd.Stroke, cmd.StrokeWidth = s.Ink, s.StrokeWidth
	case document.KindRectangle:
		cmd.Path = rectPath(e)
		cmd.Stroke, cmd.StrokeWidth = s.Ink, s.StrokeWidth
	case document.KindDiamond:
		cmd.Path = diamondPath(e)
		cmd.Stroke, cmd.StrokeWidth = s.Ink, s.StrokeWidth
	case document.KindCircle:
		cmd.Path = circlePath(e)
		cmd.Stroke, cmd.StrokeWidth = s.Ink, s.StrokeWidth
	case document.KindFreehand:
		cmd.Path = freehand.Stroke(e.Points, s.BrushSize, s.Outliner)
		cmd.Fill = s.Ink
	case document.KindText:
		font := s.Font
		cmd.Op = "text"
		cmd.Text = e.Text
		cmd.Font = &font
		cmd.X, cmd.Y = e.X1, e.Y1
		cmd.Fill = s.Ink
	}
	return cmd
}

// RenderScene converts every element in painter's order (back to front).
func (s Style) RenderScene(scene document.Scene) []DrawCommand {
	commands := make([]DrawCommand, 0, len(scene))
	for _, e := range scene {
		commands = append(commands, s.Render(e))
	}
	return commands
}

// Seed derives a renderer seed from an element id.
func Seed(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	// Keep it positive as a signed 32-bit value for JS consumers.
	return h.Sum32()&math.MaxInt32 | 1
}

func rectPath(e document.Element) []geometry.PathCommand {
	return []geometry.PathCommand{
		{"M", e.X1, e.Y1},
		{"L", e.X2, e.Y1},
		{"L", e.X2, e.Y2},
		{"L", e.X1, e.Y2},
		{"Z"},
	}
}

// diamondPath joins the midpoints of the bounding box edges.
func diamondPath(e document.Element) []geometry.PathCommand {
	c := e.Bounds().Center()
	return []geometry.PathCommand{
		{"M", c.X, e.Y1},
		{"L", e.X2, c.Y},
		{"L", c.X, e.Y2},
		{"L", e.X1, c.Y},
		{"Z"},
	}
}

// circlePath draws a circle centered on the bounding box whose radius is half the
// box diagonal, as four bezier curves.
func circlePath(e document.Element) []geometry.PathCommand {
	c := e.Bounds().Center()
	r := geometry.Distance(e.Start(), e.End()) / 2

	// k = 4 * (sqrt(2) - 1) / 3 ≈ 0.5522847498
	k := 0.5522847498 * r

	return []geometry.PathCommand{
		{"M", c.X + r, c.Y},
		{"C", c.X + r, c.Y + k, c.X + k, c.Y + r, c.X, c.Y + r},
		{"C", c.X - k, c.Y + r, c.X - r, c.Y + k, c.X - r, c.Y},
		{"C", c.X - r, c.Y - k, c.X - k, c.Y - r, c.X, c.Y - r},
		{"C", c.X + k, c.Y - r, c.X + r, c.Y - k, c.X + r, c.Y},
		{"Z"},
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
