package engine

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/geometry"
	"github.com/inamate/sketchboard/internal/history"
	"github.com/inamate/sketchboard/internal/hittest"
	"github.com/inamate/sketchboard/internal/textmetrics"
	"github.com/inamate/sketchboard/internal/transform"
)

// Engine is the editor session. It owns the scene history and the gesture in
// progress, processes pointer and keyboard commands from the host and answers
// render queries.
//
// An Engine is not safe for concurrent use; hosts drive it from a single loop.
type Engine struct {
	history  *history.History[document.Scene]
	style    Style
	measurer textmetrics.Measurer

	tool   Tool
	action Action
	cursor string

	viewport Viewport
	panFrom  geometry.Point
	panStart Viewport

	// Gesture state captured at pointer down.
	selected string
	start    document.Element
	tag      hittest.Tag
	grip     transform.Grip
	// fresh is set until the gesture's first scene write, which opens a new
	// history entry. Later writes of the same gesture coalesce into it.
	fresh bool

	// Text box waiting for CommitText. It joins the scene only once committed.
	pending *document.Element
}

// Options configures a new Engine. Zero fields take defaults.
type Options struct {
	Style    Style
	Measurer textmetrics.Measurer
	Scene    document.Scene
}

// NewEngine creates an engine with an empty scene and the freehand tool selected.
func NewEngine(opts Options) *Engine {
	style := opts.Style
	if style.Ink == "" {
		style.Ink = DefaultStyle.Ink
	}
	if style.StrokeWidth <= 0 {
		style.StrokeWidth = DefaultStyle.StrokeWidth
	}
	if style.BrushSize <= 0 {
		style.BrushSize = DefaultStyle.BrushSize
	}
	if style.Font.Size <= 0 {
		style.Font = DefaultStyle.Font
	}

	measurer := opts.Measurer
	if measurer == nil {
		measurer = textmetrics.Default()
	}

	scene := opts.Scene
	if scene == nil {
		scene = document.Scene{}
	}

	return &Engine{
		history:  history.New(scene),
		style:    style,
		measurer: measurer,
		tool:     ToolFreehand,
		action:   ActionNone,
		cursor:   hittest.CursorFor(hittest.None),
	}
}

// --- Commands (host → engine) ---

// LoadScene replaces the scene and history with the elements in jsonData.
// Elements of kind "pencil" are loaded as freehand. A scene that repeats an
// element id is rejected with document.ErrDuplicateID and the current scene is
// kept.
func (e *Engine) LoadScene(jsonData string) error {
	var scene document.Scene
	if err := json.Unmarshal([]byte(jsonData), &scene); err != nil {
		return err
	}
	for i, el := range scene {
		kind, err := document.ParseKind(string(el.Kind))
		if err != nil {
			return err
		}
		scene[i].Kind = kind
	}
	if err := scene.Validate(); err != nil {
		return err
	}
	e.reset(scene)
	return nil
}

// LoadSampleScene loads the built-in sample scene.
func (e *Engine) LoadSampleScene() {
	e.reset(document.NewSampleScene())
}

func (e *Engine) reset(scene document.Scene) {
	if scene == nil {
		scene = document.Scene{}
	}
	e.history = history.New(scene)
	e.endGesture()
}

// SetTool switches the active tool. Any gesture in progress is abandoned.
func (e *Engine) SetTool(name string) error {
	t, err := ParseTool(name)
	if err != nil {
		return err
	}
	e.endGesture()
	e.tool = t
	return nil
}

// PointerDown starts a gesture at the screen position (x, y).
func (e *Engine) PointerDown(x, y float64) {
	screen := geometry.Pt(x, y)
	p := e.viewport.ScreenToScene(screen)

	if e.action == ActionWriting {
		// Clicking away from an open text box abandons it.
		e.endGesture()
	}

	switch e.tool {
	case ToolSelection:
		hit, ok := hittest.Pick(p, e.scene())
		if !ok {
			e.selected = ""
			return
		}
		e.selected = hit.Element.ID
		e.start = hit.Element
		e.tag = hit.Tag
		e.grip = transform.Grab(p, hit.Element)
		e.fresh = true
		if hit.Tag.IsHandle() {
			e.action = ActionResizing
		} else {
			e.action = ActionMoving
		}

	case ToolPan:
		e.panFrom = screen
		e.panStart = e.viewport
		e.action = ActionPanning

	case ToolText:
		el, err := document.Create(document.KindText, p.X, p.Y, p.X, p.Y, "")
		if err != nil {
			slog.Error("create element", "kind", document.KindText, "error", err)
			return
		}
		e.pending = &el
		e.selected = el.ID
		e.action = ActionWriting

	default:
		kind, _ := e.tool.Kind()
		el, err := document.Create(kind, p.X, p.Y, p.X, p.Y, "")
		if err != nil {
			slog.Error("create element", "kind", kind, "error", err)
			return
		}
		e.selected = el.ID
		e.start = el
		e.fresh = true
		e.commit(e.scene().Append(el))
		e.action = ActionDrawing
	}
}

// PointerMove continues the gesture in progress and returns the cursor the host
// should show.
func (e *Engine) PointerMove(x, y float64) string {
	screen := geometry.Pt(x, y)
	p := e.viewport.ScreenToScene(screen)

	switch e.action {
	case ActionNone:
		e.cursor = hittest.CursorFor(hittest.None)
		if e.tool == ToolSelection {
			if hit, ok := hittest.Pick(p, e.scene()); ok {
				e.cursor = hittest.CursorFor(hit.Tag)
			}
		}

	case ActionDrawing:
		el, ok := e.scene().Find(e.selected)
		if !ok {
			slog.Debug("drawing element vanished", "element", e.selected)
			e.endGesture()
			break
		}
		if el.Kind == document.KindFreehand {
			el = el.WithPoint(p)
		} else {
			el = el.WithCorners(el.X1, el.Y1, p.X, p.Y)
		}
		e.update(el)

	case ActionMoving:
		e.cursor = "move"
		e.update(transform.Drag(p, e.grip, e.start))

	case ActionResizing:
		e.cursor = hittest.CursorFor(e.tag)
		el, err := transform.Resize(p, e.tag, e.start)
		if err != nil {
			if errors.Is(err, transform.ErrInvalidHandle) {
				slog.Warn("invalid handle", "element", e.start.ID, "tag", e.tag, "error", err)
				break
			}
			slog.Error("resize", "element", e.start.ID, "error", err)
			break
		}
		e.update(el)

	case ActionPanning:
		e.cursor = "grabbing"
		e.viewport = e.panStart.PanTo(e.panStart.Offset().Add(screen.Sub(e.panFrom)))
	}

	return e.cursor
}

// PointerUp finishes the gesture. Boxed elements that were drawn or resized are
// normalized. An open text box stays open until CommitText.
func (e *Engine) PointerUp() {
	switch e.action {
	case ActionDrawing, ActionResizing:
		if e.fresh {
			// Nothing moved, so there is nothing to normalize.
			break
		}
		el, ok := e.scene().Find(e.selected)
		if ok && el.Kind.IsBoxed() {
			e.update(document.Normalize(el))
		}
	case ActionWriting:
		return
	}
	e.endGesture()
}

// CommitText closes the open text box. Non-empty text is measured and added to the
// scene as one history entry; empty text discards the box.
func (e *Engine) CommitText(text string) error {
	if e.action != ActionWriting || e.pending == nil {
		return ErrNotWriting
	}
	el := *e.pending
	e.endGesture()

	if text == "" {
		return nil
	}

	w, h := e.measurer.Measure(text, e.style.Font)
	el.Text = text
	el.X2, el.Y2 = el.X1+w, el.Y1+h
	e.fresh = true
	e.commit(e.scene().Append(el))
	return nil
}

// Undo steps back one history entry. Any gesture in progress is abandoned.
func (e *Engine) Undo() bool {
	e.endGesture()
	return e.history.Undo()
}

// Redo steps forward one history entry. Any gesture in progress is abandoned.
func (e *Engine) Redo() bool {
	e.endGesture()
	return e.history.Redo()
}

// HandleKey applies keyboard shortcuts: mod+Z undoes and mod+Y redoes, where mod
// is Ctrl or Meta. It reports whether the key was handled.
func (e *Engine) HandleKey(key string, ctrlOrMeta bool) bool {
	if !ctrlOrMeta {
		return false
	}
	switch strings.ToLower(key) {
	case "z":
		e.Undo()
		return true
	case "y":
		e.Redo()
		return true
	}
	return false
}

// --- Queries (host ← engine) ---

// Elements returns the current scene.
func (e *Engine) Elements() document.Scene {
	return e.scene()
}

// Selection returns the id of the element the current gesture works on.
func (e *Engine) Selection() string {
	return e.selected
}

// Viewport returns the current pan state.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Cursor returns the last cursor hint.
func (e *Engine) Cursor() string {
	return e.cursor
}

// Render returns draw commands for the current scene in painter's order.
func (e *Engine) Render() []DrawCommand {
	commands := e.style.RenderScene(e.scene())
	if t := e.viewport.Transform(); t != nil {
		for i := range commands {
			commands[i].Transform = t
		}
	}
	return commands
}

// RenderJSON returns Render serialized to JSON.
func (e *Engine) RenderJSON() string {
	result, err := DrawCommandsToJSON(e.Render())
	if err != nil {
		slog.Error("encode draw commands", "error", err)
	}
	return result
}

// State is a snapshot of the editor for the host UI.
type State struct {
	Tool      Tool            `json:"tool"`
	Action    Action          `json:"action"`
	Cursor    string          `json:"cursor"`
	Selection string          `json:"selection,omitempty"`
	Writing   *geometry.Point `json:"writing,omitempty"` // Screen anchor of the open text box
	Offset    geometry.Point  `json:"offset"`
	History   int             `json:"history"`
	Entries   int             `json:"entries"`
	CanUndo   bool            `json:"canUndo"`
	CanRedo   bool            `json:"canRedo"`
}

// State returns the current editor state.
func (e *Engine) State() State {
	s := State{
		Tool:      e.tool,
		Action:    e.action,
		Cursor:    e.cursor,
		Selection: e.selected,
		Offset:    e.viewport.Offset(),
		History:   e.history.Cursor(),
		Entries:   e.history.Len(),
		CanUndo:   e.history.CanUndo(),
		CanRedo:   e.history.CanRedo(),
	}
	if e.pending != nil {
		anchor := e.viewport.SceneToScreen(e.pending.Start())
		s.Writing = &anchor
	}
	return s
}

// StateJSON returns State serialized to JSON.
func (e *Engine) StateJSON() string {
	data, _ := json.Marshal(e.State())
	return string(data)
}

// ElementsJSON returns the current scene serialized to JSON.
func (e *Engine) ElementsJSON() string {
	data, _ := json.Marshal(e.scene())
	return string(data)
}

func (e *Engine) scene() document.Scene {
	return e.history.Current()
}

// update swaps el into the scene. A missing element is ignored.
func (e *Engine) update(el document.Element) {
	next, err := e.scene().Replace(el)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			slog.Debug("update skipped", "element", el.ID, "error", err)
			return
		}
		slog.Error("update element", "element", el.ID, "error", err)
		return
	}
	e.commit(next)
}

// commit records a new scene. The first write of a gesture opens a history entry;
// the rest coalesce into it.
func (e *Engine) commit(scene document.Scene) {
	e.history.Record(scene, !e.fresh)
	e.fresh = false
}

func (e *Engine) endGesture() {
	e.action = ActionNone
	e.selected = ""
	e.start = document.Element{}
	e.tag = hittest.None
	e.grip = transform.Grip{}
	e.fresh = false
	e.pending = nil
}
