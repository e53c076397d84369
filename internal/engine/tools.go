package engine

import (
	"errors"
	"fmt"

	"github.com/inamate/sketchboard/internal/document"
)

var (
	ErrInvalidTool = errors.New("invalid tool")
	ErrNotWriting  = errors.New("no text box is open")
)

// Tool is the active editor tool.
type Tool string

const (
	ToolSelection Tool = "selection"
	ToolLine      Tool = "line"
	ToolRectangle Tool = "rectangle"
	ToolDiamond   Tool = "diamond"
	ToolCircle    Tool = "circle"
	ToolFreehand  Tool = "freehand"
	ToolText      Tool = "text"
	ToolPan       Tool = "pan"
)

// ParseTool maps a tool name onto a Tool. "pencil" is accepted for freehand.
func ParseTool(name string) (Tool, error) {
	switch t := Tool(name); t {
	case ToolSelection, ToolPan:
		return t, nil
	}
	kind, err := document.ParseKind(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTool, name)
	}
	return Tool(kind), nil
}

// Kind returns the element kind a drawing tool creates.
func (t Tool) Kind() (document.Kind, bool) {
	switch t {
	case ToolSelection, ToolPan:
		return "", false
	}
	return document.Kind(t), true
}

// Action is the gesture in progress.
type Action string

const (
	ActionNone     Action = "none"
	ActionDrawing  Action = "drawing"
	ActionMoving   Action = "moving"
	ActionResizing Action = "resizing"
	ActionWriting  Action = "writing"
	ActionPanning  Action = "panning"
)
