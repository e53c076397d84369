package session

import (
	"encoding/json"

	"github.com/inamate/sketchboard/internal/engine"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ToolPayload struct {
	Tool string `json:"tool"`
}

type TextPayload struct {
	Text string `json:"text"`
}

type KeyPayload struct {
	Key  string `json:"key"`
	Ctrl bool   `json:"ctrl"`
	Meta bool   `json:"meta"`
}

type RenderPayload struct {
	Commands []engine.DrawCommand `json:"commands"`
	Cursor   string               `json:"cursor"`
	State    engine.State         `json:"state"`
}

type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
}

type ErrorPayload struct {
	Reason string `json:"reason"`
}

const (
	// Host input
	TypePointerDown = "pointer.down"
	TypePointerMove = "pointer.move"
	TypePointerUp   = "pointer.up"
	TypeToolSet     = "tool.set"
	TypeTextCommit  = "text.commit"
	TypeUndo        = "history.undo"
	TypeRedo        = "history.redo"
	TypeKey         = "key"

	// Server output
	TypeWelcome = "welcome"
	TypeRender  = "render"
	TypeError   = "error"
)

func newMessage(typ string, payload interface{}) *Message {
	data, _ := json.Marshal(payload)
	return &Message{Type: typ, Payload: data}
}

func errorMessage(reason string) *Message {
	return newMessage(TypeError, ErrorPayload{Reason: reason})
}
