package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/inamate/sketchboard/internal/document"
	"github.com/inamate/sketchboard/internal/engine"
)

// Session is one canvas and its history. Every client attached to the session
// drives the same engine, so access is serialized.
type Session struct {
	ID string

	mu       sync.Mutex
	engine   *engine.Engine
	lastSeen time.Time
	clients  map[string]*Client // clientID -> client
}

func newSession(id string, eng *engine.Engine, now time.Time) *Session {
	return &Session{
		ID:       id,
		engine:   eng,
		lastSeen: now,
		clients:  make(map[string]*Client),
	}
}

// Snapshot is the REST view of a session.
type Snapshot struct {
	ID       string         `json:"id"`
	State    engine.State   `json:"state"`
	Elements document.Scene `json:"elements"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{ID: s.ID, State: s.engine.State(), Elements: s.engine.Elements()}
}

// Handle applies one host message and returns the reply: a render for handled
// input, an error message for malformed input.
func (s *Session) Handle(msg *Message, now time.Time) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = now
	if err := s.apply(msg); err != nil {
		slog.Warn("invalid message", "type", msg.Type, "session", s.ID, "error", err)
		return errorMessage(err.Error())
	}
	return s.render()
}

var errUnknownType = errors.New("unknown message type")

func (s *Session) apply(msg *Message) error {
	eng := s.engine

	switch msg.Type {
	case TypePointerDown, TypePointerMove:
		var p PointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		if msg.Type == TypePointerDown {
			eng.PointerDown(p.X, p.Y)
		} else {
			eng.PointerMove(p.X, p.Y)
		}

	case TypePointerUp:
		eng.PointerUp()

	case TypeToolSet:
		var p ToolPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return eng.SetTool(p.Tool)

	case TypeTextCommit:
		var p TextPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return eng.CommitText(p.Text)

	case TypeUndo:
		eng.Undo()

	case TypeRedo:
		eng.Redo()

	case TypeKey:
		var p KeyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		eng.HandleKey(p.Key, p.Ctrl || p.Meta)

	default:
		return errUnknownType
	}
	return nil
}

func (s *Session) render() *Message {
	out := newMessage(TypeRender, RenderPayload{
		Commands: s.engine.Render(),
		Cursor:   s.engine.Cursor(),
		State:    s.engine.State(),
	})
	out.SessionID = s.ID
	return out
}

// Render returns the current render message.
func (s *Session) Render() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients) == 0 && now.Sub(s.lastSeen) > ttl
}
