package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/inamate/sketchboard/internal/engine"
	"github.com/inamate/sketchboard/internal/textmetrics"
)

var testMeasurer = textmetrics.MeasurerFunc(func(text string, _ textmetrics.Font) (float64, float64) {
	return float64(len(text)) * 10, 20
})

func newTestEngine() *engine.Engine {
	return engine.NewEngine(engine.Options{Measurer: testMeasurer})
}

func msg(t *testing.T, typ string, payload interface{}) *Message {
	t.Helper()
	m := &Message{Type: typ}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		m.Payload = data
	}
	return m
}

func decodeRender(t *testing.T, m *Message) RenderPayload {
	t.Helper()
	if m.Type != TypeRender {
		t.Fatalf("reply type = %q (%s), want render", m.Type, m.Payload)
	}
	var p RenderPayload
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		t.Fatalf("decode render: %v", err)
	}
	return p
}

func TestHandleDrawGesture(t *testing.T) {
	s := newSession("sess_test", newTestEngine(), time.Now())
	now := time.Now()

	steps := []*Message{
		msg(t, TypeToolSet, ToolPayload{Tool: "rectangle"}),
		msg(t, TypePointerDown, PointerPayload{X: 10, Y: 10}),
		msg(t, TypePointerMove, PointerPayload{X: 50, Y: 40}),
		msg(t, TypePointerUp, nil),
	}
	var last *Message
	for _, m := range steps {
		last = s.Handle(m, now)
	}

	p := decodeRender(t, last)
	if len(p.Commands) != 1 || p.Commands[0].Kind != "rectangle" {
		t.Fatalf("commands = %+v, want one rectangle", p.Commands)
	}
	if !p.State.CanUndo || p.State.Tool != engine.ToolRectangle {
		t.Errorf("state = %+v", p.State)
	}

	p = decodeRender(t, s.Handle(msg(t, TypeKey, KeyPayload{Key: "z", Meta: true}), now))
	if len(p.Commands) != 0 {
		t.Errorf("commands after meta+z = %d, want 0", len(p.Commands))
	}
	p = decodeRender(t, s.Handle(msg(t, TypeRedo, nil), now))
	if len(p.Commands) != 1 {
		t.Errorf("commands after redo = %d, want 1", len(p.Commands))
	}
}

func TestHandleText(t *testing.T) {
	s := newSession("sess_test", newTestEngine(), time.Now())
	now := time.Now()

	s.Handle(msg(t, TypeToolSet, ToolPayload{Tool: "text"}), now)
	s.Handle(msg(t, TypePointerDown, PointerPayload{X: 1, Y: 2}), now)
	p := decodeRender(t, s.Handle(msg(t, TypeTextCommit, TextPayload{Text: "abc"}), now))

	if len(p.Commands) != 1 || p.Commands[0].Op != "text" || p.Commands[0].Text != "abc" {
		t.Errorf("commands = %+v, want one text op", p.Commands)
	}
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{"unknown type", &Message{Type: "canvas.explode"}},
		{"bad pointer payload", &Message{Type: TypePointerDown, Payload: json.RawMessage(`"x"`)}},
		{"bad tool", &Message{Type: TypeToolSet, Payload: json.RawMessage(`{"tool":"eraser"}`)}},
		{"commit without text box", &Message{Type: TypeTextCommit, Payload: json.RawMessage(`{"text":"a"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession("sess_test", newTestEngine(), time.Now())
			reply := s.Handle(tt.msg, time.Now())
			if reply.Type != TypeError {
				t.Fatalf("reply type = %q, want error", reply.Type)
			}
			var p ErrorPayload
			if err := json.Unmarshal(reply.Payload, &p); err != nil || p.Reason == "" {
				t.Errorf("error payload = %s, %v", reply.Payload, err)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	eng := newTestEngine()
	eng.LoadSampleScene()
	s := newSession("sess_test", eng, time.Now())

	snap := s.Snapshot()
	if snap.ID != "sess_test" || len(snap.Elements) == 0 {
		t.Errorf("Snapshot() = %+v", snap)
	}
}
