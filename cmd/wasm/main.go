//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/inamate/sketchboard/internal/engine"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine(engine.Options{})

	// Create the engine API object
	sketchEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	sketchEngine.Set("loadScene", js.FuncOf(loadScene))
	sketchEngine.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	sketchEngine.Set("setTool", js.FuncOf(setTool))
	sketchEngine.Set("pointerDown", js.FuncOf(pointerDown))
	sketchEngine.Set("pointerMove", js.FuncOf(pointerMove))
	sketchEngine.Set("pointerUp", js.FuncOf(pointerUp))
	sketchEngine.Set("commitText", js.FuncOf(commitText))
	sketchEngine.Set("undo", js.FuncOf(undo))
	sketchEngine.Set("redo", js.FuncOf(redo))
	sketchEngine.Set("handleKey", js.FuncOf(handleKey))

	// --- Queries (frontend ← engine) ---
	sketchEngine.Set("render", js.FuncOf(render))
	sketchEngine.Set("getState", js.FuncOf(getState))
	sketchEngine.Set("getElements", js.FuncOf(getElements))

	// Register on global scope
	js.Global().Set("sketchEngine", sketchEngine)

	// Signal that WASM is ready
	js.Global().Set("sketchWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() js.Value {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Command Handlers ---

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing scene JSON"})
	}
	if err := eng.LoadScene(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	eng.LoadSampleScene()
	return okResult()
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing tool"})
	}
	if err := eng.SetTool(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.PointerDown(args[0].Float(), args[1].Float())
	return nil
}

// pointerMove returns the CSS cursor to show.
func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(eng.Cursor())
	}
	return js.ValueOf(eng.PointerMove(args[0].Float(), args[1].Float()))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	eng.PointerUp()
	return nil
}

func commitText(this js.Value, args []js.Value) interface{} {
	text := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		text = args[0].String()
	}
	if err := eng.CommitText(text); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Redo())
}

// handleKey takes a KeyboardEvent-like object {key, ctrlKey, metaKey}.
func handleKey(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return js.ValueOf(false)
	}
	ev := args[0]
	mod := ev.Get("ctrlKey").Truthy() || ev.Get("metaKey").Truthy()
	return js.ValueOf(eng.HandleKey(ev.Get("key").String(), mod))
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.RenderJSON())
}

func getState(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.StateJSON())
}

func getElements(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.ElementsJSON())
}
