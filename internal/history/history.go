// Package history keeps an undo/redo stack of immutable snapshots.
package history

// History is a cursor over an ordered list of snapshots. The cursor always points
// at a valid entry; entries after it form the redo branch.
//
// A History is not safe for concurrent use.
type History[T any] struct {
	entries []T
	cursor  int
}

// New returns a History whose only entry is initial.
func New[T any](initial T) *History[T] {
	return &History[T]{entries: []T{initial}}
}

// Record stores a snapshot. A normal write drops the redo branch, appends s and
// moves the cursor onto it. A coalesced write replaces the entry under the cursor
// instead, so every frame of a drag lands in the same undo step.
func (h *History[T]) Record(s T, coalesce bool) {
	if coalesce {
		h.entries[h.cursor] = s
		return
	}

	h.entries = append(h.entries[:h.cursor+1], s)
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry. It reports false when already at the oldest entry.
func (h *History[T]) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps forward one entry. It reports false when there is nothing to redo.
func (h *History[T]) Redo() bool {
	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.cursor++
	return true
}

// Current returns the snapshot under the cursor.
func (h *History[T]) Current() T {
	return h.entries[h.cursor]
}

func (h *History[T]) CanUndo() bool { return h.cursor > 0 }
func (h *History[T]) CanRedo() bool { return h.cursor < len(h.entries)-1 }
func (h *History[T]) Len() int      { return len(h.entries) }
func (h *History[T]) Cursor() int   { return h.cursor }
