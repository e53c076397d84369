package document

import (
	"fmt"
	"slices"
)

// Scene is an ordered element collection. Order is z-order: later elements are
// drawn on top. A Scene value is treated as immutable once recorded; the helpers
// below always return a fresh slice.
type Scene []Element

// Index returns the position of the element with the given id, or -1.
func (s Scene) Index(id string) int {
	return slices.IndexFunc(s, func(e Element) bool { return e.ID == id })
}

// Find returns the element with the given id.
func (s Scene) Find(id string) (Element, bool) {
	i := s.Index(id)
	if i < 0 {
		return Element{}, false
	}
	return s[i], true
}

// Append returns a new scene with e on top.
func (s Scene) Append(e Element) Scene {
	out := make(Scene, len(s), len(s)+1)
	copy(out, s)
	return append(out, e)
}

// Replace returns a new scene where the element sharing e's id is swapped for e.
func (s Scene) Replace(e Element) (Scene, error) {
	i := s.Index(e.ID)
	if i < 0 {
		return s, fmt.Errorf("replace %s: %w", e.ID, ErrNotFound)
	}
	out := s.Clone()
	out[i] = e
	return out, nil
}

// Remove returns a new scene without the element with the given id.
func (s Scene) Remove(id string) (Scene, error) {
	i := s.Index(id)
	if i < 0 {
		return s, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	out := make(Scene, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), nil
}

// Clone returns a shallow copy of the scene.
func (s Scene) Clone() Scene {
	if s == nil {
		return Scene{}
	}
	return slices.Clone(s)
}

// Validate checks that every element id is unique.
func (s Scene) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, e := range s {
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
