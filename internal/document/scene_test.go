package document

import (
	"errors"
	"testing"
)

func TestSceneReplace(t *testing.T) {
	s := Scene{
		{ID: "a", Kind: KindRectangle},
		{ID: "b", Kind: KindLine},
	}

	updated, err := s.Replace(Element{ID: "b", Kind: KindLine, X2: 9})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if updated[1].X2 != 9 {
		t.Errorf("Replace did not swap element: %+v", updated[1])
	}
	if s[1].X2 != 0 {
		t.Error("Replace mutated the original scene")
	}
}

func TestSceneReplaceNotFound(t *testing.T) {
	s := Scene{{ID: "a"}}
	out, err := s.Replace(Element{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Replace(missing) error = %v, want ErrNotFound", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("Replace(missing) returned %+v, want original scene", out)
	}
}

func TestSceneAppendAndRemove(t *testing.T) {
	var s Scene
	s1 := s.Append(Element{ID: "a"})
	s2 := s1.Append(Element{ID: "b"})
	s3 := s2.Append(Element{ID: "c"})

	if len(s1) != 1 || len(s2) != 2 || len(s3) != 3 {
		t.Fatalf("Append lengths = %d,%d,%d", len(s1), len(s2), len(s3))
	}

	removed, err := s3.Remove("b")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(removed) != 2 || removed[0].ID != "a" || removed[1].ID != "c" {
		t.Errorf("Remove(b) = %+v", removed)
	}
	if s3.Index("b") != 1 {
		t.Error("Remove mutated the original scene")
	}

	if _, err := removed.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(b) twice error = %v, want ErrNotFound", err)
	}
}

func TestSceneFind(t *testing.T) {
	s := NewSampleScene()
	for _, e := range s {
		got, ok := s.Find(e.ID)
		if !ok || got.Kind != e.Kind {
			t.Errorf("Find(%s) = %+v, %v", e.ID, got, ok)
		}
	}
	if _, ok := s.Find("nope"); ok {
		t.Error("Find(nope) reported a match")
	}
}

func TestSceneValidate(t *testing.T) {
	tests := []struct {
		name    string
		scene   Scene
		wantErr error
	}{
		{"empty", Scene{}, nil},
		{"unique", Scene{{ID: "a"}, {ID: "b"}}, nil},
		{"duplicate", Scene{{ID: "a"}, {ID: "b"}, {ID: "a"}}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.scene.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
