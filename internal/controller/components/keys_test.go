package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeySet_AddHasDelete(t *testing.T) {
	s := NewKeySet()
	s.Add(KeyArrowLeft)
	s.Add(KeyArrowLeft)

	if !s.Has(KeyArrowLeft) {
		t.Fatal("expected ArrowLeft after Add")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 key after duplicate Add, got %d", s.Len())
	}

	s.Delete(KeyArrowLeft)
	s.Delete(KeyArrowUp)
	if s.Has(KeyArrowLeft) || s.Len() != 0 {
		t.Fatalf("expected empty set after Delete, got %v", s.Sorted())
	}
}

func TestKeySet_ClearIsVisibleThroughInput(t *testing.T) {
	in := NewInput()
	keys := in.Keys
	keys.Add(KeyArrowUp)
	keys.Add(KeyArrowRight)

	in.Keys.Clear()

	if keys.Len() != 0 {
		t.Fatalf("expected shared set to be cleared, got %v", keys.Sorted())
	}
}

func TestKeySet_Sorted(t *testing.T) {
	s := NewKeySet(KeyArrowUp, KeyArrowDown, KeyArrowLeft)

	got := s.Strings()
	want := []string{"ArrowDown", "ArrowLeft", "ArrowUp"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestArrowKeysVocabulary(t *testing.T) {
	want := []VirtualKey{"ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown"}
	if diff := cmp.Diff(want, ArrowKeys); diff != "" {
		t.Errorf("ArrowKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestVelocityStop(t *testing.T) {
	v := Velocity{Speed: 400, X: 400, Y: -400}
	v.Stop()
	if v.X != 0 || v.Y != 0 || v.Speed != 400 {
		t.Errorf("unexpected velocity after Stop: %+v", v)
	}
}
