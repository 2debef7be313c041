package prefs

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func testManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	m, err := gdata.Open(gdata.Config{AppName: "kleinerheld_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

func TestMutedPersists(t *testing.T) {
	m := testManager(t)

	s, err := New(m)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Muted() {
		t.Fatal("Muted() on a fresh store = true, expected false")
	}
	if err := s.SetMuted(true); err != nil {
		t.Fatalf("SetMuted() error = %v", err)
	}

	reopened, err := New(m)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !reopened.Muted() {
		t.Error("muted flag was not persisted")
	}
}

func TestToggleMuted(t *testing.T) {
	s, err := New(testManager(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i, want := range []bool{true, false, true} {
		got, err := s.ToggleMuted()
		if err != nil {
			t.Fatalf("ToggleMuted() error = %v", err)
		}
		if got != want {
			t.Errorf("toggle %d = %v, expected %v", i, got, want)
		}
	}
}

func TestCorruptBlobFallsBack(t *testing.T) {
	m := testManager(t)
	if err := m.SaveObjectProp(prefsObject, prefsProperty, []byte("muted: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp() error = %v", err)
	}

	s, err := New(m)
	if err == nil {
		t.Error("New() with a corrupt blob should report an error")
	}
	if s == nil || s.Muted() {
		t.Error("corrupt blob should fall back to defaults")
	}
}

func TestMemoryOnlyStore(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if s.Persistent() {
		t.Error("Persistent() = true, expected false")
	}
	if err := s.SetMuted(true); err != nil {
		t.Errorf("SetMuted() error = %v", err)
	}
	if !s.Muted() {
		t.Error("memory-only store lost the flag")
	}
}
