package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, GameFile)
	if err := os.WriteFile(path, []byte("view:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, changes, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Close()

	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("view:\n  width: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changes:
		abs, _ := filepath.Abs(path)
		if got != abs {
			t.Errorf("change = %q, expected %q", got, abs)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for config write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed after Close")
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"a.yaml", true},
		{"b.YML", true},
		{"c.json", false},
		{"noext", false},
	}
	for _, tc := range tests {
		if got := isConfigFile(tc.path); got != tc.expected {
			t.Errorf("isConfigFile(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestWatcherReportsLastWriteOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, GameFile)

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	var last []byte
	for i := range 4 {
		last = []byte("view:\n  width: " + string(rune('5'+i)) + "00\n")
		if err := os.WriteFile(path, last, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(debounce / 10)
	}

	select {
	case <-w.Events:
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != string(last) {
			t.Errorf("reported content = %q, expected the final write %q", data, last)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for the writes")
	}

	select {
	case name := <-w.Events:
		t.Errorf("second event for %q, expected the writes to coalesce", name)
	case <-time.After(3 * debounce):
	}
}
