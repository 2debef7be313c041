package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/prefs"
	"github.com/vovakirdan/kleiner-held/internal/storage"
)

func TestApplyMute(t *testing.T) {
	settings, err := prefs.New(nil)
	if err != nil {
		t.Fatalf("prefs.New() error = %v", err)
	}

	tests := []struct {
		action string
		want   string
	}{
		{"status", "Sound: on"},
		{"on", "Sound: muted"},
		{"toggle", "Sound: on"},
		{"toggle", "Sound: muted"},
		{"off", "Sound: on"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if err := applyMute(&out, settings, tt.action); err != nil {
			t.Fatalf("applyMute(%q) error = %v", tt.action, err)
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Errorf("applyMute(%q) = %q, expected %q", tt.action, got, tt.want)
		}
	}

	if err := applyMute(&bytes.Buffer{}, settings, "loud"); err == nil {
		t.Error("applyMute(loud) should fail")
	}
}

func TestPrintLevels(t *testing.T) {
	cfg := config.DefaultGameConfig()
	var out bytes.Buffer
	if err := printLevels(&out, &cfg); err != nil {
		t.Fatalf("printLevels() error = %v", err)
	}
	for _, want := range []string{"lizard", "troll", "minotaur", "demon"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("printLevels() missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintLevelsReportsInvalid(t *testing.T) {
	cfg := config.DefaultGameConfig()
	zero := 0.0
	cfg.Levels[1].Width = &zero

	var out bytes.Buffer
	if err := printLevels(&out, &cfg); err == nil {
		t.Error("printLevels() with a zero-width level should fail")
	}

	cfg.Levels = nil
	if err := printLevels(&out, &cfg); err == nil {
		t.Error("printLevels() without levels should fail")
	}
}

func TestPrintRuns(t *testing.T) {
	var out bytes.Buffer
	printRuns(&out, "Kleiner Held", nil, nil)
	if !strings.Contains(out.String(), "No runs recorded yet") {
		t.Errorf("empty output = %q", out.String())
	}

	out.Reset()
	runs := []storage.RunRecord{{Score: 80, Level: 2, Defeated: 12, DurationMs: 125000, Outcome: storage.OutcomeDead}}
	printRuns(&out, "Kleiner Held", runs, &storage.RunStats{Runs: 1, BestScore: 80})
	for _, want := range []string{"80", "2:05", "dead", "Best: 80"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("printRuns() missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintSimReportJSON(t *testing.T) {
	r := simReport{Seed: 7, Outcome: "dead", Level: 2, Coins: 40, Defeated: 9, Ticks: 100, Seconds: 1.6, Hash: "00000000000000ff"}

	var out bytes.Buffer
	if err := printSimReport(&out, r, true); err != nil {
		t.Fatalf("printSimReport() error = %v", err)
	}
	var got simReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got != r {
		t.Errorf("decoded = %+v, expected %+v", got, r)
	}

	out.Reset()
	printSimReport(&out, r, false)
	if !strings.Contains(out.String(), "Outcome:   dead") {
		t.Errorf("text report = %q", out.String())
	}
}
