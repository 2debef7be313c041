package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kleiner-held/internal/storage"
)

func seedRuns(t *testing.T, s *storage.Store) {
	t.Helper()
	runs := []storage.RunRecord{
		{GameID: "hero", Outcome: storage.OutcomeDead, Level: 1, Score: 30, Defeated: 4, DurationMs: 61000},
		{GameID: "hero", Outcome: storage.OutcomeFinal, Level: 3, Score: 120, Defeated: 40, DurationMs: 300000},
		{GameID: "hero", Outcome: storage.OutcomeQuit, Level: 2, Score: 55, Defeated: 9, DurationMs: 90000},
	}
	for _, r := range runs {
		if _, err := s.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}
}

func TestScoreboardViews(t *testing.T) {
	store := testStore(t)
	seedRuns(t, store)

	m := NewScoreboardModel(store, "hero", 120, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 120 {
		t.Fatalf("top view = %+v, expected best score first", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 {
		t.Errorf("stats = %+v, expected 3 runs", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || m.runs[0].Score != 55 {
		t.Errorf("recent view first score = %d, expected 55", m.runs[0].Score)
	}

	out := m.View()
	for _, want := range []string{"RECENT RUNS", "Stats", "Victories"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	m := NewScoreboardModel(nil, "hero", 60, 20)
	if m.showSidebar {
		t.Error("narrow layout should hide the sidebar")
	}
	if got := len(m.table.Columns()); got != 6 {
		t.Errorf("columns = %d, expected 6", got)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "hero", 80, 24)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(ScoreboardModel).quitting {
		t.Error("q should quit the scoreboard")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{61 * time.Second, "1:01"},
		{1500 * time.Millisecond, "0:02"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
