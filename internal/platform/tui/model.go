package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/core"
	"github.com/vovakirdan/kleiner-held/internal/registry"
	"github.com/vovakirdan/kleiner-held/internal/storage"
)

// Muter toggles sound output.
type Muter interface {
	SetMuted(muted bool)
}

// MutePrefs persists the mute preference.
type MutePrefs interface {
	Muted() bool
	SetMuted(muted bool) error
}

// Options wires the optional services of a play session.
type Options struct {
	Store  *storage.Store
	Audio  Muter
	Prefs  MutePrefs
	Logger *log.Logger

	// Reload delivers changed config paths; LoadConfig turns them into a config.
	Reload     <-chan string
	LoadConfig func(path string) (config.GameConfig, error)

	// OnFrame runs after every simulation tick.
	OnFrame func()

	// Hold is the key hold window; zero uses DefaultHold.
	Hold time.Duration
}

// configurable games accept config changes while running.
type configurable interface {
	ApplyConfig(cfg config.GameConfig) error
}

// timed games report the simulated length of the current run.
type timed interface {
	RunDuration() time.Duration
}

// failing games report an unrecoverable simulation error.
type failing interface {
	Err() error
}

// reloadMsg carries a changed config path.
type reloadMsg string

// Model is the Bubble Tea model for a play session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	gameState core.GameState
	lastTick  time.Time
	quitting  bool
	runSaved  bool // the current run has been recorded
	err       error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(opts.Hold),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.Audio != nil && m.opts.Prefs != nil {
		m.opts.Audio.SetMuted(m.opts.Prefs.Muted())
	}
	return tea.Batch(tickCmd(m.config.TickRate), m.waitReload())
}

// waitReload blocks on the next config change.
func (m Model) waitReload() tea.Cmd {
	if m.opts.Reload == nil {
		return nil
	}
	ch := m.opts.Reload
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(path)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		m.handleReload(string(msg))
		return m, m.waitReload()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Press(msg, time.Now()) {
	case core.ActionQuit:
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionMute:
		m.toggleMute()
	}
	return m, nil
}

func (m Model) toggleMute() {
	if m.opts.Prefs == nil {
		return
	}
	muted := !m.opts.Prefs.Muted()
	if err := m.opts.Prefs.SetMuted(muted); err != nil {
		m.opts.Logger.Warn("could not save mute preference", "error", err)
	}
	if m.opts.Audio != nil {
		m.opts.Audio.SetMuted(muted)
	}
	m.opts.Logger.Debug("mute toggled", "muted", muted)
}

// handleResize processes window resize events. The world keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m *Model) handleReload(path string) {
	g, ok := m.game.(configurable)
	if !ok || m.opts.LoadConfig == nil {
		return
	}
	cfg, err := m.opts.LoadConfig(path)
	if err != nil {
		m.opts.Logger.Warn("config reload failed", "path", path, "error", err)
		return
	}
	if err := g.ApplyConfig(cfg); err != nil {
		m.opts.Logger.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("config reloaded", "path", path)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.keys.Frame(now), dt)
	m.gameState = result.State

	if f, ok := m.game.(failing); ok && f.Err() != nil {
		m.err = f.Err()
		m.opts.Logger.Error("simulation stopped", "error", m.err)
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.gameState.GameOver && m.gameState.Won:
		m.saveRun(storage.OutcomeFinal)
	case m.gameState.GameOver:
		m.saveRun(storage.OutcomeDead)
	case m.runSaved:
		// A new run started after the previous one was recorded.
		m.runSaved = false
	}

	if m.opts.OnFrame != nil {
		m.opts.OnFrame()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Quitting from the start screen
// or before any progress records nothing.
func (m *Model) saveRun(outcome string) {
	if m.runSaved || !m.gameState.Started {
		return
	}
	st := m.gameState
	if outcome == storage.OutcomeQuit && st.Score == 0 && st.Defeated == 0 && st.Level <= 1 {
		return
	}
	m.runSaved = true
	if m.opts.Store == nil {
		return
	}

	rec := storage.RunRecord{
		GameID:   m.game.ID(),
		Outcome:  outcome,
		Level:    st.Level,
		Score:    st.Score,
		Defeated: st.Defeated,
	}
	if g, ok := m.game.(timed); ok {
		rec.DurationMs = g.RunDuration().Milliseconds()
	}
	if _, err := m.opts.Store.SaveRun(rec); err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "outcome", outcome, "score", st.Score, "level", st.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".kleinerheld", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
