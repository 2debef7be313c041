package hero

// Overlay is the presentation state shown over the simulation.
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayStart
	OverlayHelp
	OverlayPause
	OverlayDead
	OverlayMapChange
	OverlayFinal
)

var overlayNames = [...]string{"none", "start", "help", "pause", "dead", "mapChange", "final"}

// String returns the overlay name.
func (o Overlay) String() string {
	if int(o) >= len(overlayNames) {
		return "unknown"
	}
	return overlayNames[o]
}

// Stats is the end-of-level summary the presentation layer shows.
type Stats struct {
	TotalCoins      int `json:"total_coins"`
	EnemiesDefeated int `json:"enemies_defeated"`
	RunDefeated     int `json:"run_defeated"`
}

// Presentation is what the simulation tells the presentation layer.
type Presentation struct {
	State     Overlay
	Stats     Stats
	NextLevel int // 1-based, set for OverlayMapChange
}

func (w *World) stats() Stats {
	s := Stats{EnemiesDefeated: w.defeated, RunDefeated: w.runDefeated}
	if w.character != nil {
		s.TotalCoins = w.character.AllCoins
	}
	return s
}

// Presentation returns the current overlay state.
func (w *World) Presentation() Presentation {
	return w.overlay
}

// TogglePause switches between running and the pause screen. Ignored
// while any other overlay is shown.
func (w *World) TogglePause() {
	switch w.overlay.State {
	case OverlayNone:
		w.overlay.State = OverlayPause
		w.paused = true
	case OverlayPause:
		w.overlay.State = OverlayNone
		w.paused = false
	}
}

// OpenHelp shows the help screen from the start or pause screen.
// Confirm returns to the screen it was opened from.
func (w *World) OpenHelp() {
	switch w.overlay.State {
	case OverlayStart, OverlayPause:
		w.helpFrom = w.overlay.State
		w.overlay.State = OverlayHelp
		w.paused = true
	}
}

// Confirm performs the action of the current overlay.
func (w *World) Confirm() error {
	switch w.overlay.State {
	case OverlayStart, OverlayFinal:
		return w.NewRun()
	case OverlayHelp:
		w.overlay.State = w.helpFrom
	case OverlayPause:
		w.TogglePause()
	case OverlayDead:
		w.play(SoundGameOver)
		return w.NewRun()
	case OverlayMapChange:
		w.play(SoundWin)
		return w.NextLevel()
	}
	return nil
}

// NewRun resets all progress and starts the first level.
func (w *World) NewRun() error {
	c := w.character
	if c == nil {
		return nil
	}
	if err := w.LoadLevel(0); err != nil {
		return err
	}
	c.resetRun()
	w.runDefeated = 0
	w.powerups = powerupLatches{}
	w.inRun = true
	w.runStart = w.sched.Now()
	w.resume()
	return nil
}

// NextLevel loads the following level, keeping progress.
func (w *World) NextLevel() error {
	if err := w.LoadLevel(w.levelIndex + 1); err != nil {
		return err
	}
	w.resume()
	return nil
}

func (w *World) resume() {
	w.overlay.State = OverlayNone
	w.overlay.NextLevel = 0
	w.paused = false
}

// InRun reports whether a run has been started from the start screen.
func (w *World) InRun() bool { return w.inRun }

// RunTime returns the simulated ms since the current run started.
func (w *World) RunTime() float64 { return w.sched.Now() - w.runStart }
