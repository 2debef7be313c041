package hero

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/kleiner-held/internal/config"
)

var (
	// ErrUnknownLevel is returned for a level index outside the campaign.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrInvalidLevel is returned for a level definition that cannot be played.
	ErrInvalidLevel = errors.New("invalid level definition")
	// ErrNoLevels is returned for a config without a campaign.
	ErrNoLevels = errors.New("no levels configured")
)

// Roster binds a level to its enemy and boss types.
type Roster struct {
	Enemy EnemyKind
	Boss  BossKind
}

// rosters is indexed by level. Levels past the table use the first roster.
var rosters = []Roster{
	{Enemy: KindLizard, Boss: BossTroll},
	{Enemy: KindSkeleton, Boss: BossDragon},
	{Enemy: KindMinotaur, Boss: BossDemon},
}

// RosterFor returns the roster of a level index.
func RosterFor(index int) Roster {
	if index < 0 || index >= len(rosters) {
		return rosters[0]
	}
	return rosters[index]
}

// LevelSpec is a level definition with every default filled in.
type LevelSpec struct {
	Index     int
	Name      string
	GroundY   float64
	Width     float64
	TileWidth float64
	BossX     float64
	LevelEndX float64
	Enemies   int
	Birds     int
	SafeZone  float64
	Roster    Roster
}

// LevelPhase is the level lifecycle position.
type LevelPhase uint8

const (
	PhaseLoading LevelPhase = iota
	PhaseActive
	PhaseEnding
	PhaseFinal
)

// String returns the phase name.
func (p LevelPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	case PhaseFinal:
		return "final"
	default:
		return "unknown"
	}
}

// LevelEnd is the treasure the hero must reach to finish a level.
type LevelEnd struct {
	Body
}

// Physics implements Physical.
func (l *LevelEnd) Physics() *Body {
	if l == nil {
		return nil
	}
	return &l.Body
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

// ResolveLevel fills a level definition from the defaults and validates it.
func ResolveLevel(cfg *config.GameConfig, index int) (LevelSpec, error) {
	if index < 0 || index >= len(cfg.Levels) {
		return LevelSpec{}, fmt.Errorf("hero: level %d: %w", index+1, ErrUnknownLevel)
	}
	def := cfg.Levels[index]
	d := cfg.Fallbacks
	spec := LevelSpec{
		Index:     index,
		Name:      def.Name,
		GroundY:   pick(def.GroundY, d.GroundY),
		Width:     pick(def.Width, d.Width),
		TileWidth: pick(def.TileWidth, d.TileWidth),
		BossX:     pick(def.BossX, d.BossX),
		LevelEndX: pick(def.LevelEndX, d.LevelEndX),
		Enemies:   pick(def.Enemies, d.Enemies),
		Birds:     pick(def.Birds, d.Birds),
		SafeZone:  d.SafeZone,
		Roster:    RosterFor(index),
	}
	if spec.Name == "" {
		spec.Name = fmt.Sprintf("Level %d", index+1)
	}
	if err := spec.validate(); err != nil {
		return LevelSpec{}, fmt.Errorf("hero: level %d: %w", index+1, err)
	}
	return spec, nil
}

// ValidateLevels resolves every level of cfg and returns the first error.
func ValidateLevels(cfg *config.GameConfig) error {
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("hero: %w", ErrNoLevels)
	}
	for i := range cfg.Levels {
		if _, err := ResolveLevel(cfg, i); err != nil {
			return err
		}
	}
	return nil
}

func (s LevelSpec) validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"ground_y", s.GroundY}, {"width", s.Width}, {"tile_width", s.TileWidth},
		{"boss_x", s.BossX}, {"level_end_x", s.LevelEndX},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%s is not a number: %w", f.name, ErrInvalidLevel)
		}
	}
	switch {
	case s.GroundY <= 0:
		return fmt.Errorf("ground_y must be positive: %w", ErrInvalidLevel)
	case s.Width <= 0:
		return fmt.Errorf("width must be positive: %w", ErrInvalidLevel)
	case s.Enemies < 0 || s.Birds < 0:
		return fmt.Errorf("entity counts must not be negative: %w", ErrInvalidLevel)
	case s.LevelEndX < 0 || s.LevelEndX > s.Width:
		return fmt.Errorf("level_end_x %.0f outside level: %w", s.LevelEndX, ErrInvalidLevel)
	}
	return nil
}

// LoadLevel rebuilds the world for level index in place. The hero keeps
// its progress; everything per level is reset.
func (w *World) LoadLevel(index int) error {
	cfg := &w.cfg
	if w.pendingCfg != nil {
		cfg = w.pendingCfg
	}
	spec, err := ResolveLevel(cfg, index)
	if err != nil {
		return err
	}

	w.phase = PhaseLoading
	if w.pendingCfg != nil {
		w.cfg = *w.pendingCfg
		w.pendingCfg = nil
		w.character.applyConfig(w.cfg.Player)
		if w.log != nil {
			w.log.Info("config applied", "level", index+1)
		}
	}
	w.level = spec
	w.levelIndex = index

	c := w.character
	c.resetForLevel(spec.GroundY)

	w.enemies = w.enemies[:0]
	w.targetEnemies = spec.Enemies
	maxX := spec.Width - w.cfg.AI.SpawnEdgeOffset
	minX := min(maxX, c.X+spec.SafeZone)
	for range spec.Enemies {
		x := minX
		if maxX > minX {
			x = math.Round(minX + w.rng.Float64()*(maxX-minX))
		}
		e := newEnemy(&w.cfg, spec.Roster.Enemy, x, spec.GroundY, w.rng)
		w.faceCharacter(&e.Body)
		w.enemies = append(w.enemies, e)
	}

	w.boss = newBoss(&w.cfg, spec.Roster.Boss, spec.BossX, spec.GroundY, w.rng)
	w.faceCharacter(&w.boss.Body)

	le := w.cfg.LevelEnd
	w.levelEnd = &LevelEnd{Body: Body{
		X:      spec.LevelEndX,
		Y:      spec.GroundY - le.Height,
		Width:  le.Width,
		Height: le.Height,
		Scale:  1,
	}}

	w.spawnBirds(spec.Birds)

	w.coins = w.coins[:0]
	w.camera.reset()
	w.pending = w.pending[:0]
	w.autoRespawn = true
	w.defeated = 0
	w.switching = false
	w.phase = PhaseActive

	if w.log != nil {
		w.log.Info("level loaded",
			"level", index+1,
			"name", spec.Name,
			"enemies", spec.Enemies,
			"boss", spec.Roster.Boss,
		)
	}
	return nil
}

// bossGate reports whether the boss still blocks the level end.
func (w *World) bossGate() bool {
	return w.boss != nil && !w.boss.IsDead()
}

// checkLevelEnd ends the level when the hero touches the treasure and
// the boss is gone or dead.
func (w *World) checkLevelEnd() {
	if w.switching || w.bossGate() {
		return
	}
	if Intersects(w.character, w.levelEnd) {
		w.handleEnd()
	}
}

// handleEnd records stats and shows the final screen after the last level,
// or the map change screen otherwise. Re-entry is blocked by switching.
func (w *World) handleEnd() {
	if w.switching {
		return
	}
	w.switching = true
	w.phase = PhaseEnding
	w.overlay.Stats = w.stats()
	w.paused = true

	last := w.levelIndex >= len(w.cfg.Levels)-1
	if w.log != nil {
		w.log.Info("level complete", "level", w.levelIndex+1, "final", last, "defeated", w.defeated)
	}
	if last {
		w.phase = PhaseFinal
		w.overlay.State = OverlayFinal
		return
	}
	w.overlay.State = OverlayMapChange
	w.overlay.NextLevel = w.levelIndex + 2
}
