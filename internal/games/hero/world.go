package hero

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/core"
)

// Sound keys passed to the Audio hook.
const (
	SoundSword      = "sword"
	SoundSpear      = "spear"
	SoundBossTroll  = "bosstroll"
	SoundBossDragon = "bossdragon"
	SoundBossDemon  = "bossdemon"
	SoundDeath      = "death"
	SoundGameOver   = "gameover"
	SoundJump       = "jump"
	SoundWin        = "win"
)

// SoundKeys lists every key the simulation can play.
var SoundKeys = []string{
	SoundSword, SoundSpear, SoundBossTroll, SoundBossDragon, SoundBossDemon,
	SoundDeath, SoundGameOver, SoundJump, SoundWin,
}

// maxStepMs bounds a single tick so a stalled frame cannot tunnel entities.
const maxStepMs = 100

// Audio is the fire-and-forget sound hook.
type Audio interface {
	Play(key string)
}

// Controls is the input sampled once per tick. Movement reads the held
// state, purchases and pause react to rising edges only.
type Controls struct {
	Left, Right bool
	Jump        bool
	AttackLight bool
	AttackHeavy bool
	BuyHeart    bool
	BuyWeapon   bool
	BuyLucky    bool
	BuyInvuln   bool
	Pause       bool
}

// Option configures a World.
type Option func(*World)

// WithAudio sets the sound hook.
func WithAudio(a Audio) Option {
	return func(w *World) { w.audio = a }
}

// WithLogger sets the logger. Nil means silent.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithSeed seeds the random source.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = NewSimpleRNG(seed) }
}

// World owns the authoritative simulation state.
type World struct {
	cfg   config.GameConfig
	rng   *SimpleRNG
	sched *Scheduler
	audio Audio
	log   *log.Logger

	character *Character
	enemies   []*Enemy
	boss      *Boss
	coins     []*Coin
	levelEnd  *LevelEnd
	birds     []*Bird
	camera    Camera

	level      LevelSpec
	levelIndex int
	phase      LevelPhase

	paused    bool
	switching bool

	pending       []float64 // respawn deadlines on the simulation clock
	targetEnemies int
	autoRespawn   bool
	defeated      int // this level
	runDefeated   int // this run

	powerups   powerupLatches
	overlay    Presentation
	helpFrom   Overlay
	inRun      bool
	runStart   float64
	tick       uint64
	pauseLatch bool
	pendingCfg *config.GameConfig
}

// NewWorld builds a world with the first level loaded, paused on the
// start screen.
func NewWorld(cfg config.GameConfig, opts ...Option) (*World, error) {
	w := &World{
		cfg:   cfg,
		rng:   NewSimpleRNG(1),
		sched: &Scheduler{},
	}
	for _, opt := range opts {
		opt(w)
	}

	spec, err := ResolveLevel(&w.cfg, 0)
	if err != nil {
		return nil, err
	}
	w.character = newCharacter(w.cfg.Player, spec.GroundY)
	if err := w.LoadLevel(0); err != nil {
		return nil, err
	}
	w.paused = true
	w.overlay = Presentation{State: OverlayStart}
	return w, nil
}

// normalizeDt maps a wall-clock delta into a safe step.
func normalizeDt(dt float64) float64 {
	switch {
	case math.IsNaN(dt) || math.IsInf(dt, 0):
		return 16
	case dt < 0:
		return 0
	case dt > maxStepMs:
		return maxStepMs
	}
	return dt
}

// Update advances the simulation by dt milliseconds.
func (w *World) Update(dt float64, in Controls) {
	dt = normalizeDt(dt)

	if in.Pause && !w.pauseLatch {
		w.TogglePause()
	}
	w.pauseLatch = in.Pause

	if w.paused {
		return
	}
	c := w.character
	if c == nil {
		return
	}
	if c.IsDead() {
		w.enterDead()
		return
	}

	w.tick++
	w.sched.Advance(dt)

	if in.Left {
		c.MoveLeft(dt)
	}
	if in.Right {
		c.MoveRight(dt)
	}
	w.clampX(&c.Body)

	ev := c.Update(in)
	if ev.Jumped {
		w.play(SoundJump)
	}
	if ev.Swung {
		w.PlayerAttack(ev.Attack)
	}
	c.Anim.Advance(dt)
	c.UpdatePhysics(dt)

	w.updatePowerups(dt, in)
	w.camera.Update(c, in, w.level.Width, w.cfg.View.Width, dt)
	w.camera.DriftClouds(dt, w.level.TileWidth)

	for _, e := range w.enemies {
		if e == nil {
			continue
		}
		w.updateEnemy(e, dt)
		e.resolveState()
		e.Anim.Advance(dt)
		w.clampX(&e.Body)
	}

	if b := w.boss; b != nil {
		w.preCueBoss()
		w.updateBoss(b, dt)
		b.resolveState()
		if !b.Aggro && b.Anim.State == StateRun {
			b.Anim.Set(StateIdle, false)
		}
		b.Anim.Advance(dt)
		w.clampX(&b.Body)
		if b.Aggro && w.autoRespawn {
			w.autoRespawn = false
			w.pending = nil
		}
	}

	w.updateBirds(dt)

	for _, coin := range w.coins {
		coin.Update(dt, w.level.GroundY, &w.cfg.Coins)
	}
	w.collectCoins()

	w.checkLevelEnd()

	w.cleanupDead()
	w.handleRespawns()
}

// enterDead pauses on the dead screen once.
func (w *World) enterDead() {
	if w.overlay.State == OverlayDead {
		return
	}
	w.paused = true
	w.overlay.State = OverlayDead
	w.overlay.Stats = w.stats()
	w.play(SoundGameOver)
	if w.log != nil {
		w.log.Info("player died", "level", w.levelIndex+1, "coins", w.character.AllCoins, "defeated", w.runDefeated)
	}
}

// clampX keeps a body inside [0, levelWidth - hitboxWidth].
func (w *World) clampX(b *Body) {
	if b == nil {
		return
	}
	b.X = core.ClampF(b.X, 0, max(0, w.level.Width-b.HitboxWidth()))
}

func (w *World) play(key string) {
	if w.audio == nil || key == "" {
		return
	}
	w.audio.Play(key)
}

// Character returns the hero.
func (w *World) Character() *Character { return w.character }

// Enemies returns the live enemies.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Boss returns the boss, or nil once it has been removed.
func (w *World) Boss() *Boss { return w.boss }

// Coins returns the uncollected coins.
func (w *World) Coins() []*Coin { return w.coins }

// Birds returns the decorative birds.
func (w *World) Birds() []*Bird { return w.birds }

// LevelEnd returns the level-end treasure.
func (w *World) LevelEnd() *LevelEnd { return w.levelEnd }

// Camera returns the camera state.
func (w *World) Camera() Camera { return w.camera }

// Level returns the resolved current level.
func (w *World) Level() LevelSpec { return w.level }

// LevelIndex returns the zero-based index of the current level.
func (w *World) LevelIndex() int { return w.levelIndex }

// LevelCount returns the number of configured levels.
func (w *World) LevelCount() int { return len(w.cfg.Levels) }

// Phase returns the level lifecycle phase.
func (w *World) Phase() LevelPhase { return w.phase }

// Paused reports whether ticks are currently skipped.
func (w *World) Paused() bool { return w.paused }

// Switching reports whether the level end has been triggered.
func (w *World) Switching() bool { return w.switching }

// Defeated returns the kills of the current level.
func (w *World) Defeated() int { return w.defeated }

// RunDefeated returns the kills of the current run.
func (w *World) RunDefeated() int { return w.runDefeated }

// PendingRespawns returns the queued respawn deadlines.
func (w *World) PendingRespawns() []float64 { return w.pending }

// Now returns the simulation clock in ms.
func (w *World) Now() float64 { return w.sched.Now() }

// Tick returns the number of simulated ticks.
func (w *World) Tick() uint64 { return w.tick }

// Config returns the active configuration.
func (w *World) Config() *config.GameConfig { return &w.cfg }

// ApplyConfig stages cfg; it takes effect at the next level load. A config
// with an unplayable level, or fewer levels than already reached, is
// rejected and the world keeps what it had.
func (w *World) ApplyConfig(cfg config.GameConfig) error {
	if err := ValidateLevels(&cfg); err != nil {
		return err
	}
	if len(cfg.Levels) < w.levelIndex+1 {
		return fmt.Errorf("hero: %d levels configured, already on level %d: %w",
			len(cfg.Levels), w.levelIndex+1, ErrUnknownLevel)
	}
	w.pendingCfg = &cfg
	return nil
}
