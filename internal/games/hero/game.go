package hero

import (
	"time"

	"github.com/vovakirdan/kleiner-held/internal/config"
	"github.com/vovakirdan/kleiner-held/internal/core"
	"github.com/vovakirdan/kleiner-held/internal/registry"
)

// GameID is the registry identifier.
const GameID = "hero"

// Game adapts a World to the platform's game interface: it owns the
// overlay key edges, converts frame durations and maps input actions.
type Game struct {
	cfg   config.GameConfig
	opts  []Option
	world *World
	err   error

	runtime      core.RuntimeConfig
	confirmLatch bool
	helpLatch    bool
}

// New creates a game that builds its world from cfg on Reset.
func New(cfg config.GameConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Kleiner Held"
}

// Reset builds a fresh world on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	opts := make([]Option, 0, len(g.opts)+1)
	opts = append(opts, WithSeed(runtime.Seed))
	opts = append(opts, g.opts...)
	g.world, g.err = NewWorld(g.cfg, opts...)
	g.confirmLatch, g.helpLatch = false, false
}

// Err returns the last error from building the world or loading a level.
func (g *Game) Err() error {
	return g.err
}

// World returns the simulation, nil before Reset or after a failed one.
func (g *Game) World() *World {
	return g.world
}

// RunDuration returns simulation time spent in the current run.
func (g *Game) RunDuration() time.Duration {
	if g.world == nil || !g.world.InRun() {
		return 0
	}
	return time.Duration(g.world.RunTime() * float64(time.Millisecond))
}

// ApplyConfig replaces the configuration. A running world picks it up
// at its next level load; the next Reset uses it from the start. A
// rejected config changes nothing.
func (g *Game) ApplyConfig(cfg config.GameConfig) error {
	if g.world != nil {
		if err := g.world.ApplyConfig(cfg); err != nil {
			return err
		}
	} else if err := ValidateLevels(&cfg); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// ControlsFrom maps platform actions onto simulation controls.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Jump:        in.Has(core.ActionJump),
		AttackLight: in.Has(core.ActionAttackLight),
		AttackHeavy: in.Has(core.ActionAttackHeavy),
		BuyHeart:    in.Has(core.ActionBuyHeart),
		BuyWeapon:   in.Has(core.ActionBuyWeapon),
		BuyLucky:    in.Has(core.ActionBuyLucky),
		BuyInvuln:   in.Has(core.ActionBuyInvuln),
		Pause:       in.Has(core.ActionPause),
	}
}

// Step advances the world by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	w := g.world
	if w == nil {
		return core.StepResult{State: g.State()}
	}

	if edge(&g.confirmLatch, in.Has(core.ActionConfirm)) {
		if err := w.Confirm(); err != nil {
			g.err = err
		}
	}
	if edge(&g.helpLatch, in.Has(core.ActionHelp)) {
		w.OpenHelp()
	}

	w.Update(float64(dt)/float64(time.Millisecond), ControlsFrom(in))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	if w == nil {
		return core.GameState{}
	}
	ov := w.Presentation().State
	st := core.GameState{
		GameOver: ov == OverlayDead || ov == OverlayFinal,
		Won:      ov == OverlayFinal,
		Paused:   w.Paused(),
		Started:  w.InRun(),
		Level:    w.LevelIndex() + 1,
		Defeated: w.RunDefeated(),
	}
	if c := w.Character(); c != nil {
		st.Score = c.AllCoins
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(config.DefaultGameConfig())
	})
}
