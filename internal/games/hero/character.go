package hero

import (
	"math"

	"github.com/vovakirdan/kleiner-held/internal/config"
)

// Progress is the hero's purchasable state. It survives level loads and
// is reset only when a new run starts.
type Progress struct {
	Coins       int // spendable balance
	AllCoins    int // lifetime total this run
	Hearts      int
	WeaponLevel int
	Lucky       bool
	InvulnOwned bool

	InvulnTimer    float64 // ms left while active
	InvulnCooldown float64 // ms until it can be activated again
}

// Character is the player-controlled hero.
type Character struct {
	Actor
	Progress

	SpeedY       float64
	Acceleration float64
	JumpPower    float64
	GroundY      float64
	StartX       float64
}

// characterEvents reports what one Update started.
type characterEvents struct {
	Attack State // StateAttack or StateAttackExtra when a swing started
	Swung  bool
	Jumped bool
}

func newCharacter(cfg config.PlayerConfig, groundY float64) *Character {
	c := &Character{
		Actor:        newActor(cfg.ActorConfig, &heroAnims, StateIdle),
		Acceleration: cfg.Acceleration,
		JumpPower:    cfg.JumpPower,
		GroundY:      groundY,
		StartX:       cfg.StartX,
	}
	c.X = cfg.StartX
	c.Y = groundY - c.Height*c.scale()
	return c
}

// Physics implements Physical.
func (c *Character) Physics() *Body {
	if c == nil {
		return nil
	}
	return &c.Body
}

// Stats implements Damageable.
func (c *Character) Stats() *Actor {
	if c == nil {
		return nil
	}
	return &c.Actor
}

// MoveLeft walks left by speed scaled to dt.
func (c *Character) MoveLeft(dt float64) {
	c.X -= c.Speed * dt / 16
	c.FacingLeft = true
}

// MoveRight walks right by speed scaled to dt.
func (c *Character) MoveRight(dt float64) {
	c.X += c.Speed * dt / 16
	c.FacingLeft = false
}

// AboveGround reports whether the sprite bottom is clear of the ground.
func (c *Character) AboveGround() bool {
	return c.Y+c.Height*c.scale() < c.GroundY-0.5
}

// Jump starts a jump when standing and not already jumping.
func (c *Character) Jump() bool {
	if c.AboveGround() || c.Anim.State == StateJump {
		return false
	}
	c.SpeedY = -c.JumpPower
	c.setState(StateJump, true)
	return true
}

// UpdatePhysics applies gravity and snaps to the ground.
func (c *Character) UpdatePhysics(dt float64) {
	f := 1.0
	if !math.IsNaN(dt) && !math.IsInf(dt, 0) {
		f = dt / 16
	}
	if c.AboveGround() || c.SpeedY < 0 {
		c.Y += c.SpeedY * f
		c.SpeedY += c.Acceleration * f
	}
	if groundTop := c.GroundY - c.Height*c.scale(); c.Y >= groundTop {
		c.Y = groundTop
		c.SpeedY = 0
	}
}

// setState switches animation; leaving the attack states ends the swing.
func (c *Character) setState(s State, reset bool) {
	c.Anim.Set(s, reset)
	if s != StateAttack && s != StateAttackExtra {
		c.Attacking = false
	}
}

// Update runs the hero state machine for one tick. Priority:
// death, hurt, attack input, attack end, jump end, jump input, run/idle.
func (c *Character) Update(in Controls) characterEvents {
	var ev characterEvents

	switch {
	case c.IsDead():
		c.setState(StateDeath, false)
	case c.Hurt:
		c.setState(StateHurt, false)
	case in.AttackLight && c.Anim.State != StateAttack:
		c.setState(StateAttack, true)
		c.Attacking = true
		ev.Attack, ev.Swung = StateAttack, true
	case in.AttackHeavy && c.Anim.State != StateAttackExtra:
		c.setState(StateAttackExtra, true)
		c.Attacking = true
		ev.Attack, ev.Swung = StateAttackExtra, true
	case c.Anim.State == StateAttack || c.Anim.State == StateAttackExtra:
		if c.Anim.AtLastFrame() {
			c.setState(StateIdle, false)
		}
	case c.Anim.State == StateJump:
		if c.Anim.AtLastFrame() && !c.AboveGround() {
			c.setState(StateIdle, false)
		}
	case in.Jump:
		ev.Jumped = c.Jump()
	case in.Left || in.Right:
		c.setState(StateRun, false)
	default:
		c.setState(StateIdle, false)
	}
	return ev
}

// resetForLevel places the hero at the level start on the new ground.
func (c *Character) resetForLevel(groundY float64) {
	c.GroundY = groundY
	c.X = c.StartX
	c.SpeedY = 0
	c.Y = groundY - c.Height*c.scale()
	c.setState(StateIdle, true)
}

// resetRun restores full health and clears all progress.
func (c *Character) resetRun() {
	c.Progress = Progress{}
	c.Health = c.MaxHealth
	c.Life = Alive
	c.Hurt = false
	c.Attacking = false
	c.InvulnActive = false
	c.setState(StateIdle, true)
}

// applyConfig takes new player stats while keeping progress and the
// current health, capped at the new maximum.
func (c *Character) applyConfig(cfg config.PlayerConfig) {
	next := newCharacter(cfg, c.GroundY)
	c.Width, c.Height, c.Scale = next.Width, next.Height, next.Scale
	c.Hitbox = next.Hitbox
	c.MaxHealth = next.MaxHealth
	c.Health = min(c.Health, c.MaxHealth)
	c.Speed = next.Speed
	c.AttackRange = next.AttackRange
	c.AttackDamage = next.AttackDamage
	c.Acceleration = next.Acceleration
	c.JumpPower = next.JumpPower
	c.StartX = next.StartX
}
