package hero

import "github.com/vovakirdan/kleiner-held/internal/config"

// Lifecycle tracks an actor from alive to dead to counted.
// Counted is reached exactly once, when the death has been booked
// (defeat counter and coin drop); it is what keeps a kill from being
// counted on two consecutive sweeps.
type Lifecycle uint8

const (
	Alive Lifecycle = iota
	Dead
	Counted
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Counted:
		return "counted"
	default:
		return "unknown"
	}
}

// Actor is the fighting entity base shared by the hero, enemies and bosses.
type Actor struct {
	Body
	Anim Animator

	Health    int
	MaxHealth int
	Life      Lifecycle

	Hurt         bool
	Attacking    bool
	InvulnActive bool

	Speed          float64 // px per 16ms
	AttackRange    float64
	AttackDamage   int
	AttackCooldown float64 // ms until the next attack is allowed
}

// Damageable is implemented by entities that take hits.
// Stats may return nil for an absent entity.
type Damageable interface {
	Physical
	Stats() *Actor
}

func newActor(c config.ActorConfig, anims *AnimSet, initial State) Actor {
	hb := c.Hitbox
	return Actor{
		Body: Body{
			Width:  c.Width,
			Height: c.Height,
			Scale:  c.Scale,
			Hitbox: Hitbox{
				Width:       hb.Width,
				Height:      hb.Height,
				OffsetX:     hb.OffsetX,
				OffsetY:     hb.OffsetY,
				OffsetXLeft: hb.OffsetXLeft,
				Centered:    hb.Centered,
				NoMirror:    hb.NoMirror,
			},
		},
		Anim:         newAnimator(anims, initial),
		Health:       c.Health,
		MaxHealth:    c.Health,
		Speed:        c.Speed,
		AttackRange:  c.AttackRange,
		AttackDamage: c.AttackDamage,
	}
}

// Stats returns the actor itself.
func (a *Actor) Stats() *Actor {
	return a
}

// Animation returns the animation clock.
func (a *Actor) Animation() *Animator {
	return &a.Anim
}

// IsDead reports whether the actor has died (counted or not).
func (a *Actor) IsDead() bool {
	return a.Life != Alive
}

// TakeDamage applies a hit. It is a no-op while invulnerable, once dead,
// or without health. Health is clamped at zero, which kills the actor.
// Returns true when the hit left the actor alive and hurt; the caller
// owns clearing Hurt later.
func (a *Actor) TakeDamage(amount int) bool {
	if a == nil || a.InvulnActive || a.IsDead() || a.MaxHealth <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	a.Health = max(0, a.Health-amount)
	if a.Health <= 0 {
		a.Die()
		return false
	}
	a.Hurt = true
	a.Anim.Set(StateHurt, true)
	return true
}

// Die kills the actor and starts the death animation. Idempotent.
func (a *Actor) Die() {
	if a.IsDead() {
		return
	}
	a.Life = Dead
	a.Health = 0
	a.Hurt = false
	a.Attacking = false
	a.Anim.Set(StateDeath, true)
}

// resolveState picks the animation state from the flags:
// death > hurt > attack > run > idle.
func (a *Actor) resolveState() {
	switch {
	case a.IsDead():
		a.Anim.Set(StateDeath, false)
	case a.Hurt:
		a.Anim.Set(StateHurt, false)
	case a.Attacking:
		a.Anim.Set(StateAttack, false)
	case a.Speed > 0:
		a.Anim.Set(StateRun, false)
	default:
		a.Anim.Set(StateIdle, false)
	}
}
