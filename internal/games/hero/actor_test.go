package hero

import (
	"testing"

	"github.com/vovakirdan/kleiner-held/internal/config"
)

func testActor(health int) *Actor {
	a := newActor(config.ActorConfig{Width: 50, Height: 50, Health: health}, &lizardAnims, StateIdle)
	return &a
}

func TestTakeDamageMonotonic(t *testing.T) {
	a := testActor(30)
	hits := []int{5, 0, -4, 12, 40, 7}

	prev := a.Health
	for i, n := range hits {
		a.TakeDamage(n)
		if a.Health > prev {
			t.Fatalf("hit %d: health rose from %d to %d", i, prev, a.Health)
		}
		if a.Health < 0 {
			t.Fatalf("hit %d: health = %d, expected >= 0", i, a.Health)
		}
		prev = a.Health
	}

	if a.Health != 0 {
		t.Errorf("Health = %d, expected 0", a.Health)
	}
	if !a.IsDead() || a.Life != Dead {
		t.Errorf("Life = %v, expected dead", a.Life)
	}
	if a.TakeDamage(5) {
		t.Error("TakeDamage() on a dead actor should report no hit")
	}
	if a.Anim.State != StateDeath {
		t.Errorf("state = %v, expected death", a.Anim.State)
	}
}

func TestTakeDamageHurt(t *testing.T) {
	a := testActor(30)
	if !a.TakeDamage(10) {
		t.Fatal("TakeDamage() = false, expected true")
	}
	if a.Health != 20 || !a.Hurt {
		t.Errorf("after hit: health=%d hurt=%v, expected 20 true", a.Health, a.Hurt)
	}
	if a.Anim.State != StateHurt {
		t.Errorf("state = %v, expected hurt", a.Anim.State)
	}
}

func TestTakeDamageInvulnerable(t *testing.T) {
	for _, n := range []int{1, 50, 1000} {
		a := testActor(30)
		a.InvulnActive = true
		if a.TakeDamage(n) {
			t.Errorf("TakeDamage(%d) while invulnerable = true, expected false", n)
		}
		if a.Health != 30 || a.IsDead() {
			t.Errorf("TakeDamage(%d) while invulnerable changed health to %d", n, a.Health)
		}
	}
}

func TestTakeDamageNoHealth(t *testing.T) {
	a := testActor(0)
	if a.TakeDamage(10) {
		t.Error("TakeDamage() without health should be a no-op")
	}
	var nilActor *Actor
	if nilActor.TakeDamage(10) {
		t.Error("TakeDamage() on nil should be a no-op")
	}
}

func TestResolveStatePriority(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a *Actor)
		want  State
	}{
		{"idle", func(a *Actor) { a.Speed = 0 }, StateIdle},
		{"run", func(a *Actor) { a.Speed = 1 }, StateRun},
		{"attack over run", func(a *Actor) { a.Speed = 1; a.Attacking = true }, StateAttack},
		{"hurt over attack", func(a *Actor) { a.Attacking = true; a.Hurt = true }, StateHurt},
		{"death over hurt", func(a *Actor) { a.Hurt = true; a.Die() }, StateDeath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testActor(20)
			tt.setup(a)
			a.resolveState()
			if a.Anim.State != tt.want {
				t.Errorf("resolveState() = %v, expected %v", a.Anim.State, tt.want)
			}
		})
	}
}

func TestDieIdempotent(t *testing.T) {
	a := testActor(20)
	a.Die()
	a.Life = Counted
	a.Die()
	if a.Life != Counted {
		t.Errorf("Die() on a counted actor changed Life to %v", a.Life)
	}
}

func TestAnimatorDeathCompletes(t *testing.T) {
	a := testActor(20)
	a.Die()
	n := a.Anim.Frames()
	for i := 0; i < n-1; i++ {
		if a.Anim.DeathComplete {
			t.Fatalf("DeathComplete raised after %d frames, expected %d", i, n-1)
		}
		a.Anim.Advance(1000)
	}
	if !a.Anim.DeathComplete {
		t.Error("DeathComplete should be raised on the last frame")
	}
	a.Anim.Advance(1000)
	if a.Anim.Frame != n-1 {
		t.Errorf("death frame = %d, expected to hold at %d", a.Anim.Frame, n-1)
	}
}

func TestAnimatorUnsupportedStateFallsBack(t *testing.T) {
	a := newAnimator(&lizardAnims, StateIdle)
	a.Set(StateJump, true)
	if a.State != StateIdle {
		t.Errorf("Set(jump) on a lizard = %v, expected idle", a.State)
	}
}
