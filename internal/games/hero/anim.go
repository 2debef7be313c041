package hero

// State is an animation state label. AI and physics branch on it,
// the renderer reads it.
type State uint8

const (
	StateIdle State = iota
	StateRun
	StateAttack
	StateAttackExtra
	StateJump
	StateHurt
	StateDeath
	stateCount
)

var stateNames = [stateCount]string{"idle", "run", "attack", "attack_extra", "jump", "hurt", "death"}

// String returns the state label.
func (s State) String() string {
	if s >= stateCount {
		return "unknown"
	}
	return stateNames[s]
}

// AnimSet lists frame counts and frame durations per state for one entity type.
// A state with zero frames is unsupported and resolves to idle.
type AnimSet struct {
	Frames    [stateCount]int
	Durations [stateCount]float64 // ms; zero uses Default
	Default   float64
}

func (s *AnimSet) duration(st State) float64 {
	if d := s.Durations[st]; d > 0 {
		return d
	}
	if s.Default > 0 {
		return s.Default
	}
	return 200
}

var (
	heroAnims = AnimSet{
		Frames:    [stateCount]int{StateIdle: 17, StateRun: 8, StateAttack: 7, StateAttackExtra: 11, StateJump: 7, StateHurt: 4, StateDeath: 10},
		Durations: [stateCount]float64{StateAttack: 120, StateAttackExtra: 70, StateRun: 100},
		Default:   200,
	}
	lizardAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 3, StateRun: 6, StateAttack: 5, StateHurt: 2, StateDeath: 6},
		Default: 200,
	}
	skeletonAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 7, StateRun: 8, StateAttack: 6, StateHurt: 2, StateDeath: 4},
		Default: 200,
	}
	minotaurAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 10, StateRun: 12, StateAttack: 5, StateHurt: 3, StateDeath: 5},
		Default: 200,
	}
	trollAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 10, StateRun: 10, StateAttack: 10, StateHurt: 10, StateDeath: 10},
		Default: 200,
	}
	dragonAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 3, StateRun: 5, StateAttack: 4, StateHurt: 2, StateDeath: 5},
		Default: 200,
	}
	demonAnims = AnimSet{
		Frames:  [stateCount]int{StateIdle: 3, StateRun: 6, StateAttack: 4, StateHurt: 2, StateDeath: 6},
		Default: 200,
	}
)

// Animator is the per-entity animation clock.
type Animator struct {
	set   *AnimSet
	State State
	Frame int
	acc   float64

	// DeathComplete is raised once the death state reaches its last frame.
	DeathComplete bool
}

// Animatable is implemented by entities with an animation clock.
type Animatable interface {
	Animation() *Animator
}

func newAnimator(set *AnimSet, initial State) Animator {
	a := Animator{set: set}
	a.Set(initial, true)
	return a
}

// Frames returns the frame count of the current state.
func (a *Animator) Frames() int {
	if a.set == nil {
		return 0
	}
	return a.set.Frames[a.State]
}

// Set switches state. Switching to a different state, or reset, rewinds
// to frame 0. Unsupported states fall back to idle.
func (a *Animator) Set(s State, reset bool) {
	if a.State == s && !reset {
		return
	}
	if s >= stateCount || (a.set != nil && a.set.Frames[s] == 0) {
		s = StateIdle
	}
	a.State = s
	a.Frame = 0
	a.acc = 0
	if s == StateDeath {
		a.DeathComplete = a.Frames() <= 1
	}
}

// Advance accumulates dt and steps frames. Death plays once and holds
// on its last frame, stepping at most one frame per call.
func (a *Animator) Advance(dt float64) {
	n := a.Frames()
	if n == 0 || dt <= 0 {
		return
	}
	dur := a.set.duration(a.State)
	a.acc += dt
	for a.acc >= dur {
		a.acc -= dur
		if a.State == StateDeath {
			if a.Frame < n-1 {
				a.Frame++
			}
			if a.Frame >= n-1 {
				a.DeathComplete = true
			}
			return
		}
		a.Frame = (a.Frame + 1) % n
	}
}

// AtLastFrame reports whether the current state shows its final frame.
func (a *Animator) AtLastFrame() bool {
	n := a.Frames()
	return n > 0 && a.Frame == n-1
}
