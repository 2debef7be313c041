package hero

import "math"

// EntitySnapshot is the renderer-facing state of one fighting entity.
type EntitySnapshot struct {
	Kind       string  `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	FacingLeft bool    `json:"facing_left"`
	Health     int     `json:"health"`
	MaxHealth  int     `json:"max_health"`
	State      string  `json:"state"`
	Frame      int     `json:"frame"`
}

// CoinSnapshot is one uncollected coin.
type CoinSnapshot struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// BirdSnapshot is one decorative bird.
type BirdSnapshot struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Left  bool    `json:"left"`
	Frame int     `json:"frame"`
}

// Snapshot is a plain-data copy of the world, safe to hand to other
// goroutines once taken.
type Snapshot struct {
	Tick      uint64  `json:"tick"`
	Clock     float64 `json:"clock_ms"`
	Level     int     `json:"level"`
	LevelName string  `json:"level_name"`
	Width     float64 `json:"level_width"`
	GroundY   float64 `json:"ground_y"`
	CameraX   float64 `json:"camera_x"`
	Clouds    float64 `json:"clouds"`
	Paused    bool    `json:"paused"`
	Overlay   string  `json:"overlay"`
	NextLevel int     `json:"next_level,omitempty"`
	Stats     Stats   `json:"stats"`

	Hero     EntitySnapshot   `json:"hero"`
	Progress Progress         `json:"progress"`
	Invuln   bool             `json:"invuln_active"`
	Enemies  []EntitySnapshot `json:"enemies"`
	Boss     *EntitySnapshot  `json:"boss,omitempty"`
	Coins    []CoinSnapshot   `json:"coins"`
	Birds    []BirdSnapshot   `json:"birds"`
	LevelEnd EntitySnapshot   `json:"level_end"`

	Defeated int    `json:"defeated"`
	Pending  int    `json:"pending_respawns"`
	RNGState uint64 `json:"rng_state"`
}

func snapActor(kind string, a *Actor) EntitySnapshot {
	r := a.Rect()
	return EntitySnapshot{
		Kind:       kind,
		X:          r.X,
		Y:          r.Y,
		W:          r.W,
		H:          r.H,
		FacingLeft: a.FacingLeft,
		Health:     a.Health,
		MaxHealth:  a.MaxHealth,
		State:      a.Anim.State.String(),
		Frame:      a.Anim.Frame,
	}
}

// Snapshot copies the current world state. Entity boxes are hitboxes.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.tick,
		Clock:     w.sched.Now(),
		Level:     w.levelIndex + 1,
		LevelName: w.level.Name,
		Width:     w.level.Width,
		GroundY:   w.level.GroundY,
		CameraX:   w.camera.X,
		Clouds:    w.camera.Clouds,
		Paused:    w.paused,
		Overlay:   w.overlay.State.String(),
		NextLevel: w.overlay.NextLevel,
		Stats:     w.overlay.Stats,
		Defeated:  w.defeated,
		Pending:   len(w.pending),
		RNGState:  w.rng.State(),
	}

	if c := w.character; c != nil {
		s.Hero = snapActor("hero", &c.Actor)
		s.Progress = c.Progress
		s.Invuln = c.InvulnActive
	}

	s.Enemies = make([]EntitySnapshot, 0, len(w.enemies))
	for _, e := range w.enemies {
		s.Enemies = append(s.Enemies, snapActor(e.Kind.String(), &e.Actor))
	}
	if b := w.boss; b != nil {
		bs := snapActor(b.Kind.String(), &b.Actor)
		s.Boss = &bs
	}

	s.Coins = make([]CoinSnapshot, 0, len(w.coins))
	for _, c := range w.coins {
		r := c.Rect()
		s.Coins = append(s.Coins, CoinSnapshot{Type: c.Type.String(), X: r.X, Y: r.Y})
	}
	s.Birds = make([]BirdSnapshot, 0, len(w.birds))
	for _, b := range w.birds {
		s.Birds = append(s.Birds, BirdSnapshot{Kind: b.Kind.String(), X: b.X, Y: b.Y, Left: b.Left, Frame: b.Frame})
	}
	if le := w.levelEnd; le != nil {
		r := le.Rect()
		s.LevelEnd = EntitySnapshot{Kind: "treasure", X: r.X, Y: r.Y, W: r.W, H: r.H}
	}
	return s
}

func hashFloat(h uint64, f float64) uint64 {
	return h*31 + math.Float64bits(f)
}

func hashInt(h uint64, v int) uint64 {
	return h*31 + uint64(v) //#nosec G115 -- hash computation
}

func hashEntity(h uint64, e EntitySnapshot) uint64 {
	h = hashFloat(h, e.X)
	h = hashFloat(h, e.Y)
	h = hashInt(h, e.Health)
	h = hashInt(h, e.Frame)
	for _, r := range e.State {
		h = h*31 + uint64(r)
	}
	return h
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = hashFloat(h, s.Clock)
	h = hashInt(h, s.Level)
	h = hashFloat(h, s.CameraX)
	h = hashEntity(h, s.Hero)
	h = hashInt(h, s.Progress.Coins)
	h = hashInt(h, s.Progress.AllCoins)
	h = hashInt(h, s.Progress.Hearts)
	h = hashInt(h, s.Progress.WeaponLevel)
	for _, e := range s.Enemies {
		h = hashEntity(h, e)
	}
	if s.Boss != nil {
		h = hashEntity(h, *s.Boss)
	}
	for _, c := range s.Coins {
		h = hashFloat(h, c.X)
		h = hashFloat(h, c.Y)
	}
	for _, b := range s.Birds {
		h = hashFloat(h, b.X)
	}
	h = hashInt(h, s.Defeated)
	h = hashInt(h, s.Pending)
	h = h*31 + s.RNGState
	return h
}
