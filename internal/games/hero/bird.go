package hero

import "math"

// BirdKind is the species of a decorative bird.
type BirdKind uint8

const (
	BirdCrow BirdKind = iota
	BirdVulture
)

// String returns the species name.
func (k BirdKind) String() string {
	if k == BirdVulture {
		return "vulture"
	}
	return "crow"
}

const birdMargin = 64

// Bird flies across the sky on a sine path. It never collides.
type Bird struct {
	Kind  BirdKind
	X, Y  float64
	Left  bool
	Speed float64 // px per ms
	Frame int

	baseY     float64
	t         float64
	phase     float64
	amp       float64
	freq      float64
	frameAcc  float64
	frames    int
	frameTime float64
}

func newBird(rng *SimpleRNG, kind BirdKind, left bool) *Bird {
	b := &Bird{
		Kind:      kind,
		Left:      left,
		Speed:     0.05 + rng.Float64()*0.05,
		t:         rng.Float64() * 1000,
		phase:     rng.Float64() * 2 * math.Pi,
		amp:       6 + rng.Float64()*10,
		freq:      2 * math.Pi / (1800 + rng.Float64()*1800),
		frames:    6,
		frameTime: 90,
	}
	if kind == BirdVulture {
		b.frames, b.frameTime = 4, 110
	}
	return b
}

// skyBand returns the vertical range birds fly in.
func skyBand(viewH float64) (lo, hi float64) {
	return 60, max(120, viewH/2)
}

// distinctY picks a height at least minDist away from every used one,
// falling back to any height after attempts tries.
func distinctY(rng *SimpleRNG, used *[]float64, lo, hi, minDist float64, attempts int) float64 {
	for range attempts {
		y := rng.Range(lo, hi)
		ok := true
		for _, v := range *used {
			if math.Abs(v-y) < minDist {
				ok = false
				break
			}
		}
		if ok {
			*used = append(*used, y)
			return y
		}
	}
	y := rng.Range(lo, hi)
	*used = append(*used, y)
	return y
}

// Update moves the bird along its path.
func (b *Bird) Update(dt float64) {
	dx := b.Speed * dt
	if b.Left {
		dx = -dx
	}
	b.X += dx
	b.t += dt
	b.Y = b.baseY + math.Sin(b.phase+b.t*b.freq)*b.amp

	b.frameAcc += dt
	for b.frameAcc >= b.frameTime {
		b.frameAcc -= b.frameTime
		b.Frame = (b.Frame + 1) % b.frames
	}
}

func (b *Bird) outOfWorld(levelWidth float64) bool {
	return b.X < -birdMargin || b.X > levelWidth+birdMargin
}

// respawn re-enters the bird at the edge it flies away from.
func (b *Bird) respawn(rng *SimpleRNG, levelWidth, viewH float64) {
	lo, hi := skyBand(viewH)
	b.baseY = rng.Range(lo, hi)
	b.phase = rng.Float64() * 2 * math.Pi
	if b.Left {
		b.X = levelWidth + 50
	} else {
		b.X = -50
	}
	b.Y = b.baseY
}

// spawnBirds spreads count birds evenly over the level width.
func (w *World) spawnBirds(count int) {
	w.birds = w.birds[:0]
	if count <= 0 {
		return
	}
	bc := w.cfg.Birds
	lo, hi := skyBand(w.cfg.View.Height)
	const marginX = 80
	span := w.level.Width + 2*marginX
	slot := span / float64(count)

	used := make([]float64, 0, count)
	for i := range count {
		kind := BirdVulture
		if w.rng.Chance(bc.CrowChance) {
			kind = BirdCrow
		}
		b := newBird(w.rng, kind, w.rng.Chance(0.5))
		jitter := (w.rng.Float64() - 0.5) * slot * 0.5
		b.X = math.Round((float64(i)+0.5)*slot - marginX + jitter)
		b.baseY = distinctY(w.rng, &used, lo, hi, bc.MinSpacing, bc.Attempts)
		b.Y = b.baseY
		w.birds = append(w.birds, b)
	}
}

func (w *World) updateBirds(dt float64) {
	for _, b := range w.birds {
		b.Update(dt)
		if b.outOfWorld(w.level.Width) {
			b.respawn(w.rng, w.level.Width, w.cfg.View.Height)
		}
	}
}
