package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// note is one synthesised segment: a frequency sweep with a short
// attack and a linear release.
type note struct {
	from, to float64 // Hz
	dur      time.Duration
	wave     Wave
	gain     float64
}

// tone streams a single note.
type tone struct {
	n        note
	rate     beep.SampleRate
	pos      int
	total    int
	attack   int
	phase    float64
	noiseReg uint32
}

func newTone(n note, rate beep.SampleRate) *tone {
	total := rate.N(n.dur)
	return &tone{
		n:        n,
		rate:     rate,
		total:    total,
		attack:   min(total/4, rate.N(5*time.Millisecond)),
		noiseReg: 0x1234567,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.n.from + (t.n.to-t.n.from)*progress

		var v float64
		switch t.n.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise reproducible
			t.noiseReg ^= t.noiseReg << 13
			t.noiseReg ^= t.noiseReg >> 17
			t.noiseReg ^= t.noiseReg << 5
			v = float64(t.noiseReg)/float64(math.MaxUint32)*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		env := 1 - progress
		if t.attack > 0 && t.pos < t.attack {
			env = float64(t.pos) / float64(t.attack)
		}
		v *= env

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// recipes maps every sound key to its notes, played in sequence.
var recipes = map[string][]note{
	"sword": {
		{from: 1800, to: 600, dur: 90 * time.Millisecond, wave: WaveNoise, gain: 0.25},
	},
	"spear": {
		{from: 900, to: 300, dur: 120 * time.Millisecond, wave: WaveSaw, gain: 0.2},
	},
	"bosstroll": {
		{from: 110, to: 70, dur: 500 * time.Millisecond, wave: WaveSaw, gain: 0.35},
	},
	"bossdragon": {
		{from: 300, to: 90, dur: 700 * time.Millisecond, wave: WaveNoise, gain: 0.3},
		{from: 90, to: 60, dur: 300 * time.Millisecond, wave: WaveSaw, gain: 0.3},
	},
	"bossdemon": {
		{from: 80, to: 160, dur: 400 * time.Millisecond, wave: WaveSquare, gain: 0.25},
		{from: 160, to: 55, dur: 500 * time.Millisecond, wave: WaveSquare, gain: 0.25},
	},
	"death": {
		{from: 440, to: 110, dur: 250 * time.Millisecond, wave: WaveSquare, gain: 0.2},
	},
	"gameover": {
		{from: 392, to: 392, dur: 200 * time.Millisecond, wave: WaveSine, gain: 0.3},
		{from: 330, to: 330, dur: 200 * time.Millisecond, wave: WaveSine, gain: 0.3},
		{from: 262, to: 196, dur: 500 * time.Millisecond, wave: WaveSine, gain: 0.3},
	},
	"jump": {
		{from: 300, to: 700, dur: 120 * time.Millisecond, wave: WaveSine, gain: 0.25},
	},
	"win": {
		{from: 523, to: 523, dur: 120 * time.Millisecond, wave: WaveSquare, gain: 0.2},
		{from: 659, to: 659, dur: 120 * time.Millisecond, wave: WaveSquare, gain: 0.2},
		{from: 784, to: 784, dur: 120 * time.Millisecond, wave: WaveSquare, gain: 0.2},
		{from: 1047, to: 1047, dur: 300 * time.Millisecond, wave: WaveSquare, gain: 0.2},
	},
}

// Sound builds the streamer for key. The second result is false for keys
// without a recipe.
func Sound(key string, rate beep.SampleRate) (beep.Streamer, bool) {
	notes, ok := recipes[key]
	if !ok {
		return nil, false
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, &effects.Gain{Streamer: newTone(n, rate), Gain: n.gain - 1})
	}
	return beep.Seq(parts...), true
}

// Length returns the duration of key's sound, zero for unknown keys.
func Length(key string) time.Duration {
	var d time.Duration
	for _, n := range recipes[key] {
		d += n.dur
	}
	return d
}
