package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/kleiner-held/internal/games/hero"
)

// drain streams s to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d: channels differ", total+i)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestEverySoundKeyHasRecipe(t *testing.T) {
	for _, key := range hero.SoundKeys {
		t.Run(key, func(t *testing.T) {
			s, ok := Sound(key, SampleRate)
			if !ok {
				t.Fatalf("Sound(%q) has no recipe", key)
			}
			n, peak := drain(t, s)

			want := 0
			for _, nt := range recipes[key] {
				want += SampleRate.N(nt.dur)
			}
			if n != want {
				t.Errorf("streamed %d samples, expected %d", n, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestSoundUnknownKey(t *testing.T) {
	if _, ok := Sound("kazoo", SampleRate); ok {
		t.Error("Sound(unknown) = ok, expected false")
	}
	if Length("kazoo") != 0 {
		t.Error("Length(unknown) should be zero")
	}
}

func TestLength(t *testing.T) {
	if got := Length("gameover").Milliseconds(); got != 900 {
		t.Errorf("Length(gameover) = %dms, expected 900ms", got)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	if p.Ready() {
		t.Fatal("Ready() before Init = true")
	}
	p.Play(hero.SoundSword)
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(hero.SoundSword)
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer(nil)
	if p.Muted() {
		t.Fatal("new player is muted")
	}
	if !p.ToggleMuted() || !p.Muted() {
		t.Error("ToggleMuted() should mute")
	}
	p.SetMuted(false)
	if p.Muted() {
		t.Error("SetMuted(false) did not unmute")
	}
}

func TestSilentIsAudio(t *testing.T) {
	var a hero.Audio = Silent{}
	a.Play(hero.SoundWin)
	var _ hero.Audio = NewPlayer(nil)
}
