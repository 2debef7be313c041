package hero

import (
	"testing"

	"github.com/vovakirdan/kleiner-held/internal/config"
)

// recorder is an Audio that remembers every key played.
type recorder struct {
	keys []string
}

func (r *recorder) Play(key string) {
	r.keys = append(r.keys, key)
}

func (r *recorder) count(key string) int {
	n := 0
	for _, k := range r.keys {
		if k == key {
			n++
		}
	}
	return n
}

// newTestWorld returns a running world on level 1 with seed 42.
func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	all := append([]Option{WithSeed(42)}, opts...)
	w, err := NewWorld(config.DefaultGameConfig(), all...)
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	if err := w.NewRun(); err != nil {
		t.Fatalf("NewRun() error = %v", err)
	}
	return w
}

// emptyLevel removes every entity except the hero and the level end,
// and stops respawning.
func emptyLevel(w *World) {
	w.enemies = nil
	w.boss = nil
	w.coins = nil
	w.birds = nil
	w.pending = nil
	w.autoRespawn = false
}

// testEnemy places a lizard at x on the current ground.
func testEnemy(w *World, x float64) *Enemy {
	e := newEnemy(&w.cfg, KindLizard, x, w.level.GroundY, w.rng)
	w.faceCharacter(&e.Body)
	w.enemies = append(w.enemies, e)
	return e
}

// testBoss places a troll at x on the current ground.
func testBoss(w *World, x float64) *Boss {
	b := newBoss(&w.cfg, BossTroll, x, w.level.GroundY, w.rng)
	w.faceCharacter(&b.Body)
	w.boss = b
	return b
}
