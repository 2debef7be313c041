package hero

import "github.com/vovakirdan/kleiner-held/internal/config"

// EnemyKind identifies a regular enemy type.
type EnemyKind uint8

const (
	KindLizard EnemyKind = iota
	KindSkeleton
	KindMinotaur
)

var enemyKindNames = [...]string{"lizard", "skeleton", "minotaur"}

// String returns the enemy type name.
func (k EnemyKind) String() string {
	if int(k) >= len(enemyKindNames) {
		return "unknown"
	}
	return enemyKindNames[k]
}

// BossKind identifies a boss type.
type BossKind uint8

const (
	BossTroll BossKind = iota
	BossDragon
	BossDemon
)

var bossKindNames = [...]string{"troll", "dragon", "demon"}

// bossSounds maps a boss kind to its vocal cue.
var bossSounds = [...]string{
	BossTroll:  SoundBossTroll,
	BossDragon: SoundBossDragon,
	BossDemon:  SoundBossDemon,
}

// String returns the boss type name.
func (k BossKind) String() string {
	if int(k) >= len(bossKindNames) {
		return "unknown"
	}
	return bossKindNames[k]
}

// SoundKey returns the vocal cue played when the boss notices the hero.
func (k BossKind) SoundKey() string {
	if int(k) >= len(bossSounds) {
		return ""
	}
	return bossSounds[k]
}

// Enemy is a regular enemy.
type Enemy struct {
	Actor
	Kind EnemyKind
}

// Physics implements Physical.
func (e *Enemy) Physics() *Body {
	if e == nil {
		return nil
	}
	return &e.Body
}

// Stats implements Damageable.
func (e *Enemy) Stats() *Actor {
	if e == nil {
		return nil
	}
	return &e.Actor
}

// Boss is the level boss. Aggro and AudioCued are one-shot latches:
// once set they stay set for the rest of the level.
type Boss struct {
	Actor
	Kind       BossKind
	SoundRange float64
	Aggro      bool
	AudioCued  bool
}

// Physics implements Physical.
func (b *Boss) Physics() *Body {
	if b == nil {
		return nil
	}
	return &b.Body
}

// Stats implements Damageable.
func (b *Boss) Stats() *Actor {
	if b == nil {
		return nil
	}
	return &b.Actor
}

func enemyStats(cfg *config.GameConfig, kind EnemyKind) (config.ActorConfig, *AnimSet) {
	switch kind {
	case KindSkeleton:
		return cfg.Enemies.Skeleton, &skeletonAnims
	case KindMinotaur:
		return cfg.Enemies.Minotaur, &minotaurAnims
	default:
		return cfg.Enemies.Lizard, &lizardAnims
	}
}

func bossStats(cfg *config.GameConfig, kind BossKind) (config.BossConfig, *AnimSet) {
	switch kind {
	case BossDragon:
		return cfg.Bosses.Dragon, &dragonAnims
	case BossDemon:
		return cfg.Bosses.Demon, &demonAnims
	default:
		return cfg.Bosses.Troll, &trollAnims
	}
}

// newEnemy builds an enemy standing on the ground at x.
func newEnemy(cfg *config.GameConfig, kind EnemyKind, x, groundY float64, rng *SimpleRNG) *Enemy {
	stats, anims := enemyStats(cfg, kind)
	e := &Enemy{Actor: newActor(stats, anims, StateRun), Kind: kind}
	e.X = x
	e.Y = groundY - e.Height*e.scale()
	e.FacingLeft = true
	if e.Speed == 0 {
		e.Speed = rng.Range(cfg.AI.SpeedMin, cfg.AI.SpeedMax)
	}
	return e
}

// newBoss builds a boss standing on the ground at x.
func newBoss(cfg *config.GameConfig, kind BossKind, x, groundY float64, rng *SimpleRNG) *Boss {
	stats, anims := bossStats(cfg, kind)
	b := &Boss{Actor: newActor(stats.ActorConfig, anims, StateRun), Kind: kind, SoundRange: stats.SoundRange}
	b.X = x
	b.Y = groundY - b.Height*b.scale()
	b.FacingLeft = true
	if b.Speed == 0 {
		b.Speed = rng.Range(cfg.AI.SpeedMin, cfg.AI.SpeedMax)
	}
	return b
}
