package config

import (
	"fmt"
	"math"
	"strings"
)

// ParsePreset validates a difficulty name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", s)
	}
}

// MultiplierForPreset returns the factor applied to enemy health and damage.
func MultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset scales enemy and boss health and attack damage by the preset.
// The player is never scaled.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	m := MultiplierForPreset(preset)
	if m == 1.0 {
		return
	}

	for _, a := range []*ActorConfig{
		&cfg.Enemies.Lizard,
		&cfg.Enemies.Skeleton,
		&cfg.Enemies.Minotaur,
		&cfg.Bosses.Troll.ActorConfig,
		&cfg.Bosses.Dragon.ActorConfig,
		&cfg.Bosses.Demon.ActorConfig,
	} {
		a.Health = scaleInt(a.Health, m)
		if a.AttackDamage > 0 {
			a.AttackDamage = scaleInt(a.AttackDamage, m)
		}
	}
	cfg.AI.EnemyDamage = scaleInt(cfg.AI.EnemyDamage, m)
	cfg.AI.BossDamage = scaleInt(cfg.AI.BossDamage, m)
}

// scaleInt multiplies and rounds, keeping positive values at least 1.
func scaleInt(v int, m float64) int {
	if v <= 0 {
		return v
	}
	return int(math.Max(1, math.Round(float64(v)*m)))
}
