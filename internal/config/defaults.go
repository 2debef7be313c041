package config

import (
	_ "embed"
)

//go:embed defaults/kleinerheld.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
// It mirrors defaults/kleinerheld.yaml and is used when the embedded file
// cannot be parsed and to fill fields a user file leaves out.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		View: ViewConfig{Width: 1000, Height: 600},
		Player: PlayerConfig{
			ActorConfig: ActorConfig{
				Width:       50,
				Height:      50,
				Scale:       2,
				Health:      100,
				Speed:       5,
				AttackRange: 50,
				Hitbox:      HitboxConfig{Width: 40, Height: 50},
			},
			Acceleration: 0.5,
			JumpPower:    12,
			StartX:       100,
		},
		Enemies: EnemiesConfig{
			Lizard: ActorConfig{
				Width: 50, Height: 50, Scale: 1.7, Health: 20,
				AttackRange: 80, AttackDamage: 7,
				Hitbox: HitboxConfig{Width: 50, OffsetX: -30},
			},
			Skeleton: ActorConfig{
				Width: 50, Height: 50, Scale: 1.6, Health: 25,
				AttackRange: 80, AttackDamage: 9,
				Hitbox: HitboxConfig{Width: 40, OffsetX: -20},
			},
			Minotaur: ActorConfig{
				Width: 50, Height: 50, Scale: 1.3, Health: 30,
				AttackRange: 85, AttackDamage: 12,
				Hitbox: HitboxConfig{Width: 50, Height: 100, OffsetX: -30, OffsetY: -50},
			},
		},
		Bosses: BossesConfig{
			Troll: BossConfig{
				ActorConfig: ActorConfig{Width: 125, Height: 150, Scale: 0.3, Health: 30, AttackRange: 100, AttackDamage: 20},
				SoundRange:  800,
			},
			Dragon: BossConfig{
				ActorConfig: ActorConfig{Width: 125, Height: 150, Scale: 2, Health: 50, AttackRange: 100, AttackDamage: 20},
				SoundRange:  1000,
			},
			Demon: BossConfig{
				ActorConfig: ActorConfig{Width: 75, Height: 150, Scale: 2.1, Health: 50, AttackRange: 80, AttackDamage: 20},
				SoundRange:  1100,
			},
		},
		AI: AIConfig{
			EnemyRange:       30,
			EnemyDamage:      8,
			EnemyCooldownMs:  1000,
			EnemyAttackOffMs: 350,
			BossRange:        100,
			BossDamage:       15,
			BossSpeed:        0.7,
			BossCooldownMs:   1500,
			BossAttackOffMs:  500,
			AggroMin:         600,
			AggroViewFactor:  0.6,
			SoundRange:       800,
			RespawnDelayMs:   3000,
			RespawnJitterMs:  4000,
			SpawnEdgeOffset:  200,
			SpeedMin:         0.5,
			SpeedMax:         2.0,
		},
		Combat: CombatConfig{
			WeaponDamage: []int{10, 13, 16, 20},
			Knockback:    30,
			HurtMs:       300,
		},
		Economy: EconomyConfig{
			HeartPrice:       50,
			HealAmount:       30,
			WeaponPrice:      200,
			MaxWeaponLevel:   3,
			LuckyPrice:       150,
			InvulnPrice:      200,
			InvulnDurationMs: 3000,
			InvulnCooldownMs: 60000,
			EnemyDrop:        1,
			LuckyEnemyDrop:   2,
			BossDrop:         3,
			LuckyBossBonus:   2,
		},
		Coins: CoinConfig{
			Size:         32,
			Scale:        2,
			Gravity:      0.4,
			BobPeriodMs:  20000,
			BobAmplitude: 20,
			GoldValue:    100,
			SilverValue:  25,
			CopperValue:  5,
		},
		Birds: BirdConfig{
			CrowChance: 0.75,
			MinSpacing: 32,
			Attempts:   40,
		},
		LevelEnd: LevelEndConfig{Width: 80, Height: 80},
		Input:    InputConfig{HoldMs: 150},
		Fallbacks: LevelDefaults{
			GroundY:   520,
			Width:     12000,
			TileWidth: 1200,
			BossX:     10600,
			LevelEndX: 10700,
			Enemies:   6,
			Birds:     12,
			SafeZone:  600,
		},
		Levels: []LevelConfig{
			campaignLevel("Summer Meadow", 520),
			campaignLevel("Deep Forest", 520),
			campaignLevel("Late Summer", 540),
		},
	}
}

func campaignLevel(name string, groundY float64) LevelConfig {
	width, tile, bossX, endX := 12000.0, 1199.0, 10700.0, 10900.0
	enemies, birds := 10, 15
	return LevelConfig{
		Name:      name,
		GroundY:   &groundY,
		Width:     &width,
		TileWidth: &tile,
		BossX:     &bossX,
		LevelEndX: &endX,
		Enemies:   &enemies,
		Birds:     &birds,
	}
}

// DefaultYAML returns the embedded default YAML, for `levels --dump`.
func DefaultYAML() []byte {
	return defaultGameYAML
}
