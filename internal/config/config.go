// Package config provides YAML-based game configuration loading,
// difficulty presets and hot reload for Kleiner Held.
package config

// GameConfig contains all tunable values of the simulation.
type GameConfig struct {
	View      ViewConfig     `yaml:"view"`
	Player    PlayerConfig   `yaml:"player"`
	Enemies   EnemiesConfig  `yaml:"enemies"`
	Bosses    BossesConfig   `yaml:"bosses"`
	AI        AIConfig       `yaml:"ai"`
	Combat    CombatConfig   `yaml:"combat"`
	Economy   EconomyConfig  `yaml:"economy"`
	Coins     CoinConfig     `yaml:"coins"`
	Birds     BirdConfig     `yaml:"birds"`
	LevelEnd  LevelEndConfig `yaml:"level_end"`
	Input     InputConfig    `yaml:"input"`
	Levels    []LevelConfig  `yaml:"levels"`
	Fallbacks LevelDefaults  `yaml:"level_defaults"`
}

// ViewConfig is the camera window in world pixels.
type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HitboxConfig describes a hitbox relative to the sprite box, before scale.
// Zero width or height falls back to the sprite size.
type HitboxConfig struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	OffsetX     float64  `yaml:"offset_x"`
	OffsetY     float64  `yaml:"offset_y"`
	OffsetXLeft *float64 `yaml:"offset_x_left,omitempty"` // used instead of mirroring when facing left
	Centered    bool     `yaml:"centered"`
	NoMirror    bool     `yaml:"no_mirror"`
}

// ActorConfig holds the stats shared by every fighting entity type.
type ActorConfig struct {
	Width        float64      `yaml:"width"`
	Height       float64      `yaml:"height"`
	Scale        float64      `yaml:"scale"`
	Health       int          `yaml:"health"`
	Speed        float64      `yaml:"speed"` // 0 = random in [ai.speed_min, ai.speed_max)
	AttackRange  float64      `yaml:"attack_range"`
	AttackDamage int          `yaml:"attack_damage"`
	Hitbox       HitboxConfig `yaml:"hitbox"`
}

// PlayerConfig defines the hero.
type PlayerConfig struct {
	ActorConfig  `yaml:",inline"`
	Acceleration float64 `yaml:"acceleration"`
	JumpPower    float64 `yaml:"jump_power"`
	StartX       float64 `yaml:"start_x"`
}

// EnemiesConfig holds one entry per regular enemy type.
type EnemiesConfig struct {
	Lizard   ActorConfig `yaml:"lizard"`
	Skeleton ActorConfig `yaml:"skeleton"`
	Minotaur ActorConfig `yaml:"minotaur"`
}

// BossConfig defines a level boss.
type BossConfig struct {
	ActorConfig `yaml:",inline"`
	SoundRange  float64 `yaml:"sound_range"`
}

// BossesConfig holds one entry per boss type.
type BossesConfig struct {
	Troll  BossConfig `yaml:"troll"`
	Dragon BossConfig `yaml:"dragon"`
	Demon  BossConfig `yaml:"demon"`
}

// AIConfig contains enemy and boss behavior constants.
// Range and damage apply only to types that leave their own value at zero.
type AIConfig struct {
	EnemyRange       float64 `yaml:"enemy_range"`
	EnemyDamage      int     `yaml:"enemy_damage"`
	EnemyCooldownMs  float64 `yaml:"enemy_cooldown_ms"`
	EnemyAttackOffMs float64 `yaml:"enemy_attack_off_ms"`
	BossRange        float64 `yaml:"boss_range"`
	BossDamage       int     `yaml:"boss_damage"`
	BossSpeed        float64 `yaml:"boss_speed"`
	BossCooldownMs   float64 `yaml:"boss_cooldown_ms"`
	BossAttackOffMs  float64 `yaml:"boss_attack_off_ms"`
	AggroMin         float64 `yaml:"aggro_min"`
	AggroViewFactor  float64 `yaml:"aggro_view_factor"`
	SoundRange       float64 `yaml:"sound_range"`
	RespawnDelayMs   float64 `yaml:"respawn_delay_ms"`
	RespawnJitterMs  float64 `yaml:"respawn_jitter_ms"`
	SpawnEdgeOffset  float64 `yaml:"spawn_edge_offset"`
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
}

// CombatConfig defines player attack resolution.
type CombatConfig struct {
	WeaponDamage []int   `yaml:"weapon_damage"` // indexed by weapon level
	Knockback    float64 `yaml:"knockback"`
	HurtMs       float64 `yaml:"hurt_ms"`
}

// EconomyConfig defines prices, powerup timings and coin drops.
type EconomyConfig struct {
	HeartPrice       int     `yaml:"heart_price"`
	HealAmount       int     `yaml:"heal_amount"`
	WeaponPrice      int     `yaml:"weapon_price"`
	MaxWeaponLevel   int     `yaml:"max_weapon_level"`
	LuckyPrice       int     `yaml:"lucky_price"`
	InvulnPrice      int     `yaml:"invuln_price"`
	InvulnDurationMs float64 `yaml:"invuln_duration_ms"`
	InvulnCooldownMs float64 `yaml:"invuln_cooldown_ms"`
	EnemyDrop        int     `yaml:"enemy_drop"`
	LuckyEnemyDrop   int     `yaml:"lucky_enemy_drop"`
	BossDrop         int     `yaml:"boss_drop"`
	LuckyBossBonus   int     `yaml:"lucky_boss_bonus"`
}

// CoinConfig defines coin physics and values.
type CoinConfig struct {
	Size         float64 `yaml:"size"`
	Scale        float64 `yaml:"scale"`
	Gravity      float64 `yaml:"gravity"`
	BobPeriodMs  float64 `yaml:"bob_period_ms"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	GoldValue    int     `yaml:"gold_value"`
	SilverValue  int     `yaml:"silver_value"`
	CopperValue  int     `yaml:"copper_value"`
}

// BirdConfig defines the decorative flock.
type BirdConfig struct {
	CrowChance float64 `yaml:"crow_chance"`
	MinSpacing float64 `yaml:"min_spacing"`
	Attempts   int     `yaml:"attempts"`
}

// LevelEndConfig is the size of the treasure that ends a level.
type LevelEndConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig configures terminal key handling.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"`
}

// LevelConfig is one level definition. Nil fields take LevelDefaults.
type LevelConfig struct {
	Name      string   `yaml:"name"`
	GroundY   *float64 `yaml:"ground_y,omitempty"`
	Width     *float64 `yaml:"width,omitempty"`
	TileWidth *float64 `yaml:"tile_width,omitempty"`
	BossX     *float64 `yaml:"boss_x,omitempty"`
	LevelEndX *float64 `yaml:"level_end_x,omitempty"`
	Enemies   *int     `yaml:"enemies,omitempty"`
	Birds     *int     `yaml:"birds,omitempty"`
}

// LevelDefaults are used for fields a level definition leaves out.
type LevelDefaults struct {
	GroundY   float64 `yaml:"ground_y"`
	Width     float64 `yaml:"width"`
	TileWidth float64 `yaml:"tile_width"`
	BossX     float64 `yaml:"boss_x"`
	LevelEndX float64 `yaml:"level_end_x"`
	Enemies   int     `yaml:"enemies"`
	Birds     int     `yaml:"birds"`
	SafeZone  float64 `yaml:"safe_zone"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
