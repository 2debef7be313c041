package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameFile is the configuration file name looked up in the search path.
const GameFile = "kleinerheld.yaml"

// LoadGame loads the game configuration.
// Search order: customPath -> ~/.kleinerheld/configs/kleinerheld.yaml -> ./configs/kleinerheld.yaml -> embedded default
// A custom path that cannot be read or parsed is an error; the other
// locations fall through silently. Fields a file leaves out keep their defaults.
func LoadGame(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseGame(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(GameFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGame(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", GameFile)); err == nil {
		if cfg, err := ParseGame(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseGame(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseGame decodes YAML on top of the defaults and normalizes the result.
func ParseGame(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	// Slices are replaced wholesale by the decoder, so a file that sets
	// levels must list every level it wants.
	cfg.Levels = nil
	cfg.Combat.WeaponDamage = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	Normalize(&cfg)
	return cfg, nil
}

// Normalize replaces unusable values with defaults.
func Normalize(cfg *GameConfig) {
	def := DefaultGameConfig()

	if cfg.View.Width <= 0 {
		cfg.View.Width = def.View.Width
	}
	if cfg.View.Height <= 0 {
		cfg.View.Height = def.View.Height
	}
	normalizeActor(&cfg.Player.ActorConfig, def.Player.ActorConfig)
	normalizeActor(&cfg.Enemies.Lizard, def.Enemies.Lizard)
	normalizeActor(&cfg.Enemies.Skeleton, def.Enemies.Skeleton)
	normalizeActor(&cfg.Enemies.Minotaur, def.Enemies.Minotaur)
	normalizeActor(&cfg.Bosses.Troll.ActorConfig, def.Bosses.Troll.ActorConfig)
	normalizeActor(&cfg.Bosses.Dragon.ActorConfig, def.Bosses.Dragon.ActorConfig)
	normalizeActor(&cfg.Bosses.Demon.ActorConfig, def.Bosses.Demon.ActorConfig)

	if len(cfg.Combat.WeaponDamage) == 0 {
		cfg.Combat.WeaponDamage = def.Combat.WeaponDamage
	}
	if cfg.AI.SpeedMax <= cfg.AI.SpeedMin {
		cfg.AI.SpeedMin, cfg.AI.SpeedMax = def.AI.SpeedMin, def.AI.SpeedMax
	}
	if cfg.Coins.Scale <= 0 {
		cfg.Coins.Scale = def.Coins.Scale
	}
	if cfg.Coins.BobPeriodMs <= 0 {
		cfg.Coins.BobPeriodMs = def.Coins.BobPeriodMs
	}
	if cfg.Birds.Attempts <= 0 {
		cfg.Birds.Attempts = def.Birds.Attempts
	}
	if cfg.Input.HoldMs <= 0 {
		cfg.Input.HoldMs = def.Input.HoldMs
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = def.Levels
	}
}

func normalizeActor(a *ActorConfig, def ActorConfig) {
	if a.Width <= 0 {
		a.Width = def.Width
	}
	if a.Height <= 0 {
		a.Height = def.Height
	}
	if a.Scale <= 0 {
		a.Scale = 1
	}
	if a.Health <= 0 {
		a.Health = def.Health
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kleinerheld", "configs", filename)
}

// ResolvePath reports which file LoadGame would read, or "" for the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath(GameFile); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	local := filepath.Join("configs", GameFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}
