package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := ParseGame(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseGame(embedded) error = %v", err)
	}
	def := DefaultGameConfig()

	if cfg.Player.Health != def.Player.Health {
		t.Errorf("Player.Health = %d, expected %d", cfg.Player.Health, def.Player.Health)
	}
	if cfg.Enemies.Minotaur.Hitbox.OffsetY != def.Enemies.Minotaur.Hitbox.OffsetY {
		t.Errorf("Minotaur hitbox offset_y = %v, expected %v", cfg.Enemies.Minotaur.Hitbox.OffsetY, def.Enemies.Minotaur.Hitbox.OffsetY)
	}
	if cfg.Bosses.Demon.SoundRange != 1100 {
		t.Errorf("Demon.SoundRange = %v, expected 1100", cfg.Bosses.Demon.SoundRange)
	}
	if len(cfg.Levels) != 3 {
		t.Fatalf("len(Levels) = %d, expected 3", len(cfg.Levels))
	}
	if *cfg.Levels[2].GroundY != 540 {
		t.Errorf("level 3 ground_y = %v, expected 540", *cfg.Levels[2].GroundY)
	}
	if got := cfg.Combat.WeaponDamage; len(got) != 4 || got[3] != 20 {
		t.Errorf("WeaponDamage = %v, expected [10 13 16 20]", got)
	}
}

func TestParseGameKeepsDefaultsForMissingFields(t *testing.T) {
	data := []byte(`
player:
  health: 150
economy:
  heart_price: 75
levels:
  - name: Tiny
    width: 3000
`)
	cfg, err := ParseGame(data)
	if err != nil {
		t.Fatalf("ParseGame() error = %v", err)
	}

	if cfg.Player.Health != 150 {
		t.Errorf("Player.Health = %d, expected 150", cfg.Player.Health)
	}
	if cfg.Player.JumpPower != 12 {
		t.Errorf("Player.JumpPower = %v, expected default 12", cfg.Player.JumpPower)
	}
	if cfg.Economy.HeartPrice != 75 || cfg.Economy.WeaponPrice != 200 {
		t.Errorf("Economy prices = %d/%d, expected 75/200", cfg.Economy.HeartPrice, cfg.Economy.WeaponPrice)
	}
	if len(cfg.Levels) != 1 {
		t.Fatalf("len(Levels) = %d, expected 1", len(cfg.Levels))
	}
	if cfg.Levels[0].GroundY != nil {
		t.Error("missing ground_y should stay nil for level defaults")
	}
	if *cfg.Levels[0].Width != 3000 {
		t.Errorf("Levels[0].Width = %v, expected 3000", *cfg.Levels[0].Width)
	}
	if len(cfg.Combat.WeaponDamage) != 4 {
		t.Errorf("WeaponDamage should fall back to defaults, got %v", cfg.Combat.WeaponDamage)
	}
}

func TestNormalize(t *testing.T) {
	cfg := GameConfig{}
	Normalize(&cfg)

	if cfg.View.Width != 1000 || cfg.View.Height != 600 {
		t.Errorf("View = %+v, expected 1000x600", cfg.View)
	}
	if cfg.Enemies.Lizard.Scale != 1 {
		t.Errorf("Lizard.Scale = %v, expected 1", cfg.Enemies.Lizard.Scale)
	}
	if cfg.Bosses.Troll.Health != 30 {
		t.Errorf("Troll.Health = %d, expected 30", cfg.Bosses.Troll.Health)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("len(Levels) = %d, expected 3", len(cfg.Levels))
	}
	if cfg.Input.HoldMs != 150 {
		t.Errorf("Input.HoldMs = %d, expected 150", cfg.Input.HoldMs)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("coins:\n  gold_value: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Coins.GoldValue != 500 {
		t.Errorf("Coins.GoldValue = %d, expected 500", cfg.Coins.GoldValue)
	}
	if cfg.Coins.SilverValue != 25 {
		t.Errorf("Coins.SilverValue = %d, expected 25", cfg.Coins.SilverValue)
	}
}

func TestLoadGameCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"invalid yaml", broken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadGame(tc.path); err == nil {
				t.Errorf("LoadGame(%q) expected error", tc.path)
			}
		})
	}
}

func TestLoadGameFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("len(Levels) = %d, expected 3", len(cfg.Levels))
	}
	if ResolvePath("") != "" {
		t.Errorf("ResolvePath() = %q, expected embedded", ResolvePath(""))
	}
}
