package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tiny board", func(c *GameConfig) { c.Board.Width = 5 }},
		{"zero initial length", func(c *GameConfig) { c.Gameplay.InitialLength = 0 }},
		{"snake longer than board", func(c *GameConfig) { c.Gameplay.InitialLength = 30 }},
		{"bonus chance above one", func(c *GameConfig) { c.Gameplay.BonusChance = 1.5 }},
		{"zero time limit", func(c *GameConfig) { c.TimeTrial.LimitSeconds = 0 }},
		{"negative obstacles", func(c *GameConfig) { c.Obstacle.Count = -1 }},
		{"missing difficulty", func(c *GameConfig) { delete(c.Difficulties, "hard") }},
		{"zero move interval", func(c *GameConfig) {
			p := c.Difficulties["medium"]
			p.MoveEveryTicks = 0
			c.Difficulties["medium"] = p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyMedium {
		t.Errorf("empty preset = %q, %v, want medium", p, err)
	}
	if p, err := ParsePreset("extreme"); err != nil || p != DifficultyExtreme {
		t.Errorf("ParsePreset(extreme) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no custom path failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
	if cfg.Board.Width < 10 {
		t.Errorf("board width = %d, want at least 10", cfg.Board.Width)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
board:
  width: 30
  height: 15
gameplay:
  initial_length: 4
  bonus_chance: 0.2
  bonus_multiplier: 3
time_trial:
  limit_seconds: 45
obstacle:
  count: 8
maze:
  wall_spacing: 5
  gap_width: 4
  portal_pairs: 1
audio:
  enabled: false
  master_volume: 0.3
difficulties:
  easy:
    move_every_ticks: 8
    food_value: 15
    power_up_seconds: 10
    wall_death: false
  medium:
    move_every_ticks: 6
    food_value: 10
    power_up_seconds: 15
    wall_death: true
  hard:
    move_every_ticks: 5
    food_value: 8
    power_up_seconds: 20
    wall_death: true
  extreme:
    move_every_ticks: 4
    food_value: 5
    power_up_seconds: 30
    wall_death: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Board.Width != 30 || cfg.Board.Height != 15 {
		t.Errorf("board = %dx%d, want 30x15", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.TimeTrial.LimitSeconds != 45 {
		t.Errorf("time limit = %d, want 45", cfg.TimeTrial.LimitSeconds)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing custom path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not a map]"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}
