// pkg/config/config_test.go
package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	if cfg.Unit != 20 || cfg.Player.Speed != 600 || cfg.Player.HistorySize != 50 {
		t.Errorf("unexpected defaults: unit=%v speed=%v history=%d",
			cfg.Unit, cfg.Player.Speed, cfg.Player.HistorySize)
	}
	if cfg.Footsteps.BaseInterval != 0.01 || cfg.Footsteps.FootprintMaxAge != 5 {
		t.Errorf("unexpected footstep defaults: %+v", cfg.Footsteps)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero_unit", func(c *GameConfig) { c.Unit = 0 }},
		{"negative_player_size", func(c *GameConfig) { c.Player.Size = -1 }},
		{"empty_history", func(c *GameConfig) { c.Player.HistorySize = 0 }},
		{"zero_sight_step", func(c *GameConfig) { c.Enemies.SightStep = 0 }},
		{"negative_enemy_count", func(c *GameConfig) { c.Enemies.Count = -3 }},
		{"zero_projectile_speed", func(c *GameConfig) { c.Projectiles.Speed = 0 }},
		{"zero_world_width", func(c *GameConfig) { c.World.Width = 0 }},
		{"nan_shoot_interval", func(c *GameConfig) { c.Enemies.ShootInterval = math.NaN() }},
		{"nan_sight_step", func(c *GameConfig) { c.Enemies.SightStep = math.NaN() }},
		{"inf_max_delta_time", func(c *GameConfig) { c.World.MaxDeltaTime = math.Inf(1) }},
		{"nan_goal_radius", func(c *GameConfig) { c.World.GoalRadius = math.NaN() }},
		{"neg_inf_player_speed", func(c *GameConfig) { c.Player.Speed = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pursuit.json")

	cfg := DefaultConfig()
	cfg.Enemies.Count = 3
	cfg.World.Seed = 42

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if loaded.Enemies.Count != 3 || loaded.World.Seed != 42 {
		t.Errorf("LoadConfig() = %+v, lost overrides", loaded)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"enemies": {"count": 2}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Enemies.Count != 2 {
		t.Errorf("Enemies.Count = %d, expected 2", cfg.Enemies.Count)
	}
	if cfg.Enemies.ShootInterval != DefaultConfig().Enemies.ShootInterval {
		t.Errorf("ShootInterval = %v, expected default", cfg.Enemies.ShootInterval)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"unit": -5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() = %v, expected ErrInvalidConfig", err)
	}
}
