// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvPlayerSpeed    = "PURSUIT_PLAYER_SPEED"
	EnvHistorySize    = "PURSUIT_HISTORY_SIZE"
	EnvShootInterval  = "PURSUIT_SHOOT_INTERVAL"
	EnvSightDistance  = "PURSUIT_SIGHT_DISTANCE"
	EnvEnemyCount     = "PURSUIT_ENEMY_COUNT"
	EnvWorldWidth     = "PURSUIT_WORLD_WIDTH"
	EnvWorldHeight    = "PURSUIT_WORLD_HEIGHT"
	EnvWorldSeed      = "PURSUIT_WORLD_SEED"
	EnvMaxDeltaTime   = "PURSUIT_MAX_DELTA_TIME"
	EnvProjectileRate = "PURSUIT_PROJECTILE_SPEED"
)

// ApplyEnv overrides fields of c from PURSUIT_* environment variables and
// validates the result. Unset variables leave fields untouched.
func (c *GameConfig) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvPlayerSpeed, &c.Player.Speed},
		{EnvShootInterval, &c.Enemies.ShootInterval},
		{EnvSightDistance, &c.Enemies.SightDistance},
		{EnvWorldWidth, &c.World.Width},
		{EnvWorldHeight, &c.World.Height},
		{EnvMaxDeltaTime, &c.World.MaxDeltaTime},
		{EnvProjectileRate, &c.Projectiles.Speed},
	}
	for _, f := range floats {
		if err := getEnvFloat(f.key, f.dst); err != nil {
			return err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvHistorySize, &c.Player.HistorySize},
		{EnvEnemyCount, &c.Enemies.Count},
	}
	for _, i := range ints {
		if err := getEnvInt(i.key, i.dst); err != nil {
			return err
		}
	}

	if value := os.Getenv(EnvWorldSeed); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorldSeed, value, err)
		}
		c.World.Seed = seed
	}

	return c.Validate()
}

func getEnvFloat(key string, dst *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*dst = parsed
	return nil
}

func getEnvInt(key string, dst *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*dst = parsed
	return nil
}
