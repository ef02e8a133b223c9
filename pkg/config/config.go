// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// GameConfig contains the tuning for one play session
type GameConfig struct {
	Unit        float64          `json:"unit"`
	Player      PlayerConfig     `json:"player"`
	Footsteps   FootstepConfig   `json:"footsteps"`
	Enemies     EnemyConfig      `json:"enemies"`
	Projectiles ProjectileConfig `json:"projectiles"`
	World       WorldConfig      `json:"world"`
}

// PlayerConfig contains player movement configuration.
// Velocities are world units per tick; rates are per second.
type PlayerConfig struct {
	Size         float64 `json:"size"`
	Acceleration float64 `json:"acceleration"`
	Deceleration float64 `json:"deceleration"`
	Speed        float64 `json:"speed"`
	HistorySize  int     `json:"historySize"`
}

// FootstepConfig contains footstep cadence configuration.
// The cadence interval is BaseInterval * max(MinFactor, Constant - speed).
type FootstepConfig struct {
	BaseInterval    float64 `json:"baseInterval"`
	Constant        float64 `json:"constant"`
	MinFactor       float64 `json:"minFactor"`
	MinSpeed        float64 `json:"minSpeed"`
	FootprintMaxAge float64 `json:"footprintMaxAge"`
	FootprintOffset float64 `json:"footprintOffset"`
}

// EnemyConfig contains enemy behaviour configuration
type EnemyConfig struct {
	Size          float64 `json:"size"`
	ShootInterval float64 `json:"shootInterval"`
	SightStep     float64 `json:"sightStep"`
	SightDistance float64 `json:"sightDistance"`
	Count         int     `json:"count"`
	SpawnRange    float64 `json:"spawnRange"`
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Speed float64 `json:"speed"`
	Size  float64 `json:"size"`
}

// WorldConfig contains window bounds and level-wide settings
type WorldConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	GoalRadius   float64 `json:"goalRadius"`
	MaxDeltaTime float64 `json:"maxDeltaTime"`
	WallCount    int     `json:"wallCount"`
	Seed         uint64  `json:"seed"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the prototype's tuning
func DefaultConfig() *GameConfig {
	const unit = 20.0
	return &GameConfig{
		Unit: unit,
		Player: PlayerConfig{
			Size:         unit,
			Acceleration: 2,
			Deceleration: 10,
			Speed:        600,
			HistorySize:  50,
		},
		Footsteps: FootstepConfig{
			BaseInterval:    0.01,
			Constant:        30,
			MinFactor:       15,
			MinSpeed:        0.5,
			FootprintMaxAge: 5,
			FootprintOffset: unit / 4,
		},
		Enemies: EnemyConfig{
			Size:          unit,
			ShootInterval: 1.5,
			SightStep:     unit,
			SightDistance: 20 * unit,
			Count:         10,
			SpawnRange:    10 * unit,
		},
		Projectiles: ProjectileConfig{
			Speed: 300,
			Size:  unit / 4,
		},
		World: WorldConfig{
			Width:        1280,
			Height:       720,
			GoalRadius:   unit,
			MaxDeltaTime: 0.1,
			WallCount:    15,
			Seed:         1,
		},
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c *GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive and finite, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite and not negative, got %v", name, v))
		}
	}

	positive("unit", c.Unit)
	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	nonNegative("player.acceleration", c.Player.Acceleration)
	nonNegative("player.deceleration", c.Player.Deceleration)
	if c.Player.HistorySize <= 0 {
		errs = append(errs, fmt.Errorf("player.historySize must be positive, got %d", c.Player.HistorySize))
	}

	positive("footsteps.baseInterval", c.Footsteps.BaseInterval)
	positive("footsteps.minFactor", c.Footsteps.MinFactor)
	nonNegative("footsteps.minSpeed", c.Footsteps.MinSpeed)
	nonNegative("footsteps.footprintMaxAge", c.Footsteps.FootprintMaxAge)

	positive("enemies.size", c.Enemies.Size)
	positive("enemies.shootInterval", c.Enemies.ShootInterval)
	positive("enemies.sightStep", c.Enemies.SightStep)
	nonNegative("enemies.sightDistance", c.Enemies.SightDistance)
	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("enemies.count must not be negative, got %d", c.Enemies.Count))
	}

	positive("projectiles.speed", c.Projectiles.Speed)
	positive("projectiles.size", c.Projectiles.Size)

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	nonNegative("world.goalRadius", c.World.GoalRadius)
	positive("world.maxDeltaTime", c.World.MaxDeltaTime)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
