// cmd/pursuit/main.go
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-pursuit/pkg/audio"
	"github.com/opd-ai/go-pursuit/pkg/autopilot"
	"github.com/opd-ai/go-pursuit/pkg/config"
	"github.com/opd-ai/go-pursuit/pkg/engine"
	"github.com/opd-ai/go-pursuit/pkg/event"
	"github.com/opd-ai/go-pursuit/pkg/level"
	"github.com/opd-ai/go-pursuit/pkg/logging"
	engorender "github.com/opd-ai/go-pursuit/pkg/render/engo"
)

// frameTime is the wall-clock frame period of the terminal and headless loops
const frameTime = time.Second / 60

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Write the default configuration file and exit")
	renderer := flag.String("renderer", "terminal", "Renderer: 'terminal', 'engo' or 'headless'")
	levelPath := flag.String("level", "", "LDtk project to load (default: generate a level)")
	levelID := flag.String("level-id", "", "Level identifier inside the LDtk project (default: first)")
	seed := flag.Uint64("seed", 0, "Level and enemy seed (overrides config)")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	pilot := flag.String("autopilot", "seek", "Headless player: seek, evade, wander or idle")
	maxTicks := flag.Uint64("ticks", 3600, "Headless tick limit")
	width := flag.Int("width", 1024, "Window width (engo only)")
	height := flag.Int("height", 768, "Window height (engo only)")
	flag.Parse()

	logger, closeLog := newLogger(*logPath, *renderer == "terminal")
	defer closeLog()

	ctx := logging.WithSessionID(context.Background(), logging.NewSessionID())

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if *seed != 0 {
		gameConfig.World.Seed = *seed
	}

	game, err := engine.NewGame(ctx, gameConfig, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	lvl, err := loadLevel(gameConfig, *levelPath, *levelID)
	if err != nil {
		logger.Error(ctx, "Failed to load level", err, "path", *levelPath)
		os.Exit(1)
	}
	if err := game.Load(lvl); err != nil {
		logger.Error(ctx, "Failed to start level", err, "level", lvl.Name)
		os.Exit(1)
	}

	watchHits(ctx, game.EventBus, logger)

	if !*mute && *renderer != "headless" {
		sounds := audio.NewSoundManager(audio.LoadConfig())
		if err := sounds.Initialize(); err != nil {
			logger.Warn(ctx, "Audio unavailable", "error", err.Error())
		} else {
			detach := sounds.Attach(game.EventBus)
			defer sounds.Cleanup()
			defer detach()
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *renderer {
	case "engo":
		scene := engorender.NewGameScene(game, logger, float32(*height)/float32(gameConfig.World.Height))
		engorender.Run(scene, "Pursuit", *width, *height)
	case "headless":
		behavior, err := autopilot.ParseBehavior(*pilot)
		if err != nil {
			logger.Error(ctx, "Invalid autopilot", err)
			os.Exit(1)
		}
		result, err := runHeadless(ctx, game, autopilot.New(game, behavior, gameConfig.World.Seed), logger, *maxTicks)
		if err != nil {
			logger.Error(ctx, "Headless run failed", err)
			os.Exit(1)
		}
		logger.Info(ctx, "Headless run finished",
			"level", lvl.Name,
			"ticks", result.Ticks,
			"completed", result.Completed,
			"hits", result.Hits,
		)
	default:
		if err := runTerminal(ctx, game, logger); err != nil {
			logger.Error(ctx, "Terminal client failed", err)
			os.Exit(1)
		}
	}
}

// newLogger writes to path when given. The terminal renderer owns the
// screen, so without a path it gets a discarding logger.
func newLogger(path string, terminal bool) (*logging.Logger, func()) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			level := logging.ParseLevel(os.Getenv(logging.EnvLogLevel))
			return logging.NewLoggerWithWriter(f, level), func() { f.Close() }
		}
		logging.NewLogger().Warn(context.Background(), "Cannot open log file, using stderr", "path", path, "error", err.Error())
	}
	if terminal {
		return logging.NewLoggerWithWriter(io.Discard, logging.ParseLevel("ERROR")), func() {}
	}
	return logging.NewLogger(), func() {}
}

func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration", "config_path", path)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := gameConfig.ApplyEnv(); err != nil {
		return nil, err
	}
	return gameConfig, nil
}

func loadLevel(cfg *config.GameConfig, path, id string) (*level.Level, error) {
	if path == "" {
		return level.Generate(cfg, cfg.World.Seed), nil
	}
	return level.LoadFile(path, id)
}

// watchHits logs every projectile that reaches the player
func watchHits(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.ProjectileHitPlayer, func(e event.Event) {
		if pe, ok := e.(*event.ProjectileEvent); ok {
			logger.Info(ctx, "Player hit", "projectile_id", pe.ProjectileID, "x", pe.Position.X, "y", pe.Position.Y)
		}
	})
}
