// Package game parses game command flags and starts the game server.
package game

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/louisbranch/masks/internal/platform/cmd"
	"github.com/louisbranch/masks/internal/platform/logging"
	server "github.com/louisbranch/masks/internal/services/game/app"
	"go.uber.org/zap"
)

// Config holds game command configuration.
type Config struct {
	Port       int    `env:"MASKS_GAME_PORT" envDefault:"8082"`
	Addr       string `env:"MASKS_GAME_ADDR"`
	DBPath     string `env:"MASKS_GAME_DB_PATH" envDefault:"data/game.db"`
	ContentDir string `env:"MASKS_CONTENT_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite game database")
	fs.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "Directory of content YAML files (defaults to the embedded catalog)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr returns Addr when set, otherwise ":<port>".
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the game gRPC service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.FromEnv(entrypoint.ServiceGame)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceGame, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		logger.Info("starting game server", zap.String("addr", cfg.ListenAddr()), zap.String("db_path", cfg.DBPath))
		return server.Run(ctx, server.Config{
			Addr:       cfg.ListenAddr(),
			DBPath:     cfg.DBPath,
			ContentDir: cfg.ContentDir,
			Logger:     logger,
		})
	})
}
