// Command ghosthunt runs the ghost containment game.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/mironco/ghosthunt/internal/config"
	"github.com/mironco/ghosthunt/internal/game"
	"github.com/mironco/ghosthunt/internal/logger"
	"github.com/mironco/ghosthunt/internal/telemetry"
	"github.com/mironco/ghosthunt/internal/world"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run owns every deferred cleanup so that it happens before the process exits.
func run(args []string) int {
	// Not fatal, the variables may be set directly.
	envErr := godotenv.Load()

	fs := flag.NewFlagSet("ghosthunt", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("GHOSTHUNT_CONFIG"), "path to the YAML config file")
	levelPath := fs.String("level", "", "path to a YAML level file, overrides the config")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghosthunt: %v\n", err)
		return 1
	}
	if lvl := os.Getenv("GHOSTHUNT_LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}

	logCfg, logFile, err := cfg.LoggerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghosthunt: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.Init(logCfg)
	if envErr != nil {
		log.Debug(".env not loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint)
		if err != nil {
			log.Warn("telemetry setup failed, running without tracing", "error", err)
		} else {
			log.Info("telemetry enabled", "session", telemetry.SessionID())
			defer flushTelemetry(log, shutdown)
		}
	}

	level, err := world.LoadLevel(cfg.Level.Path)
	if err != nil {
		log.Error("load level", "error", err)
		return 1
	}

	g, err := game.New(ctx, cfg, level)
	if err != nil {
		log.Error("start game", "error", err)
		return 1
	}
	g.Run(ctx)
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func flushTelemetry(log *slog.Logger, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("telemetry shutdown", "error", err)
	}
}
