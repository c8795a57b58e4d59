package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/dynstat/internal/config"
	"github.com/udisondev/dynstat/internal/effect"
	"github.com/udisondev/dynstat/internal/sim"
)

const SimulationConfigPath = "config/statsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := SimulationConfigPath
	if p := os.Getenv("DYNSTAT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading simulation config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("statsim starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"interval", cfg.TickInterval,
		"ticks", cfg.Ticks,
		"effects", effect.Names())

	entities, err := sim.Build(cfg)
	if err != nil {
		return fmt.Errorf("building entities: %w", err)
	}

	err = sim.RunAll(ctx, entities, cfg.TickInterval, cfg.Ticks)

	for _, ent := range entities {
		slog.Info("final stats", "entity", ent.Name(), "ticks", ent.Ticks(), "values", ent.Snapshot())
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running simulation: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
