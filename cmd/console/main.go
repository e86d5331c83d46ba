package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/teletext/internal/config"
	"github.com/jwebster45206/teletext/internal/logger"
	"github.com/jwebster45206/teletext/internal/services/events"
	"github.com/jwebster45206/teletext/pkg/game"
	"github.com/jwebster45206/teletext/pkg/world"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier, rdb := buildNotifier(ctx, cfg, log)
	if rdb != nil {
		defer func() {
			_ = rdb.Close() // Ignore error in defer
		}()
	}

	g, err := game.New(ctx, game.Options{
		NewWorld:       worldFactory(cfg.WorldFile),
		Notifier:       notifier,
		Logger:         log,
		Volumes:        game.Volumes{Music: cfg.MusicVolume, SFX: cfg.SFXVolume},
		EndAfterChoice: cfg.EndAfterChoice,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	log = logger.WithSession(log, g.ID().String())
	log.Info("Console started", "world_file", cfg.WorldFile, "broadcast", rdb != nil)

	p := tea.NewProgram(NewConsoleUI(ctx, g, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("Console stopped")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("Console stopped")
}

// worldFactory returns a function that builds a fresh world for each new game.
func worldFactory(path string) func() (*world.World, error) {
	if path == "" {
		return func() (*world.World, error) { return world.Default(), nil }
	}
	return func() (*world.World, error) { return world.LoadFile(path) }
}

// buildNotifier always logs notifications and also publishes them to Redis
// when REDIS_URL is set. A Redis that cannot be reached is logged and skipped.
func buildNotifier(ctx context.Context, cfg *config.Config, log *slog.Logger) (game.Notifier, *redis.Client) {
	notifiers := game.MultiNotifier{game.LogNotifier{Logger: log}}
	if cfg.RedisURL == "" {
		return notifiers, nil
	}

	rdb, err := events.NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		logger.WithError(log, err).Warn("Event broadcasting disabled")
		return notifiers, nil
	}
	return append(notifiers, events.NewBroadcaster(rdb, log)), rdb
}
