// Package app wires configuration, logging, tracing and the station into a
// playable game.
package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/tatianab/abyssus/internal/config"
	"github.com/tatianab/abyssus/internal/debug"
	"github.com/tatianab/abyssus/internal/engine"
	"github.com/tatianab/abyssus/internal/models"
	"github.com/tatianab/abyssus/internal/observability"
	"github.com/tatianab/abyssus/internal/tui"
	"github.com/tatianab/abyssus/internal/world"
)

const tracerName = "github.com/tatianab/abyssus"

// Main parses args, plays one game on the terminal and returns the exit code.
func Main(args []string) int {
	cfg, err := config.ParseConfig(flag.NewFlagSet("abyssus", flag.ContinueOnError), args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

// Run plays one game. Setup errors are returned before anything is printed.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	runID := uuid.NewString()
	ctx = observability.WithRunID(ctx, runID)

	logger, closeLog, err := debug.NewLogger(cfg.Debug, cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("run_id", runID)

	tp, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		tp, _ = observability.InitTracing(ctx, config.Tracing{})
	}
	defer tp.Shutdown(context.Background())
	logger.Debug("tracing", "enabled", tp.IsEnabled())

	def, err := loadDefinition(cfg.WorldFile)
	if err != nil {
		return err
	}
	w, err := world.New(def)
	if err != nil {
		return err
	}
	cond, err := engine.WinCondition(def.Win, cfg.WinCount, w.ItemCount())
	if err != nil {
		return err
	}
	logger.Info("world loaded", "title", w.Title(), "rooms", len(w.Rooms()), "items", w.ItemCount(), "rule", cond.Describe())

	opts := engine.Options{
		Out:    out,
		Logger: logger,
		Tracer: tp.Tracer(tracerName),
	}

	if cfg.TUI {
		var buf bytes.Buffer
		opts.Out = &buf
		g, err := engine.New(w, cond, opts)
		if err != nil {
			return err
		}
		return tui.Run(ctx, g, &buf)
	}

	g, err := engine.New(w, cond, opts)
	if err != nil {
		return err
	}
	return g.Run(ctx, in)
}

func loadDefinition(path string) (*models.WorldDefinition, error) {
	if path == "" {
		return models.DefaultWorld()
	}
	return models.LoadWorld(path)
}
