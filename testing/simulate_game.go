package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tatianab/abyssus/internal/autopilot"
	"github.com/tatianab/abyssus/internal/config"
	"github.com/tatianab/abyssus/internal/engine"
	"github.com/tatianab/abyssus/internal/models"
	"github.com/tatianab/abyssus/internal/world"
)

const maxTurns = 100

func main() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	strategy := fs.String("strategy", string(autopilot.Explore), "Autopilot strategy: explore, collect or direct")
	cfg, err := config.ParseConfig(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	def := mustLoad(cfg.WorldFile)
	w, err := world.New(def)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}
	cond, err := engine.WinCondition(def.Win, cfg.WinCount, w.ItemCount())
	if err != nil {
		log.Fatalf("Bad win condition: %v", err)
	}

	// 1. Plan the route before anything is picked up.
	fmt.Println("--- Step 1: Planning route ---")
	cmds, err := autopilot.Plan(w, autopilot.Strategy(*strategy))
	if err != nil {
		log.Fatalf("Failed to plan route: %v", err)
	}
	fmt.Printf("Strategy: %s, %d moves\n", *strategy, len(cmds))
	fmt.Printf("Rule: %s\n\n", cond.Describe())

	// 2. Play it.
	fmt.Println("--- Step 2: Playing ---")
	g, err := engine.New(w, cond, engine.Options{Out: os.Stdout})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.Start(ctx)

	for turn, cmd := range cmds {
		if turn >= maxTurns || g.Status() != engine.Playing {
			break
		}
		fmt.Printf("\n--- Turn %d: %s ---\n", turn+1, cmd)
		status := g.Handle(ctx, cmd)
		fmt.Printf("Room=%s, Inventory=%v, Status=%s\n", g.Player().CurrentRoom(), g.Player().Inventory(), status)
	}

	if g.Outcome() == "" {
		fmt.Printf("\nSimulation Ended: the %s was never reached.\n", w.Final())
		os.Exit(1)
	}
	fmt.Printf("\nSimulation Ended: %s\n", g.Outcome())
}

func mustLoad(path string) *models.WorldDefinition {
	var (
		def *models.WorldDefinition
		err error
	)
	if path == "" {
		def, err = models.DefaultWorld()
	} else {
		def, err = models.LoadWorld(path)
	}
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}
	return def
}
