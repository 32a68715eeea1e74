package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatianab/abyssus/internal/encounter"
	"github.com/tatianab/abyssus/internal/models"
	"github.com/tatianab/abyssus/internal/player"
	"github.com/tatianab/abyssus/internal/world"
)

const tracerName = "github.com/tatianab/abyssus/internal/engine"

const (
	farewellText = "\nMission aborted. Exiting Abyssus-9."
	invalidText  = "Invalid command. Try 'go <direction>' or 'quit'."
)

// Status is where a game stands after a command.
type Status int

const (
	Playing Status = iota
	Aborted
	Finished
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Aborted:
		return "ABORTED"
	case Finished:
		return "FINISHED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options tunes a Game. Zero values pick stdout, a silent logger and the
// global tracer.
type Options struct {
	Out    io.Writer
	Logger *slog.Logger
	Tracer trace.Tracer
}

// Game runs one mission: one player, one station, one encounter.
type Game struct {
	world  *world.World
	player *player.Player
	cond   encounter.Condition

	out    io.Writer
	log    *slog.Logger
	tracer trace.Tracer

	status  Status
	outcome encounter.Outcome
}

// WinCondition picks the rule for the final encounter. A positive override
// replaces the world's own rule with a count.
func WinCondition(win models.WinConfig, override, itemTotal int) (encounter.Condition, error) {
	if override > 0 {
		if override > itemTotal {
			return nil, fmt.Errorf("%w: count %d exceeds the %d items aboard", encounter.ErrConfiguration, override, itemTotal)
		}
		return encounter.RequireCount(override), nil
	}
	return encounter.NewCondition(win.Items, win.Count)
}

// New starts a game at the world's start room. A rule that asks for
// nothing would win every encounter and is refused.
func New(w *world.World, cond encounter.Condition, opts Options) (*Game, error) {
	if cond == nil {
		return nil, encounter.ErrConfiguration
	}
	if cond.Required() < 1 {
		return nil, fmt.Errorf("%w: %s requires no items", encounter.ErrConfiguration, cond.Describe())
	}
	g := &Game{
		world:  w,
		player: player.New(w, w.Start()),
		cond:   cond,
		out:    opts.Out,
		log:    opts.Logger,
		tracer: opts.Tracer,
	}
	if g.out == nil {
		g.out = os.Stdout
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}
	if g.tracer == nil {
		g.tracer = otel.Tracer(tracerName)
	}
	return g, nil
}

// Status reports whether the game is still taking commands.
func (g *Game) Status() Status { return g.status }

// Outcome is empty until the encounter has been decided.
func (g *Game) Outcome() encounter.Outcome { return g.outcome }

func (g *Game) Condition() encounter.Condition { return g.cond }
func (g *Game) World() *world.World { return g.world }
func (g *Game) Player() *player.Player { return g.player }

// InventoryNames returns the display names of everything carried.
func (g *Game) InventoryNames() []string {
	inv := g.player.Inventory()
	names := make([]string, len(inv))
	for i, id := range inv {
		names[i] = g.world.DisplayName(id)
	}
	return names
}

// Missing returns the display names of required items not yet carried.
// A count rule names no particular item, so it never reports any.
func (g *Game) Missing() []string {
	set, ok := g.cond.(encounter.RequiredSet)
	if !ok {
		return nil
	}
	ids := set.Missing(g.player.Inventory())
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.world.DisplayName(id)
	}
	return names
}

// Exits returns the current room's exit directions, sorted.
func (g *Game) Exits() []string {
	dirs := make([]string, 0, 4)
	for dir := range g.world.Exits(g.player.CurrentRoom()) {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs
}

// Start prints the opening. If the player already stands in the final room
// the encounter runs straight away.
func (g *Game) Start(ctx context.Context) {
	if err := renderIntro(g.out, g.world.Title(), g.world.Final()); err != nil {
		g.log.Error("render intro", "err", err)
	}
	g.log.Info("game started", "room", g.player.CurrentRoom(), "rule", g.cond.Describe())
	g.checkArrival(ctx)
}

// Look prints where the player stands.
func (g *Game) Look() {
	room := g.player.CurrentRoom()
	g.printf("\nYou are in the %s.\n", room)
	if desc := g.world.Description(room); desc != "" {
		g.printf("\n%s\n\n", desc)
	}
	if exits := g.Exits(); len(exits) > 0 {
		g.printf("Exits: %s\n", strings.Join(exits, ", "))
	} else {
		g.println("There is no way out.")
	}
}

// Handle carries out one line of input and reports the resulting status.
// Once the game is over further input is ignored.
func (g *Game) Handle(ctx context.Context, line string) Status {
	if g.status != Playing {
		return g.status
	}

	cmd := ParseCommand(line)
	ctx, span := g.tracer.Start(ctx, "game.turn", trace.WithAttributes(
		attribute.String("game.command", cmd.Verb.String()),
		attribute.String("game.room", g.player.CurrentRoom()),
	))
	defer span.End()
	g.log.Debug("command", "cmd", cmd.Verb.String(), "room", g.player.CurrentRoom())

	switch cmd.Verb {
	case VerbGo:
		g.move(span, cmd.Direction)
	case VerbHelp:
		g.print(helpText)
	case VerbInventory:
		g.showInventory()
	case VerbQuit:
		g.println(farewellText)
		g.status = Aborted
		g.log.Info("mission aborted", "room", g.player.CurrentRoom())
	default:
		g.println(invalidText)
	}

	g.checkArrival(ctx)
	return g.status
}

// Run plays the game from the opening until quit, the encounter, or the
// end of input, which counts as quitting.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	g.Start(ctx)

	// bufio.Reader has no line length cap, so an overlong line is just
	// another invalid command.
	reader := bufio.NewReader(in)
	for g.status == Playing {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Look()
		g.print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		if err != nil && line == "" {
			g.Handle(ctx, "quit")
			break
		}
		g.Handle(ctx, line)
	}
	return nil
}

func (g *Game) move(span trace.Span, direction string) {
	direction = models.NormalizeDirection(direction)
	dest, ok := g.player.Move(direction)
	span.SetAttributes(attribute.Bool("game.moved", ok))
	if !ok {
		g.printf("You can't go %s from here.\n", direction)
		return
	}

	g.player.Enter(dest)
	g.printf("You move %s into the %s.\n", direction, dest)
	g.log.Info("moved", "direction", direction, "room", dest)

	id, ok, err := g.player.CollectItem()
	if err != nil {
		// The graph is closed, so this means a broken world.
		span.RecordError(err)
		g.log.Error("collect item", "room", dest, "err", err)
		return
	}
	if ok {
		span.SetAttributes(attribute.String("game.item", id))
		g.printf("You picked up: %s\n", g.world.DisplayName(id))
		g.log.Info("picked up", "item", id, "held", len(g.player.Inventory()))
	}
}

func (g *Game) showInventory() {
	names := g.InventoryNames()
	if len(names) == 0 {
		g.println("You are carrying nothing.")
		return
	}
	g.printf("You are carrying: %s\n", strings.Join(names, ", "))
}

func (g *Game) checkArrival(ctx context.Context) {
	if g.status == Playing && g.player.CurrentRoom() == g.world.Final() {
		g.finish(ctx)
	}
}

// finish decides the encounter first and only then narrates it.
func (g *Game) finish(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.encounter")
	defer span.End()

	inventory := g.player.Inventory()
	outcome, err := encounter.Evaluate(inventory, g.cond)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.log.Error("evaluate encounter", "err", err)
		g.status = Aborted
		return
	}
	g.status = Finished
	g.outcome = outcome
	span.SetAttributes(
		attribute.String("game.outcome", string(outcome)),
		attribute.Int("game.inventory_size", len(inventory)),
	)
	g.log.Info("encounter", "outcome", outcome, "held", len(inventory), "required", g.cond.Required())

	if err := renderEncounter(g.out, outcome); err != nil {
		g.log.Error("render encounter", "err", err)
	}
	summary := models.Summary{
		Collected: g.InventoryNames(),
		Held:      len(inventory),
		Required:  g.cond.Required(),
		Missing:   g.Missing(),
		Outcome:   string(outcome),
	}
	if err := renderSummary(g.out, g.world.Title(), summary); err != nil {
		g.log.Error("render summary", "err", err)
	}
}

func (g *Game) print(s string) {
	_, _ = io.WriteString(g.out, s)
}

func (g *Game) println(s string) {
	_, _ = fmt.Fprintln(g.out, s)
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}
