// Package autopilot plans command scripts that walk a station on their own.
package autopilot

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tatianab/abyssus/internal/world"
)

// ErrUnreachable means no route exists between two rooms.
var ErrUnreachable = errors.New("no route")

// Strategy chooses what the autopilot tries to do before the final room.
type Strategy string

const (
	// Direct takes the shortest route to the final room and picks up only
	// what lies on the way.
	Direct Strategy = "direct"
	// Explore visits every room it can reach without entering the final
	// room, then heads there.
	Explore Strategy = "explore"
	// Collect walks to the home room of each item in definition order, then
	// heads to the final room.
	Collect Strategy = "collect"
)

// Plan returns the "go <direction>" commands for the strategy, ending in the
// final room. Ties between exits are broken alphabetically so plans are
// stable.
func Plan(w *world.World, s Strategy) ([]string, error) {
	switch s {
	case Direct:
		return route(w, w.Start(), w.Final(), "")
	case Explore:
		return tour(w, preorder(w, w.Start(), w.Final())[1:])
	case Collect:
		var stops []string
		for _, id := range w.ItemIDs() {
			it, ok := w.Item(id)
			if !ok {
				continue
			}
			if _, lying := w.ItemAt(it.Home); lying && it.Home != w.Final() {
				stops = append(stops, it.Home)
			}
		}
		return tour(w, stops)
	default:
		return nil, fmt.Errorf("unknown strategy %q", s)
	}
}

// tour visits the stops in order without entering the final room, then
// ends there.
func tour(w *world.World, stops []string) ([]string, error) {
	var cmds []string
	at := w.Start()
	for _, room := range stops {
		leg, err := route(w, at, room, w.Final())
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, leg...)
		at = room
	}
	leg, err := route(w, at, w.Final(), "")
	if err != nil {
		return nil, err
	}
	return append(cmds, leg...), nil
}

// route finds the shortest path from one room to another without passing
// through avoid.
func route(w *world.World, from, to, avoid string) ([]string, error) {
	type step struct {
		prev string
		dir  string
	}
	seen := map[string]step{from: {}}
	queue := []string{from}
	for len(queue) > 0 {
		room := queue[0]
		queue = queue[1:]
		if room == to {
			var cmds []string
			for room != from {
				s := seen[room]
				cmds = append(cmds, "go "+s.dir)
				room = s.prev
			}
			slices.Reverse(cmds)
			return cmds, nil
		}
		exits := w.Exits(room)
		for _, dir := range sortedKeys(exits) {
			dest := exits[dir]
			if _, ok := seen[dest]; ok || (dest == avoid && dest != to) {
				continue
			}
			seen[dest] = step{prev: room, dir: dir}
			queue = append(queue, dest)
		}
	}
	return nil, fmt.Errorf("%w from %q to %q", ErrUnreachable, from, to)
}

func preorder(w *world.World, start, avoid string) []string {
	var order []string
	visited := map[string]bool{}
	var visit func(room string)
	visit = func(room string) {
		visited[room] = true
		order = append(order, room)
		exits := w.Exits(room)
		for _, dir := range sortedKeys(exits) {
			if dest := exits[dir]; !visited[dest] && dest != avoid {
				visit(dest)
			}
		}
	}
	visit(start)
	return order
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
