// Package world holds the station map and the items still lying in it.
package world

import (
	"maps"
	"slices"

	"github.com/tatianab/abyssus/internal/models"
)

// Item is a collectible with a stable identifier and a display name.
type Item struct {
	ID   string
	Name string
	Home string
}

type room struct {
	description string
	exits       map[string]string
	item        *Item // nil once taken or if the room never had one
}

// World owns the room graph and every room's item slot. The graph is fixed
// after New; only item slots change.
type World struct {
	title string
	start string
	final string
	rooms map[string]*room
	items map[string]Item // every item by id, taken or not
	order []string        // item ids in definition order
}

// New builds a World from a definition, validating it first.
func New(def *models.WorldDefinition) (*World, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		title: def.Title,
		start: def.Start,
		final: def.Final,
		rooms: make(map[string]*room, len(def.Rooms)),
		items: make(map[string]Item),
	}
	for _, r := range def.Rooms {
		rm := &room{
			description: r.Description,
			exits:       maps.Clone(r.Exits),
		}
		if rm.exits == nil {
			rm.exits = map[string]string{}
		}
		if r.Item != nil {
			it := Item{ID: r.Item.ID, Name: r.Item.Name, Home: r.Name}
			if it.Name == "" {
				it.Name = it.ID
			}
			rm.item = &it
			w.items[it.ID] = it
			w.order = append(w.order, it.ID)
		}
		w.rooms[r.Name] = rm
	}
	return w, nil
}

// Default builds the built-in station.
func Default() (*World, error) {
	def, err := models.DefaultWorld()
	if err != nil {
		return nil, err
	}
	return New(def)
}

// Title is the station's display name.
func (w *World) Title() string { return w.title }

// Start is the room the player begins in.
func (w *World) Start() string { return w.start }

// Final is the room whose arrival triggers the encounter.
func (w *World) Final() string { return w.final }

// HasRoom reports whether the station has a room with this name.
func (w *World) HasRoom(name string) bool {
	_, ok := w.rooms[name]
	return ok
}

// Rooms returns every room name, sorted.
func (w *World) Rooms() []string {
	return slices.Sorted(maps.Keys(w.rooms))
}

// Exits returns a copy of the room's exits. An unknown room is a dead end.
func (w *World) Exits(name string) map[string]string {
	r, ok := w.rooms[name]
	if !ok {
		return map[string]string{}
	}
	return maps.Clone(r.exits)
}

// Destination looks up a single exit without copying the table.
func (w *World) Destination(name, direction string) (string, bool) {
	r, ok := w.rooms[name]
	if !ok {
		return "", false
	}
	dest, ok := r.exits[direction]
	return dest, ok
}

// Description returns the room's text, or "" for an unknown room.
func (w *World) Description(name string) string {
	if r, ok := w.rooms[name]; ok {
		return r.description
	}
	return ""
}

// ItemAt returns the item still lying in the room, if any.
func (w *World) ItemAt(name string) (Item, bool) {
	r, ok := w.rooms[name]
	if !ok || r.item == nil {
		return Item{}, false
	}
	return *r.item, true
}

// ClearItem empties the room's item slot for good. Clearing an empty slot
// is fine; clearing a room that does not exist is not.
func (w *World) ClearItem(name string) error {
	r, ok := w.rooms[name]
	if !ok {
		return &NotFoundError{Room: name}
	}
	r.item = nil
	return nil
}

// TakeItem removes and returns the room's item in one step, so an item is
// never both in a room and in someone's hands.
func (w *World) TakeItem(name string) (Item, bool, error) {
	r, ok := w.rooms[name]
	if !ok {
		return Item{}, false, &NotFoundError{Room: name}
	}
	if r.item == nil {
		return Item{}, false, nil
	}
	it := *r.item
	r.item = nil
	return it, true, nil
}

// Item looks up any item by id, whether or not it has been taken.
func (w *World) Item(id string) (Item, bool) {
	it, ok := w.items[id]
	return it, ok
}

// DisplayName returns the item's name, falling back to the id itself.
func (w *World) DisplayName(id string) string {
	if it, ok := w.items[id]; ok {
		return it.Name
	}
	return id
}

// ItemIDs returns every item id in the order the definition lists them.
func (w *World) ItemIDs() []string {
	return slices.Clone(w.order)
}

// ItemCount is the number of items the station started with.
func (w *World) ItemCount() int { return len(w.items) }
