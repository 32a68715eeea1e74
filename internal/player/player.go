// Package player tracks where the player stands and what they carry.
package player

import (
	"slices"

	"github.com/tatianab/abyssus/internal/models"
	"github.com/tatianab/abyssus/internal/world"
)

// Player is the single explorer aboard the station.
type Player struct {
	world     *world.World
	room      string
	inventory []string
}

// New places a player in the starting room with empty hands.
func New(w *world.World, start string) *Player {
	return &Player{world: w, room: start}
}

// CurrentRoom is the name of the room the player stands in.
func (p *Player) CurrentRoom() string { return p.room }

// Inventory returns the collected item ids in pickup order.
func (p *Player) Inventory() []string {
	return slices.Clone(p.inventory)
}

// Move reports where the direction leads from the current room. It does
// not move the player; call Enter to commit.
func (p *Player) Move(direction string) (string, bool) {
	return p.world.Destination(p.room, models.NormalizeDirection(direction))
}

// Enter puts the player in the room.
func (p *Player) Enter(room string) {
	p.room = room
}

// CollectItem picks up whatever lies in the current room.
func (p *Player) CollectItem() (string, bool, error) {
	it, ok, err := p.world.TakeItem(p.room)
	if err != nil || !ok {
		return "", false, err
	}
	p.inventory = append(p.inventory, it.ID)
	return it.ID, true, nil
}
