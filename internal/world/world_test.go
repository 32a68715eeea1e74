package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/abyssus/internal/models"
)

func newStation(t *testing.T) *World {
	t.Helper()
	w, err := Default()
	require.NoError(t, err)
	return w
}

func TestGraphIsClosed(t *testing.T) {
	w := newStation(t)
	for _, name := range w.Rooms() {
		for dir, dest := range w.Exits(name) {
			assert.Truef(t, w.HasRoom(dest), "%s --%s--> %s", name, dir, dest)
		}
	}
}

func TestFinalRoomHasNoExits(t *testing.T) {
	w := newStation(t)
	assert.Equal(t, "Control Center", w.Final())
	assert.Empty(t, w.Exits(w.Final()))
}

func TestUnknownRoomLookupsAreLenient(t *testing.T) {
	w := newStation(t)

	assert.Empty(t, w.Exits("Galley"))
	assert.Empty(t, w.Description("Galley"))
	_, ok := w.ItemAt("Galley")
	assert.False(t, ok)
	_, ok = w.Destination("Galley", "north")
	assert.False(t, ok)
}

func TestExitsReturnsCopy(t *testing.T) {
	w := newStation(t)
	exits := w.Exits("Docking Bay")
	exits["down"] = "Nowhere"

	_, ok := w.Destination("Docking Bay", "down")
	assert.False(t, ok)
}

func TestClearItem(t *testing.T) {
	w := newStation(t)

	it, ok := w.ItemAt("Server Room")
	require.True(t, ok)
	assert.Equal(t, "emp_device_core", it.ID)
	assert.Equal(t, "EMP Device Core", it.Name)

	require.NoError(t, w.ClearItem("Server Room"))
	_, ok = w.ItemAt("Server Room")
	assert.False(t, ok)

	// Already empty: still fine.
	assert.NoError(t, w.ClearItem("Server Room"))
	// Never had one: fine too.
	assert.NoError(t, w.ClearItem("Docking Bay"))
}

func TestClearItemUnknownRoom(t *testing.T) {
	w := newStation(t)

	err := w.ClearItem("Galley")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Galley", nf.Room)
}

func TestTakeItem(t *testing.T) {
	w := newStation(t)

	it, ok, err := w.TakeItem("Bio Lab")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "access_card", it.ID)
	assert.Equal(t, "Bio Lab", it.Home)

	_, ok, err = w.TakeItem("Bio Lab")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = w.TakeItem("Galley")
	assert.ErrorIs(t, err, ErrNotFound)

	// The catalogue still knows the item after it leaves the room.
	assert.Equal(t, "Access Card", w.DisplayName("access_card"))
}

func TestItemCatalogue(t *testing.T) {
	w := newStation(t)

	assert.Equal(t, 6, w.ItemCount())
	assert.Equal(t, []string{
		"engineering_scanner",
		"circuit_override_key",
		"access_card",
		"cryo_sample_vial",
		"emp_device_core",
		"plasma_torch",
	}, w.ItemIDs())
	assert.Equal(t, "mystery", w.DisplayName("mystery"))
}

func TestNewRejectsInvalidDefinition(t *testing.T) {
	_, err := New(&models.WorldDefinition{
		Start: "A",
		Final: "A",
		Rooms: []models.Room{{Name: "A", Exits: map[string]string{"up": "B"}}},
	})
	assert.ErrorIs(t, err, models.ErrInvalidWorld)
}

func TestItemNameDefaultsToID(t *testing.T) {
	w, err := New(&models.WorldDefinition{
		Start: "A",
		Final: "B",
		Rooms: []models.Room{
			{Name: "A", Exits: map[string]string{"in": "B"}, Item: &models.Item{ID: "fuse"}},
			{Name: "B"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "fuse", w.DisplayName("fuse"))
}
