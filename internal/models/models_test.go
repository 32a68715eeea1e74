package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorld(t *testing.T) {
	def, err := DefaultWorld()
	require.NoError(t, err)

	assert.Equal(t, "Echoes of Abyssus-9", def.Title)
	assert.Equal(t, "Docking Bay", def.Start)
	assert.Equal(t, "Control Center", def.Final)
	assert.Len(t, def.Rooms, 11)
	assert.Len(t, def.Win.Items, 6)
	assert.Zero(t, def.Win.Count)
}

func TestDefaultWorldIsClosed(t *testing.T) {
	def, err := DefaultWorld()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, r := range def.Rooms {
		names[r.Name] = true
	}
	for _, r := range def.Rooms {
		for dir, dest := range r.Exits {
			assert.Truef(t, names[dest], "%s --%s--> %s is dangling", r.Name, dir, dest)
		}
		if r.Name == def.Final {
			assert.Empty(t, r.Exits, "final room has exits")
		}
	}
}

func TestParseWorldRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "dangling exit",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {north: Nowhere}
  - name: B
`,
		},
		{
			name: "final room with exits",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {north: B}
  - name: B
    exits: {south: A}
`,
		},
		{
			name: "missing start",
			yaml: `
start: Z
final: B
rooms:
  - name: B
`,
		},
		{
			name: "mixed-case exit",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {North: B}
  - name: B
`,
		},
		{
			name: "padded exit",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {" up ": B}
  - name: B
`,
		},
		{
			name: "empty exit",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {"": B}
  - name: B
`,
		},
		{
			name: "duplicate room",
			yaml: `
start: A
final: B
rooms:
  - name: A
  - name: A
  - name: B
`,
		},
		{
			name: "duplicate item id",
			yaml: `
start: A
final: B
rooms:
  - name: A
    item: {id: key, name: Key}
  - name: B
    item: {id: key, name: Other Key}
`,
		},
		{
			name: "unknown required item",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {north: B}
    item: {id: key, name: Key}
  - name: B
win:
  items: [key, lamp]
`,
		},
		{
			name: "count above item total",
			yaml: `
start: A
final: B
rooms:
  - name: A
    exits: {north: B}
    item: {id: key, name: Key}
  - name: B
win:
  count: 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorld([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidWorld)
		})
	}
}

func TestNormalizeDirection(t *testing.T) {
	tests := map[string]string{
		"north":      "north",
		"NORTH":      "north",
		"  East\t":   "east",
		"":           "",
		" Nord-Öst ": "nord-öst",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeDirection(in), "input %q", in)
	}
}

func TestParseWorldMalformedYAML(t *testing.T) {
	_, err := ParseWorld([]byte("rooms: [:"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidWorld)
}

func TestLoadWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := []byte(`
title: Tiny
start: Hatch
final: Core
rooms:
  - name: Hatch
    exits: {up: Core}
    item: {id: wrench, name: Wrench}
  - name: Core
win:
  count: 1
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	def, err := LoadWorld(path)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", def.Title)
	assert.Equal(t, 1, def.Win.Count)
	assert.Equal(t, "Core", def.Rooms[0].Exits["up"])

	_, err = LoadWorld(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
