package models

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/station.yaml
var stationYAML []byte

// ErrInvalidWorld is wrapped by every validation failure.
var ErrInvalidWorld = errors.New("invalid world definition")

// DefaultWorld returns the built-in Abyssus-9 station.
func DefaultWorld() (*WorldDefinition, error) {
	return ParseWorld(stationYAML)
}

// LoadWorld reads and validates a world file.
func LoadWorld(path string) (*WorldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	def, err := ParseWorld(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseWorld decodes a YAML world definition and validates it.
func ParseWorld(data []byte) (*WorldDefinition, error) {
	var def WorldDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse world YAML: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate reports every structural problem in the definition at once.
// Whether the win block names exactly one rule is left to the encounter
// package; here only its references are checked.
func (d *WorldDefinition) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidWorld, fmt.Sprintf(format, args...)))
	}

	rooms := make(map[string]Room, len(d.Rooms))
	items := make(map[string]string)
	for _, r := range d.Rooms {
		if r.Name == "" {
			fail("room with empty name")
			continue
		}
		if _, dup := rooms[r.Name]; dup {
			fail("duplicate room %q", r.Name)
			continue
		}
		rooms[r.Name] = r
		if r.Item == nil {
			continue
		}
		if r.Item.ID == "" {
			fail("room %q holds an item without an id", r.Name)
			continue
		}
		if other, dup := items[r.Item.ID]; dup {
			fail("item %q placed in both %q and %q", r.Item.ID, other, r.Name)
			continue
		}
		items[r.Item.ID] = r.Name
	}

	for _, name := range sortedRoomNames(rooms) {
		for dir, dest := range rooms[name].Exits {
			if dir == "" || NormalizeDirection(dir) != dir {
				fail("room %q exit %q must be lowercase without surrounding spaces", name, dir)
			}
			if _, ok := rooms[dest]; !ok {
				fail("room %q exit %q leads to unknown room %q", name, dir, dest)
			}
		}
	}

	if _, ok := rooms[d.Start]; !ok {
		fail("start room %q does not exist", d.Start)
	}
	if final, ok := rooms[d.Final]; !ok {
		fail("final room %q does not exist", d.Final)
	} else if len(final.Exits) > 0 {
		fail("final room %q must not have exits", d.Final)
	}

	for _, id := range d.Win.Items {
		if _, ok := items[id]; !ok {
			fail("win condition requires unknown item %q", id)
		}
	}
	if d.Win.Count < 0 || d.Win.Count > len(items) {
		fail("win condition requires %d items but the station holds %d", d.Win.Count, len(items))
	}

	return errors.Join(errs...)
}

func sortedRoomNames(rooms map[string]Room) []string {
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
