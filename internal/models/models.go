package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// NormalizeDirection trims and lowercases a direction. Exit keys in a world
// file must already be in this form, since typed input is matched against
// them after the same treatment.
func NormalizeDirection(direction string) string {
	return lower.String(strings.TrimSpace(direction))
}

// WorldDefinition is the static station layout as written in a world file.
type WorldDefinition struct {
	Title string    `yaml:"title"`
	Start string    `yaml:"start"` // room the player wakes up in
	Final string    `yaml:"final"` // arrival here ends navigation
	Rooms []Room    `yaml:"rooms"`
	Win   WinConfig `yaml:"win"`
}

// Room is a single node of the station map.
type Room struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"` // direction -> room name
	Item        *Item             `yaml:"item,omitempty"`
}

// Item is a collectible that starts out in the room that declares it.
type Item struct {
	ID   string `yaml:"id"`   // e.g., "emp_device_core"
	Name string `yaml:"name"` // e.g., "EMP Device Core"
}

// WinConfig names the rule for the final encounter. Exactly one of the two
// fields may be set.
type WinConfig struct {
	Items []string `yaml:"items,omitempty"`
	Count int      `yaml:"count,omitempty"`
}

// Summary is the end-of-mission report.
type Summary struct {
	Collected []string // display names, in pickup order
	Held      int
	Required  int
	Missing   []string // display names of required items left behind
	Outcome   string
}
