package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"go north", Command{Verb: VerbGo, Direction: "north"}},
		{"  GO   North  ", Command{Verb: VerbGo, Direction: "north"}},
		{"go\tEAST", Command{Verb: VerbGo, Direction: "east"}},
		{"go north  west", Command{Verb: VerbGo, Direction: "north  west"}},
		{"go up ladder ", Command{Verb: VerbGo, Direction: "up ladder"}},
		{"go", Command{Verb: VerbInvalid}},
		{"go   ", Command{Verb: VerbInvalid}},
		{"gonorth", Command{Verb: VerbInvalid}},
		{"help", Command{Verb: VerbHelp}},
		{" HELP ", Command{Verb: VerbHelp}},
		{"help me", Command{Verb: VerbInvalid}},
		{"quit", Command{Verb: VerbQuit}},
		{"Quit", Command{Verb: VerbQuit}},
		{"inventory", Command{Verb: VerbInventory}},
		{"inv", Command{Verb: VerbInventory}},
		{"i", Command{Verb: VerbInventory}},
		{"", Command{Verb: VerbInvalid}},
		{"dance", Command{Verb: VerbInvalid}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCommand(tt.line), "line %q", tt.line)
	}
}

func TestVerbString(t *testing.T) {
	assert.Equal(t, "go", VerbGo.String())
	assert.Equal(t, "inventory", VerbInventory.String())
	assert.Equal(t, "invalid", Verb(99).String())
}
