package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verb is the action a command line asks for.
type Verb int

const (
	VerbInvalid Verb = iota
	VerbGo
	VerbHelp
	VerbQuit
	VerbInventory
)

func (v Verb) String() string {
	switch v {
	case VerbGo:
		return "go"
	case VerbHelp:
		return "help"
	case VerbQuit:
		return "quit"
	case VerbInventory:
		return "inventory"
	default:
		return "invalid"
	}
}

// Command is one parsed line of player input.
type Command struct {
	Verb      Verb
	Direction string // only for VerbGo
}

var fold = cases.Lower(language.Und)

// ParseCommand reads a line of input. Anything it does not recognize,
// including a bare "go", comes back as VerbInvalid. The direction is the
// rest of the line after "go", trimmed, with inner spacing kept.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(fold.String(line))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Verb: VerbInvalid}
	}

	switch verb, rest := fields[0], fields[1:]; {
	case verb == "go" && len(rest) > 0:
		return Command{Verb: VerbGo, Direction: strings.TrimSpace(line[len(verb):])}
	case len(rest) > 0:
		return Command{Verb: VerbInvalid}
	case verb == "help":
		return Command{Verb: VerbHelp}
	case verb == "quit":
		return Command{Verb: VerbQuit}
	case verb == "inventory", verb == "inv", verb == "i":
		return Command{Verb: VerbInventory}
	default:
		return Command{Verb: VerbInvalid}
	}
}
