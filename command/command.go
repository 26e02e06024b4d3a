// Package command recognizes the bare session commands that bypass intent
// routing.
package command

import "strings"

// Kind identifies a bare command.
type Kind int

const (
	// None means the text is not a bare command and should be routed.
	None Kind = iota
	Help
	Status
	Examples
	Quit
)

var names = map[string]Kind{
	"help":     Help,
	"status":   Status,
	"examples": Examples,
	"quit":     Quit,
	"exit":     Quit,
	"bye":      Quit,
}

// Parse reports which bare command text is. Matching is case-insensitive
// and ignores surrounding whitespace; anything else is None.
func Parse(text string) Kind {
	return names[strings.ToLower(strings.TrimSpace(text))]
}

func (k Kind) String() string {
	switch k {
	case Help:
		return "help"
	case Status:
		return "status"
	case Examples:
		return "examples"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}
