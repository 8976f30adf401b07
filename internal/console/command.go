package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/item"
)

var (
	// ErrQuit is returned when the player asks to leave or input ends.
	ErrQuit = errors.New("player quit")

	errHelp = errors.New("help requested")
)

const helpText = `commands:
  shoot self | shoot dealer      fire the shotgun (also: self, dealer)
  use <item>                     use an item, e.g. "use magnifier"
  use adrenaline <item>          steal an item and use it (also: steal <item>)
  help                           show this help
  quit                           leave the table`

// ParseCommand turns one line of input into an action.
func ParseCommand(line string) (game.Action, error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return game.Action{}, fmt.Errorf("empty command")
	}

	switch parts[0] {
	case "quit", "exit", "q":
		return game.Action{}, ErrQuit
	case "help", "h", "?":
		return game.Action{}, errHelp
	case "self", "me":
		return game.FireAt(game.Self), nil
	case "dealer", "opponent":
		return game.FireAt(game.Opponent), nil
	case "shoot", "fire":
		if len(parts) != 2 {
			return game.Action{}, fmt.Errorf("shoot whom? (self or dealer)")
		}
		switch parts[1] {
		case "self", "me", "myself":
			return game.FireAt(game.Self), nil
		case "dealer", "opponent", "them":
			return game.FireAt(game.Opponent), nil
		}
		return game.Action{}, fmt.Errorf("unknown target %q", parts[1])
	case "steal":
		if len(parts) != 2 {
			return game.Action{}, fmt.Errorf("steal what?")
		}
		return stealCommand(parts[1])
	case "use":
		if len(parts) < 2 {
			return game.Action{}, fmt.Errorf("use what?")
		}
		kind, err := item.ParseKind(parts[1])
		if err != nil {
			return game.Action{}, err
		}
		if kind != item.Adrenaline {
			if len(parts) > 2 {
				return game.Action{}, fmt.Errorf("%s takes no argument", kind)
			}
			return game.Use(kind), nil
		}
		if len(parts) != 3 {
			return game.Action{}, fmt.Errorf("adrenaline needs an item to steal")
		}
		return stealCommand(parts[2])
	}
	return game.Action{}, fmt.Errorf("unknown command %q (try help)", parts[0])
}

func stealCommand(name string) (game.Action, error) {
	kind, err := item.ParseKind(name)
	if err != nil {
		return game.Action{}, err
	}
	return game.StealWith(kind), nil
}
