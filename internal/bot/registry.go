package bot

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
)

// Names lists the policies New accepts.
var Names = []string{"rand", "aggro", "heuristic", "dealer"}

// New builds a policy by name. rng is only used by policies that draw.
func New(name string, rng randutil.Source, logger *log.Logger) (game.Agent, error) {
	switch name {
	case "rand":
		return NewRandBot(rng, logger), nil
	case "aggro":
		return NewAggroBot(logger), nil
	case "heuristic":
		return NewBot(logger), nil
	case "dealer":
		return NewDealerBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot %q (want one of %v)", name, Names)
	}
}

// Valid reports whether name is a known policy
func Valid(name string) bool {
	return slices.Contains(Names, name)
}
