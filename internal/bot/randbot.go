package bot

import (
	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    randutil.Source
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng randutil.Source, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) MakeDecision(view game.View, validActions []game.Action) game.Action {
	if len(validActions) == 0 {
		a := game.FireAt(game.Opponent)
		a.Reasoning = "rand-bot no valid actions"
		return a
	}

	a := validActions[r.rng.IntN(len(validActions))]
	a.Reasoning = "rand-bot random action"
	return a
}
