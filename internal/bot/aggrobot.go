package bot

import (
	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/game"
)

// AggroBot always shoots the opponent and never touches its items. It is
// the baseline the other policies are measured against.
type AggroBot struct {
	logger *log.Logger
}

// NewAggroBot creates a new AggroBot instance
func NewAggroBot(logger *log.Logger) *AggroBot {
	return &AggroBot{logger: logger}
}

func (a *AggroBot) MakeDecision(view game.View, validActions []game.Action) game.Action {
	action := game.FireAt(game.Opponent)
	action.Reasoning = "aggro-bot always shoots"
	return action
}
