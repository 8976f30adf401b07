package game

import (
	"fmt"
)

// HumanAgent represents a human player that can interact through a user interface
type HumanAgent struct {
	promptFunc func(view View, validActions []Action) (Action, error)
	onReject   func(action Action, err error)
}

// NewHumanAgent creates a new human agent with a prompt function. onReject
// may be nil.
func NewHumanAgent(promptFunc func(View, []Action) (Action, error), onReject func(Action, error)) *HumanAgent {
	return &HumanAgent{
		promptFunc: promptFunc,
		onReject:   onReject,
	}
}

// MakeDecision prompts the human for a decision
func (h *HumanAgent) MakeDecision(view View, validActions []Action) Action {
	fallback := FireAt(Opponent)
	if len(validActions) > 0 {
		fallback = validActions[0]
	}

	if h.promptFunc == nil {
		fallback.Reasoning = "No user interface available"
		return fallback
	}

	action, err := h.promptFunc(view, validActions)
	if err != nil {
		fallback.Reasoning = fmt.Sprintf("Input error: %v", err)
		return fallback
	}

	return action
}

// Rejected forwards engine feedback so the interface can re-prompt.
func (h *HumanAgent) Rejected(action Action, err error) {
	if h.onReject != nil {
		h.onReject(action, err)
	}
}
