package game

import (
	"errors"
	"fmt"

	"github.com/pxdal/buckshot/internal/item"
)

// Errors returned by Run actions. A rejected action never changes run state.
var (
	// ErrNoItem means the acting participant (or the adrenaline steal
	// victim) does not hold the item.
	ErrNoItem = item.ErrNoItem

	// ErrInvalidAction covers double handcuffing, stealing adrenaline, and
	// adrenaline used without a steal target.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNotYourTurn is an invalid action taken by the participant not
	// holding the gun.
	ErrNotYourTurn = fmt.Errorf("%w: not your turn", ErrInvalidAction)

	// ErrGameOver is returned for any action after the player has died. It
	// is not an invalid action: nothing can be valid any more.
	ErrGameOver = errors.New("game is over")
)

// Result tags the outcome of an action.
type Result int

const (
	// ResultEffected is a successful item use; the same participant acts again.
	ResultEffected Result = iota
	// ResultEarlyTurnEnd means the turn ended without a shot being fired
	// (the last shell was drunk away, or an item killed its user).
	ResultEarlyTurnEnd
	// ResultNoItem rejects use of an item that is not held.
	ResultNoItem
	// ResultInvalidAction rejects an action the rules do not allow.
	ResultInvalidAction
	// ResultFired is a completed shot.
	ResultFired
	// ResultGameOver rejects any action once the player has died.
	ResultGameOver
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case ResultEffected:
		return "effected"
	case ResultEarlyTurnEnd:
		return "early_turn_end"
	case ResultNoItem:
		return "no_item"
	case ResultInvalidAction:
		return "invalid_action"
	case ResultFired:
		return "fired"
	case ResultGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndsTurn reports whether the acting participant's turn is over.
func (r Result) EndsTurn() bool {
	return r == ResultFired || r == ResultEarlyTurnEnd
}

// Rejected reports whether the action was refused.
func (r Result) Rejected() bool {
	return r == ResultNoItem || r == ResultInvalidAction || r == ResultGameOver
}

func resultFor(err error) Result {
	switch {
	case errors.Is(err, ErrNoItem):
		return ResultNoItem
	case errors.Is(err, ErrGameOver):
		return ResultGameOver
	}
	return ResultInvalidAction
}
