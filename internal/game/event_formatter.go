package game

import (
	"fmt"
	"strings"

	"github.com/pxdal/buckshot/internal/item"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	Names       [2]string // display names indexed by Side
	Perspective Side      // side addressed as "you"; Nobody for a neutral log
	ShowEjected bool      // include the shell a beer ejected
}

// EventFormatter provides centralized formatting for all run events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	if opts.Names[Player] == "" {
		opts.Names[Player] = "Player"
	}
	if opts.Names[Dealer] == "" {
		opts.Names[Dealer] = "Dealer"
	}
	return &EventFormatter{opts: opts}
}

// Format renders any run event. Unknown events format as their type.
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case SetLoadedEvent:
		return ef.FormatSetLoaded(e)
	case ItemsDealtEvent:
		return ef.FormatItemsDealt(e)
	case ShotFiredEvent:
		return ef.FormatShotFired(e)
	case ItemUsedEvent:
		return ef.FormatItemUsed(e)
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	case GameOverEvent:
		return ef.FormatGameOver(e)
	default:
		return event.EventType().String()
	}
}

// FormatSetLoaded formats a reload announcement
func (ef *EventFormatter) FormatSetLoaded(e SetLoadedEvent) string {
	return fmt.Sprintf("*** LOAD %d *** %d live, %d blank", e.Set, e.Live, e.Blank)
}

// FormatItemsDealt formats an item allotment
func (ef *EventFormatter) FormatItemsDealt(e ItemsDealtEvent) string {
	if len(e.Items) == 0 {
		return fmt.Sprintf("%s: receives nothing", ef.name(e.Side))
	}
	names := make([]string, len(e.Items))
	for i, k := range e.Items {
		names[i] = k.String()
	}
	return fmt.Sprintf("%s: receives %s", ef.name(e.Side), strings.Join(names, ", "))
}

// FormatShotFired formats a resolved shot
func (ef *EventFormatter) FormatShotFired(e ShotFiredEvent) string {
	target := ef.name(e.Victim)
	if e.Shooter == e.Victim {
		target = "self"
	}
	if e.Damage == 0 {
		return fmt.Sprintf("%s: shoots %s... *click* (blank)", ef.name(e.Shooter), target)
	}
	return fmt.Sprintf("%s: shoots %s... BANG (-%d, %s at %d)",
		ef.name(e.Shooter), target, e.Damage, ef.name(e.Victim), e.HealthAfter)
}

// FormatItemUsed formats an item use
func (ef *EventFormatter) FormatItemUsed(e ItemUsedEvent) string {
	text := fmt.Sprintf("%s: uses %s", ef.name(e.Side), e.Item)
	if e.Stolen != item.None {
		text = fmt.Sprintf("%s: uses adrenaline, steals %s", ef.name(e.Side), e.Stolen)
	}
	if ef.opts.ShowEjected && e.Ejected != nil {
		text += fmt.Sprintf(" (ejects %s)", e.Ejected)
	}
	if e.Result == ResultEarlyTurnEnd {
		text += ", turn over"
	}
	return text
}

// FormatRoundEnd formats the dealer's death
func (ef *EventFormatter) FormatRoundEnd(e RoundEndEvent) string {
	if e.MatchEnded {
		return fmt.Sprintf("*** MATCH WON *** %d so far, both sides back to %d health", e.MatchesWon, e.Health)
	}
	return fmt.Sprintf("*** ROUND %d *** both sides at %d health", e.Round, e.Health)
}

// FormatGameOver formats the player's death
func (ef *EventFormatter) FormatGameOver(e GameOverEvent) string {
	return fmt.Sprintf("*** GAME OVER *** %d rounds won, %d matches won", e.RoundsWon, e.MatchesWon)
}

func (ef *EventFormatter) name(side Side) string {
	if side == ef.opts.Perspective {
		return "You"
	}
	if side.valid() {
		return ef.opts.Names[side]
	}
	return side.String()
}
