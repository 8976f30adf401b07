package bot

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/item"
)

// Bot is a heuristic player policy. It gathers information with items
// before committing, keeps the gun on known blanks and makes known live
// shells count double.
type Bot struct {
	logger *log.Logger
}

// NewBot creates a new bot
func NewBot(logger *log.Logger) *Bot {
	return &Bot{logger: logger.WithPrefix("bot")}
}

// MakeDecision analyzes the view and returns a decision with reasoning
func (b *Bot) MakeDecision(view game.View, validActions []game.Action) game.Action {
	thinking := &ThinkingContext{}
	action := b.decide(view, validActions, thinking)
	action.Reasoning = thinking.GetThoughts()

	b.logger.Debug("Bot decision made",
		"health", view.Health,
		"opponent_health", view.OpponentHealth,
		"live", view.LiveLeft,
		"blank", view.BlankLeft,
		"decision", action,
		"reasoning", action.Reasoning)
	return action
}

func (b *Bot) decide(view game.View, valid []game.Action, thinking *ThinkingContext) game.Action {
	can := func(a game.Action) bool {
		for _, v := range valid {
			if v.Same(a) {
				return true
			}
		}
		return false
	}

	if view.Health < view.MaxHealth && can(game.Use(item.Cigarettes)) {
		thinking.AddThought(fmt.Sprintf("Down to %d of %d, smoking", view.Health, view.MaxHealth))
		return game.Use(item.Cigarettes)
	}

	shell, known := view.NextShell()
	if !known {
		switch {
		case can(game.Use(item.Magnifier)):
			thinking.AddThought("Front shell unknown, checking it")
			return game.Use(item.Magnifier)
		case can(game.StealWith(item.Magnifier)):
			thinking.AddThought("Front shell unknown, borrowing a magnifier")
			return game.StealWith(item.Magnifier)
		}
	}

	if known && shell == chamber.Live {
		thinking.AddThought("Next shell is live")
		if can(game.Use(item.Handcuffs)) {
			thinking.AddThought("Cuffing the opponent first")
			return game.Use(item.Handcuffs)
		}
		if !view.SawedOff && can(game.Use(item.Knife)) {
			thinking.AddThought("Sawing the barrel for double damage")
			return game.Use(item.Knife)
		}
		return game.FireAt(game.Opponent)
	}

	if known {
		thinking.AddThought("Next shell is blank")
		if can(game.Use(item.Inverter)) {
			thinking.AddThought("Inverting it to live")
			return game.Use(item.Inverter)
		}
		thinking.AddThought("Shooting self to keep the gun")
		return game.FireAt(game.Self)
	}

	if view.MaxHealth-view.Health >= 2 && view.Health > 1 && can(game.Use(item.Medicine)) {
		thinking.AddThought("Risking the medicine")
		return game.Use(item.Medicine)
	}

	// counted odds; after an unseen inversion they are only an estimate
	total := view.LiveLeft + view.BlankLeft
	pLive := 0.0
	if total > 0 {
		pLive = float64(view.LiveLeft) / float64(total)
	}
	thinking.AddThought(fmt.Sprintf("%d live of %d left (%.0f%%)", view.LiveLeft, total, pLive*100))

	if pLive == 0.5 && can(game.Use(item.Beer)) {
		thinking.AddThought("Coin flip, racking a shell instead")
		return game.Use(item.Beer)
	}
	if pLive >= 0.5 {
		thinking.AddThought("Odds favour live, shooting opponent")
		return game.FireAt(game.Opponent)
	}
	thinking.AddThought("Odds favour blank, shooting self")
	return game.FireAt(game.Self)
}
