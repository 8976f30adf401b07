package bot

import (
	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/randutil"
)

// DealerBot is the house policy. It never uses items: when it can deduce the
// front shell it shoots itself on a blank and the opponent on a live, and
// otherwise it flips a coin.
type DealerBot struct {
	rng    randutil.Source
	logger *log.Logger
}

// NewDealerBot creates a new DealerBot instance
func NewDealerBot(rng randutil.Source, logger *log.Logger) *DealerBot {
	return &DealerBot{rng: rng, logger: logger.WithPrefix("dealer")}
}

func (d *DealerBot) MakeDecision(view game.View, validActions []game.Action) game.Action {
	shell, known := view.NextShell()

	var action game.Action
	switch {
	case known && shell == chamber.Blank:
		action = game.FireAt(game.Self)
		action.Reasoning = "dealer knows it is blank"
	case known:
		action = game.FireAt(game.Opponent)
		action.Reasoning = "dealer knows it is live"
	case randutil.CoinFlip(d.rng):
		action = game.FireAt(game.Self)
		action.Reasoning = "dealer guesses blank"
	default:
		action = game.FireAt(game.Opponent)
		action.Reasoning = "dealer guesses live"
	}

	d.logger.Debug("Dealer decision",
		"known", known,
		"live", view.LiveLeft,
		"blank", view.BlankLeft,
		"uncertain", view.CountsUncertain,
		"decision", action)
	return action
}
