package game

import (
	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
	"github.com/pxdal/buckshot/internal/randutil"
)

// settleDeath handles a participant whose health just dropped below one.
// It reports whether anyone died.
func (r *Run) settleDeath(side Side) bool {
	if r.over {
		return true
	}
	if !r.participants[side].IsDead() {
		return false
	}
	if side == Player {
		r.over = true
		r.logger.Info("Game over", "rounds_won", r.roundsWon, "matches_won", r.matchesWon)
		r.emit(GameOverEvent{RoundsWon: r.roundsWon, MatchesWon: r.matchesWon, timestamp: r.now()})
		return true
	}
	r.onRoundEnd()
	return true
}

// onRoundEnd advances past a round the player won. Items are wiped between
// rounds except when the round counter wraps into a new match, where both
// inventories and draw counters carry over.
func (r *Run) onRoundEnd() {
	r.roundsWon++
	r.round++

	matchEnded := r.round > r.rules.RoundsPerMatch
	if matchEnded {
		r.matchesWon++
		r.round = 1
	} else {
		r.participants[Player].resetItems()
		r.participants[Dealer].resetItems()
	}

	health := r.rollHealth()
	r.sawedOff = false
	r.chamber.Clear()

	r.logger.Debug("Round end",
		"round", r.round,
		"matches_won", r.matchesWon,
		"match_ended", matchEnded,
		"health", health)
	r.emit(RoundEndEvent{
		Round:      r.round,
		MatchesWon: r.matchesWon,
		MatchEnded: matchEnded,
		Health:     health,
		timestamp:  r.now(),
	})

	r.onSetEnd()
}

// onSetEnd loads a fresh chamber, blanks both known vectors, hands the gun
// back to the first-turn side and deals each side a random item batch gated
// by its current draw limits.
func (r *Run) onSetEnd() {
	r.chamber = chamber.Generate(r.rng, r.rules.ShellsMin, r.rules.ShellsMax)
	live, blank := r.ShellsLeft()
	for _, p := range r.participants {
		p.resetKnowledge(live, blank)
	}
	r.turn = r.firstTurn
	r.handcuffed = Nobody
	r.sets++

	r.logger.Debug("Set loaded", "set", r.sets, "live", live, "blank", blank)
	r.emit(SetLoadedEvent{Set: r.sets, Live: live, Blank: blank, timestamp: r.now()})

	for _, side := range []Side{Player, Dealer} {
		p := r.participants[side]
		count := randutil.IntRange(r.rng, r.rules.ItemsMin, r.rules.ItemsMax)
		drawn := item.DrawRandom(r.rng, count, p.drawLimits(r.rules.ItemLimits))
		kept := p.giveItems(drawn)
		r.logger.Debug("Items dealt", "side", side, "drawn", len(drawn), "kept", len(kept))
		r.emit(ItemsDealtEvent{Side: side, Items: kept, timestamp: r.now()})
	}
}
