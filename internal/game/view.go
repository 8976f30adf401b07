package game

import (
	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
)

// View is the read-only state one participant is entitled to see when
// deciding. It carries the viewer's own known-shell vector only.
type View struct {
	Self       Side
	Turn       Side
	Round      int
	MatchesWon int

	Health            int
	MaxHealth         int
	OpponentHealth    int
	OpponentMaxHealth int

	Items         map[item.Kind]int
	OpponentItems map[item.Kind]int

	// LiveLeft and BlankLeft are what the viewer can count: the load
	// announcement minus shells seen leaving. They are only exact while
	// CountsUncertain is false.
	Known           []Knowledge
	LiveLeft        int
	BlankLeft       int
	CountsUncertain bool

	Handcuffed Side
	SawedOff   bool
	LastFired  *chamber.Shell
	Over       bool
}

// ShellsLeft returns the number of shells still in the chamber.
func (v View) ShellsLeft() int {
	return len(v.Known)
}

// NextShell reports the front shell when the viewer is entitled to know it.
// After an inversion the viewer did not see through, only a revealed front
// slot counts.
func (v View) NextShell() (chamber.Shell, bool) {
	if !v.CountsUncertain {
		return DeduceNextShell(v.Known, v.LiveLeft, v.BlankLeft)
	}
	if len(v.Known) == 0 {
		return chamber.Blank, false
	}
	return v.Known[0].Shell()
}

// View builds the decision view for side.
func (r *Run) View(side Side) View {
	self, opp := r.participants[side], r.participants[side.Other()]

	v := View{
		Self:              side,
		Turn:              r.turn,
		Round:             r.round,
		MatchesWon:        r.matchesWon,
		Health:            self.health,
		MaxHealth:         self.maxHealth,
		OpponentHealth:    opp.health,
		OpponentMaxHealth: opp.maxHealth,
		Items:             self.Items(),
		OpponentItems:     opp.Items(),
		Known:             self.Known(),
		LiveLeft:          self.live,
		BlankLeft:         self.blank,
		CountsUncertain:   self.uncertain,
		Handcuffed:        r.handcuffed,
		SawedOff:          r.sawedOff,
		Over:              r.over,
	}
	if r.hasFired {
		shell := r.lastFired
		v.LastFired = &shell
	}
	return v
}
