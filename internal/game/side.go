package game

import (
	"github.com/pxdal/buckshot/internal/chamber"
)

// Side identifies one of the two participants.
type Side int

const (
	// Nobody is used where no participant applies, e.g. nobody handcuffed.
	Nobody Side = iota - 1
	Player
	Dealer
)

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	case Nobody:
		return "nobody"
	default:
		return "?"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Player {
		return Dealer
	}
	return Player
}

func (s Side) valid() bool {
	return s == Player || s == Dealer
}

// Target is who a shot is aimed at, relative to the shooter.
type Target int

const (
	Self Target = iota
	Opponent
)

// String returns the string representation of a target
func (t Target) String() string {
	if t == Self {
		return "self"
	}
	return "opponent"
}

// Knowledge is one slot of a participant's known-shell vector.
type Knowledge int

const (
	Unknown Knowledge = iota
	KnownBlank
	KnownLive
)

// String returns the string representation of a knowledge slot
func (k Knowledge) String() string {
	switch k {
	case KnownBlank:
		return "blank"
	case KnownLive:
		return "live"
	default:
		return "?"
	}
}

// KnowledgeOf converts a revealed shell into a knowledge slot.
func KnowledgeOf(s chamber.Shell) Knowledge {
	if s == chamber.Live {
		return KnownLive
	}
	return KnownBlank
}

// Shell returns the shell a revealed slot stands for.
func (k Knowledge) Shell() (chamber.Shell, bool) {
	switch k {
	case KnownLive:
		return chamber.Live, true
	case KnownBlank:
		return chamber.Blank, true
	default:
		return chamber.Blank, false
	}
}
