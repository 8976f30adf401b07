package game

import "github.com/pxdal/buckshot/internal/chamber"

// DeduceNextShell reports the front shell when a participant is entitled to
// know it: it was revealed, every shell it has not seen is of one polarity,
// or only one shell is left. live and blank must be counts the participant
// can vouch for; View.NextShell applies that rule.
func DeduceNextShell(known []Knowledge, live, blank int) (chamber.Shell, bool) {
	if live+blank == 1 {
		if live == 1 {
			return chamber.Live, true
		}
		return chamber.Blank, true
	}
	if len(known) == 0 || live+blank == 0 {
		return chamber.Blank, false
	}
	if shell, ok := known[0].Shell(); ok {
		return shell, true
	}

	unseenLive, unseenBlank := live, blank
	for _, k := range known {
		switch k {
		case KnownLive:
			unseenLive--
		case KnownBlank:
			unseenBlank--
		}
	}

	switch {
	case unseenLive <= 0:
		return chamber.Blank, true
	case unseenBlank <= 0:
		return chamber.Live, true
	}
	return chamber.Blank, false
}
