// Package chamber models the shotgun's shell queue for a single set.
package chamber

import (
	"errors"
	"strings"

	"github.com/pxdal/buckshot/internal/randutil"
)

// Shell is one loaded round.
type Shell int

const (
	Blank Shell = iota
	Live
)

// String returns the string representation of a shell
func (s Shell) String() string {
	switch s {
	case Blank:
		return "blank"
	case Live:
		return "live"
	default:
		return "?"
	}
}

// Inverted returns the opposite polarity.
func (s Shell) Inverted() Shell {
	if s == Live {
		return Blank
	}
	return Live
}

// ErrEmpty is returned when popping or peeking an empty chamber.
var ErrEmpty = errors.New("chamber is empty")

// Generation bounds used when no explicit range is supplied.
const (
	DefaultMinShells = 2
	DefaultMaxShells = 8
)

// Chamber is the ordered queue of shells; index 0 fires next.
type Chamber struct {
	shells []Shell
}

// Generate loads a fresh chamber with a uniform total in [minShells, maxShells].
// Half the shells (rounded down) are live, the rest blank, in uniformly
// shuffled order.
func Generate(rng randutil.Source, minShells, maxShells int) *Chamber {
	total := randutil.IntRange(rng, minShells, maxShells)
	live := total / 2
	blank := total - live

	shells := make([]Shell, 0, total)
	for range live {
		shells = append(shells, Live)
	}
	for range blank {
		shells = append(shells, Blank)
	}

	rng.Shuffle(len(shells), func(i, j int) {
		shells[i], shells[j] = shells[j], shells[i]
	})

	return &Chamber{shells: shells}
}

// FromShells builds a chamber with an exact sequence. Used by tests and replays.
func FromShells(shells ...Shell) *Chamber {
	c := &Chamber{shells: make([]Shell, len(shells))}
	copy(c.shells, shells)
	return c
}

// Peek returns the next shell without removing it
func (c *Chamber) Peek() (Shell, error) {
	if len(c.shells) == 0 {
		return Blank, ErrEmpty
	}
	return c.shells[0], nil
}

// Pop removes and returns the next shell
func (c *Chamber) Pop() (Shell, error) {
	if len(c.shells) == 0 {
		return Blank, ErrEmpty
	}
	shell := c.shells[0]
	c.shells = c.shells[1:]
	return shell, nil
}

// InvertFront flips the polarity of the next shell in place.
func (c *Chamber) InvertFront() error {
	if len(c.shells) == 0 {
		return ErrEmpty
	}
	c.shells[0] = c.shells[0].Inverted()
	return nil
}

// At returns the shell at offset i from the front.
func (c *Chamber) At(i int) (Shell, bool) {
	if i < 0 || i >= len(c.shells) {
		return Blank, false
	}
	return c.shells[i], true
}

// Clear discards every remaining shell.
func (c *Chamber) Clear() {
	c.shells = c.shells[:0]
}

// IsEmpty returns true if no shells are left
func (c *Chamber) IsEmpty() bool {
	return len(c.shells) == 0
}

// Len returns the number of shells left
func (c *Chamber) Len() int {
	return len(c.shells)
}

// Count returns how many shells of the given polarity remain.
func (c *Chamber) Count(s Shell) int {
	n := 0
	for _, shell := range c.shells {
		if shell == s {
			n++
		}
	}
	return n
}

// Shells returns a copy of the remaining sequence.
func (c *Chamber) Shells() []Shell {
	out := make([]Shell, len(c.shells))
	copy(out, c.shells)
	return out
}

func (c *Chamber) String() string {
	parts := make([]string, len(c.shells))
	for i, s := range c.shells {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
