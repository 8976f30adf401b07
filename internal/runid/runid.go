// Package runid generates sortable identifiers for playthroughs.
//
// IDs are UUIDv7 values encoded as 26 lowercase Crockford base32 characters.
// Both the clock and the random bits are injectable so a seeded run always
// gets the same ID in tests and replays.
package runid

import (
	"fmt"
	"strings"

	"github.com/coder/quartz"

	"github.com/pxdal/buckshot/internal/randutil"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID.
const Length = 26

// Generator produces run IDs from a clock and a random source.
type Generator struct {
	clock quartz.Clock
	rng   randutil.Source
}

// NewGenerator creates a generator. A nil clock uses the real wall clock.
func NewGenerator(clock quartz.Clock, rng randutil.Source) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if rng == nil {
		rng, _ = randutil.NewTimeSeeded()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate creates a new run ID.
func (g *Generator) Generate() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp, big endian
	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	for i := 6; i < 16; i++ {
		id[i] = byte(g.rng.IntN(256))
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return id
}

// encode writes the 128 bits as 26 five-bit groups, left padded with two
// zero bits so the first character is always in 0-7.
func encode(data [16]byte) string {
	bit := func(k int) byte {
		if k < 0 {
			return 0
		}
		return (data[k/8] >> (7 - k%8)) & 1
	}

	out := make([]byte, Length)
	for i := range Length {
		var v byte
		start := i*5 - 2
		for k := start; k < start+5; k++ {
			v = v<<1 | bit(k)
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks if a run ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
