// Package item defines the consumable item kinds and per-participant
// inventories with their total-size cap and limit-gated random draws.
package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pxdal/buckshot/internal/randutil"
)

// DefaultCap is the most items one participant may hold at once.
const DefaultCap = 8

// ErrNoItem is returned when consuming more of a kind than is held.
var ErrNoItem = errors.New("item not held")

// Inventory holds item counts bounded by a total cap. Additions beyond the
// cap are silently discarded.
type Inventory struct {
	counts [numKinds]int
	cap    int
}

// NewInventory creates an empty inventory with the given total cap.
func NewInventory(capacity int) *Inventory {
	return &Inventory{cap: capacity}
}

// Add increases kind by n and then truncates the total back to the cap.
// It returns how many were actually kept.
func (inv *Inventory) Add(kind Kind, n int) int {
	if !kind.Valid() || n <= 0 {
		return 0
	}
	inv.counts[kind] += n
	added := n
	if overflow := inv.Total() - inv.cap; overflow > 0 {
		inv.counts[kind] -= overflow
		added -= overflow
	}
	return added
}

// Consume removes n of kind, failing with ErrNoItem if fewer are held.
func (inv *Inventory) Consume(kind Kind, n int) error {
	if !kind.Valid() || inv.counts[kind] < n {
		return fmt.Errorf("%w: %s", ErrNoItem, kind)
	}
	inv.counts[kind] -= n
	return nil
}

// Has reports whether at least one of kind is held.
func (inv *Inventory) Has(kind Kind) bool {
	return inv.Count(kind) > 0
}

// Count returns how many of kind are held.
func (inv *Inventory) Count(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return inv.counts[kind]
}

// Total returns the number of items held across all kinds.
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv.counts {
		total += n
	}
	return total
}

// Cap returns the total-items cap.
func (inv *Inventory) Cap() int {
	return inv.cap
}

// Reset empties the inventory.
func (inv *Inventory) Reset() {
	inv.counts = [numKinds]int{}
}

// Counts returns a snapshot of the non-zero counts.
func (inv *Inventory) Counts() map[Kind]int {
	out := make(map[Kind]int)
	for _, k := range All {
		if inv.counts[k] > 0 {
			out[k] = inv.counts[k]
		}
	}
	return out
}

// Clone returns an independent copy.
func (inv *Inventory) Clone() *Inventory {
	c := *inv
	return &c
}

func (inv *Inventory) String() string {
	var parts []string
	for _, k := range All {
		if n := inv.counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", k, n))
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, ", ")
}

// Limits caps how many of each kind a single random allotment may contain.
// Kinds missing from the map may not be drawn at all.
type Limits map[Kind]int

// DefaultLimits returns the stock per-allotment limits.
func DefaultLimits() Limits {
	return Limits{
		Knife:      3,
		Cigarettes: 1,
		Medicine:   1,
		Magnifier:  3,
		Inverter:   8,
		Phone:      8,
		Beer:       8,
		Handcuffs:  1,
		Adrenaline: 2,
	}
}

// Clone returns an independent copy.
func (l Limits) Clone() Limits {
	out := make(Limits, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// DrawRandom picks up to count items, each chosen uniformly among the kinds
// still eligible. With nil limits every kind is always eligible; otherwise a
// kind stops being eligible once this allotment holds limits[kind] of it.
// Drawing stops early when nothing is eligible.
func DrawRandom(rng randutil.Source, count int, limits Limits) []Kind {
	drawn := make([]Kind, 0, count)
	taken := make(map[Kind]int)
	eligible := make([]Kind, 0, len(All))

	for len(drawn) < count {
		eligible = eligible[:0]
		for _, k := range All {
			if limits == nil || taken[k] < limits[k] {
				eligible = append(eligible, k)
			}
		}
		if len(eligible) == 0 {
			break
		}
		k := eligible[rng.IntN(len(eligible))]
		taken[k]++
		drawn = append(drawn, k)
	}

	return drawn
}
