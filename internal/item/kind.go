package item

import (
	"fmt"
	"strings"
)

// Kind identifies a consumable item. The zero value None means "no item" and
// is never held in an inventory.
type Kind int

const (
	None Kind = iota
	Knife
	Cigarettes
	Medicine
	Magnifier
	Inverter
	Phone
	Beer
	Handcuffs
	Adrenaline

	numKinds
)

// All lists every real item kind in declaration order. Random draws and
// inventory listings iterate in this order.
var All = []Kind{Knife, Cigarettes, Medicine, Magnifier, Inverter, Phone, Beer, Handcuffs, Adrenaline}

var kindNames = [numKinds]string{
	None:       "none",
	Knife:      "knife",
	Cigarettes: "cigarettes",
	Medicine:   "medicine",
	Magnifier:  "magnifier",
	Inverter:   "inverter",
	Phone:      "phone",
	Beer:       "beer",
	Handcuffs:  "handcuffs",
	Adrenaline: "adrenaline",
}

var aliases = map[string]Kind{
	"saw":       Knife,
	"handsaw":   Knife,
	"cigarette": Cigarettes,
	"cigs":      Cigarettes,
	"pills":     Medicine,
	"glass":     Magnifier,
	"magnify":   Magnifier,
	"drink":     Beer,
	"cuffs":     Handcuffs,
	"adren":     Adrenaline,
}

// String returns the canonical lowercase name
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("item(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a real item (not None, not out of range).
func (k Kind) Valid() bool {
	return k > None && k < numKinds
}

// ParseKind resolves a canonical name or common alias, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range All {
		if kindNames[k] == s {
			return k, nil
		}
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	return None, fmt.Errorf("unknown item %q", s)
}
