package game

import (
	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/item"
)

// Participant is one side of the duel. Both sides share the same record; how
// a participant decides is supplied separately by an Agent.
type Participant struct {
	Name string

	health    int
	maxHealth int
	inventory *item.Inventory

	// bugged counts items drawn from the box minus items consumed, whoever
	// originally drew them. It can go negative and widens future draw
	// limits when it does.
	bugged map[item.Kind]int

	// known has one slot per shell left in the chamber.
	known []Knowledge

	// live and blank are the counts announced at load minus every shell
	// seen leaving the chamber. An inversion of a front shell this side had
	// not revealed makes them unreliable until the next load.
	live, blank int
	uncertain   bool
}

func newParticipant(name string, itemCap int) *Participant {
	return &Participant{
		Name:      name,
		inventory: item.NewInventory(itemCap),
		bugged:    make(map[item.Kind]int),
	}
}

// Health returns current health
func (p *Participant) Health() int { return p.health }

// MaxHealth returns the health ceiling for this round
func (p *Participant) MaxHealth() int { return p.maxHealth }

// IsDead reports health below one.
func (p *Participant) IsDead() bool { return p.health < 1 }

// Items returns a snapshot of held item counts.
func (p *Participant) Items() map[item.Kind]int { return p.inventory.Counts() }

// Has reports whether the participant holds at least one of kind.
func (p *Participant) Has(kind item.Kind) bool { return p.inventory.Has(kind) }

// BuggedCount returns the draw-limit counter for kind.
func (p *Participant) BuggedCount(kind item.Kind) int { return p.bugged[kind] }

// Known returns a copy of the known-shell vector.
func (p *Participant) Known() []Knowledge {
	out := make([]Knowledge, len(p.known))
	copy(out, p.known)
	return out
}

func (p *Participant) setHealth(h int) {
	p.health = h
	p.maxHealth = h
}

func (p *Participant) heal(n int) {
	p.health = min(p.health+n, p.maxHealth)
}

func (p *Participant) takeDamage(n int) {
	p.health -= n
}

// giveItems adds a drawn batch and bumps the bugged counter by what the cap
// actually let through.
func (p *Participant) giveItems(kinds []item.Kind) []item.Kind {
	kept := make([]item.Kind, 0, len(kinds))
	for _, k := range kinds {
		if p.inventory.Add(k, 1) == 1 {
			p.bugged[k]++
			kept = append(kept, k)
		}
	}
	return kept
}

// consumeItem removes one of kind and decrements its bugged counter.
func (p *Participant) consumeItem(kind item.Kind) error {
	if err := p.inventory.Consume(kind, 1); err != nil {
		return err
	}
	p.bugged[kind]--
	return nil
}

func (p *Participant) resetItems() {
	p.inventory.Reset()
	clear(p.bugged)
}

// drawLimits returns default minus bugged counter for every kind.
func (p *Participant) drawLimits(defaults item.Limits) item.Limits {
	limits := make(item.Limits, len(item.All))
	for _, k := range item.All {
		limits[k] = defaults[k] - p.bugged[k]
	}
	return limits
}

func (p *Participant) resetKnowledge(live, blank int) {
	p.known = make([]Knowledge, live+blank)
	p.live, p.blank = live, blank
	p.uncertain = false
}

// observe records a shell both sides watched leave the chamber.
func (p *Participant) observe(s chamber.Shell) {
	if len(p.known) > 0 {
		p.known = p.known[1:]
	}
	switch {
	case s == chamber.Live && p.live > 0:
		p.live--
	case s == chamber.Blank && p.blank > 0:
		p.blank--
	}
}

func (p *Participant) reveal(i int, s chamber.Shell) {
	if i >= 0 && i < len(p.known) {
		p.known[i] = KnowledgeOf(s)
	}
}

// observeInversion follows an inverter on the front shell. A side that had
// revealed the front keeps both its slot and its counts exact; any other
// side only learns that one shell of unknown polarity changed.
func (p *Participant) observeInversion() {
	if len(p.known) == 0 {
		return
	}
	switch p.known[0] {
	case KnownLive:
		p.known[0] = KnownBlank
		p.live--
		p.blank++
	case KnownBlank:
		p.known[0] = KnownLive
		p.blank--
		p.live++
	default:
		p.uncertain = true
	}
}
