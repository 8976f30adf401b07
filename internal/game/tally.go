package game

import "github.com/pxdal/buckshot/internal/item"

// Tally counts shots and item uses per side from run events.
type Tally struct {
	Shots       [2]int
	LiveShots   [2]int
	SelfShots   [2]int
	DamageDealt [2]int
	ItemsUsed   [2]map[item.Kind]int
	Sets        int
	Rounds      int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		ItemsUsed: [2]map[item.Kind]int{make(map[item.Kind]int), make(map[item.Kind]int)},
	}
}

// OnEvent implements EventSubscriber.
func (t *Tally) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case ShotFiredEvent:
		t.Shots[e.Shooter]++
		if e.Shooter == e.Victim {
			t.SelfShots[e.Shooter]++
		}
		if e.Damage > 0 {
			t.LiveShots[e.Shooter]++
			t.DamageDealt[e.Shooter] += e.Damage
		}
	case ItemUsedEvent:
		t.ItemsUsed[e.Side][e.Item]++
		if e.Stolen != item.None {
			t.ItemsUsed[e.Side][e.Stolen]++
		}
	case SetLoadedEvent:
		t.Sets++
	case RoundEndEvent:
		t.Rounds++
	}
}

// TotalItemsUsed sums item uses for side.
func (t *Tally) TotalItemsUsed(side Side) int {
	n := 0
	for _, c := range t.ItemsUsed[side] {
		n += c
	}
	return n
}
