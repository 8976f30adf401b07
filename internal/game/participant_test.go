package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pxdal/buckshot/internal/item"
)

func TestParticipant_GiveItemsRespectsCap(t *testing.T) {
	p := newParticipant("Player", 2)
	kept := p.giveItems([]item.Kind{item.Beer, item.Knife, item.Phone})

	assert.Equal(t, []item.Kind{item.Beer, item.Knife}, kept)
	assert.Equal(t, 0, p.BuggedCount(item.Phone), "discarded items do not count")
	assert.Equal(t, 1, p.BuggedCount(item.Beer))
}

func TestParticipant_DrawLimits(t *testing.T) {
	p := newParticipant("Dealer", item.DefaultCap)
	p.giveItems([]item.Kind{item.Handcuffs, item.Handcuffs})
	p.bugged[item.Cigarettes] = -2

	limits := p.drawLimits(item.DefaultLimits())
	assert.Equal(t, -1, limits[item.Handcuffs])
	assert.Equal(t, 3, limits[item.Cigarettes])
	assert.Equal(t, 8, limits[item.Beer])

	p.resetItems()
	assert.Equal(t, 0, p.BuggedCount(item.Handcuffs))
	assert.Empty(t, p.Items())
}

func TestParticipant_Health(t *testing.T) {
	p := newParticipant("Player", item.DefaultCap)
	p.setHealth(4)
	p.takeDamage(3)
	assert.Equal(t, 1, p.Health())
	assert.False(t, p.IsDead())

	p.heal(5)
	assert.Equal(t, 4, p.Health())

	p.takeDamage(4)
	assert.True(t, p.IsDead())
}
