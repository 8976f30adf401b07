package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxdal/buckshot/internal/randutil"
)

func TestInventoryAddTruncatesToCap(t *testing.T) {
	inv := NewInventory(DefaultCap)

	assert.Equal(t, 5, inv.Add(Beer, 5))
	assert.Equal(t, 3, inv.Add(Knife, 6), "only 3 slots left")
	assert.Equal(t, 8, inv.Total())
	assert.Equal(t, 3, inv.Count(Knife))
	assert.Equal(t, 0, inv.Add(Phone, 1))
	assert.False(t, inv.Has(Phone))
}

func TestInventoryAddIgnoresInvalid(t *testing.T) {
	inv := NewInventory(DefaultCap)
	assert.Equal(t, 0, inv.Add(None, 2))
	assert.Equal(t, 0, inv.Add(Beer, 0))
	assert.Equal(t, 0, inv.Total())
}

func TestInventoryConsume(t *testing.T) {
	inv := NewInventory(DefaultCap)
	inv.Add(Cigarettes, 1)

	require.NoError(t, inv.Consume(Cigarettes, 1))
	assert.False(t, inv.Has(Cigarettes))

	err := inv.Consume(Cigarettes, 1)
	assert.ErrorIs(t, err, ErrNoItem)
	assert.Equal(t, 0, inv.Count(Cigarettes), "failed consume must not go negative")

	inv.Add(Beer, 1)
	assert.ErrorIs(t, inv.Consume(Beer, 2), ErrNoItem)
	assert.Equal(t, 1, inv.Count(Beer))
}

func TestInventoryResetAndCounts(t *testing.T) {
	inv := NewInventory(DefaultCap)
	inv.Add(Magnifier, 2)
	inv.Add(Handcuffs, 1)

	assert.Equal(t, map[Kind]int{Magnifier: 2, Handcuffs: 1}, inv.Counts())
	assert.Equal(t, "magnifier x2, handcuffs x1", inv.String())

	clone := inv.Clone()
	inv.Reset()
	assert.Equal(t, 0, inv.Total())
	assert.Equal(t, "(empty)", inv.String())
	assert.Equal(t, 3, clone.Total())
}

func TestDrawRandomRespectsLimits(t *testing.T) {
	rng := randutil.New(99)
	limits := Limits{Cigarettes: 1, Handcuffs: 2}

	for range 200 {
		drawn := DrawRandom(rng, 8, limits)
		require.Len(t, drawn, 3, "only 3 items are ever eligible")
		counts := map[Kind]int{}
		for _, k := range drawn {
			counts[k]++
		}
		assert.Equal(t, 1, counts[Cigarettes])
		assert.Equal(t, 2, counts[Handcuffs])
	}
}

func TestDrawRandomWithoutLimits(t *testing.T) {
	rng := randutil.New(5)
	drawn := DrawRandom(rng, 20, nil)
	assert.Len(t, drawn, 20)
}

func TestDrawRandomNegativeLimitNeverEligible(t *testing.T) {
	rng := randutil.New(5)
	drawn := DrawRandom(rng, 4, Limits{Beer: -1, Phone: 0})
	assert.Empty(t, drawn)
}

func TestDrawRandomScriptedPick(t *testing.T) {
	// eligible order follows All; index 1 is Cigarettes
	rng := randutil.NewScripted(nil, 1, 0)
	drawn := DrawRandom(rng, 2, DefaultLimits())
	assert.Equal(t, []Kind{Cigarettes, Knife}, drawn)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"beer", Beer},
		{"Drink", Beer},
		{"  saw ", Knife},
		{"cuffs", Handcuffs},
		{"ADRENALINE", Adrenaline},
		{"phone", Phone},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("grenade")
	assert.Error(t, err)
	assert.Equal(t, "none", None.String())
	assert.False(t, None.Valid())
}
