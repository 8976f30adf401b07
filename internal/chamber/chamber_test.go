package chamber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxdal/buckshot/internal/randutil"
)

func TestGenerateShellCounts(t *testing.T) {
	rng := randutil.New(1234)
	totals := map[int]bool{}

	for range 2000 {
		c := Generate(rng, DefaultMinShells, DefaultMaxShells)
		n := c.Len()
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 8)
		require.Equal(t, n/2, c.Count(Live), "live count for %s", c)
		require.Equal(t, n-n/2, c.Count(Blank), "blank count for %s", c)
		totals[n] = true
	}

	assert.Len(t, totals, 7, "every total in [2,8] should appear")
}

func TestGenerateScripted(t *testing.T) {
	// total = 2+2, then Fisher-Yates swaps (3,0) (2,2) (1,1)
	rng := randutil.NewScripted(nil, 2, 0, 2, 1)
	c := Generate(rng, 2, 8)
	assert.Equal(t, []Shell{Blank, Live, Blank, Live}, c.Shells())
}

func TestPopAndPeek(t *testing.T) {
	c := FromShells(Live, Blank)

	s, err := c.Peek()
	require.NoError(t, err)
	assert.Equal(t, Live, s)
	assert.Equal(t, 2, c.Len())

	s, err = c.Pop()
	require.NoError(t, err)
	assert.Equal(t, Live, s)

	s, err = c.Pop()
	require.NoError(t, err)
	assert.Equal(t, Blank, s)
	assert.True(t, c.IsEmpty())

	_, err = c.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = c.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestInvertFront(t *testing.T) {
	c := FromShells(Blank, Blank)
	require.NoError(t, c.InvertFront())
	assert.Equal(t, []Shell{Live, Blank}, c.Shells())
	assert.Equal(t, 1, c.Count(Live))

	require.NoError(t, c.InvertFront())
	assert.Equal(t, []Shell{Blank, Blank}, c.Shells())

	c.Clear()
	assert.ErrorIs(t, c.InvertFront(), ErrEmpty)
}

func TestFromShellsCopies(t *testing.T) {
	src := []Shell{Live, Blank}
	c := FromShells(src...)
	src[0] = Blank

	got, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, Live, got)

	_, ok = c.At(2)
	assert.False(t, ok)
	assert.Equal(t, "[live blank]", c.String())
}
