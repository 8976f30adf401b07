package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestIntRange(t *testing.T) {
	rng := New(7)
	seen := map[int]bool{}
	for range 500 {
		v := IntRange(rng, 2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	assert.Equal(t, 5, IntRange(rng, 5, 5))
	assert.Equal(t, 5, IntRange(rng, 5, 1))
}

func TestScripted(t *testing.T) {
	t.Run("returns scripted values then falls back", func(t *testing.T) {
		s := NewScripted(New(1), 3, 0)
		assert.Equal(t, 3, s.IntN(4))
		assert.Equal(t, 0, s.IntN(2))
		assert.Equal(t, 0, s.Remaining())
		v := s.IntN(10)
		assert.True(t, v >= 0 && v < 10)
	})

	t.Run("shuffle follows script", func(t *testing.T) {
		s := NewScripted(nil, 0, 2, 1)
		xs := []string{"L", "L", "B", "B"}
		s.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		assert.Equal(t, []string{"B", "L", "B", "L"}, xs)
	})

	t.Run("out of range script panics", func(t *testing.T) {
		s := NewScripted(nil, 5)
		assert.Panics(t, func() { s.IntN(2) })
	})
}
