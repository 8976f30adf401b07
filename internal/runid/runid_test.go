package runid

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxdal/buckshot/internal/randutil"
)

func TestGenerateIsValid(t *testing.T) {
	g := NewGenerator(nil, nil)
	for range 50 {
		id := g.Generate()
		require.Len(t, id, Length)
		require.NoError(t, Validate(id))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	a := NewGenerator(clock, randutil.New(9)).Generate()
	b := NewGenerator(clock, randutil.New(9)).Generate()
	assert.Equal(t, a, b)

	c := NewGenerator(clock, randutil.New(10)).Generate()
	assert.NotEqual(t, a, c)
}

func TestGenerateSortsByTime(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	g := NewGenerator(clock, randutil.New(1))

	prev := g.Generate()
	for range 10 {
		clock.Advance(time.Millisecond)
		next := g.Generate()
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h455vb4pex5vsknk084sn02q", false},
		{"too short", "01h455vb4pex5vsknk084sn02", true},
		{"first char too large", "81h455vb4pex5vsknk084sn02q", true},
		{"invalid character", "01h455vb4pex5vsknk084sn0iq", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
