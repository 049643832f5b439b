package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 7)
	require.NoError(t, err)
	assert.Equal(t, Grid{Width: 3, Height: 7}, g)

	_, err = NewGrid(0, 5)
	assert.Error(t, err)
	_, err = NewGrid(5, 0)
	assert.Error(t, err)
	_, err = NewGrid(-1, -1)
	assert.Error(t, err)
}

func TestGridInBounds(t *testing.T) {
	g := DefaultGrid
	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{4, 4, true},
		{0, 4, true},
		{5, 0, false},
		{0, 5, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.in, g.InBounds(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}
