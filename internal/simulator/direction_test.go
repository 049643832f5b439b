package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allDirections = []Direction{North, East, South, West}

func TestRotationsAreInverse(t *testing.T) {
	for _, d := range allDirections {
		assert.Equal(t, d, d.Left().Right(), "left then right from %s", d)
		assert.Equal(t, d, d.Right().Left(), "right then left from %s", d)
	}
}

func TestRotationCycleLength(t *testing.T) {
	for _, d := range allDirections {
		r, l := d, d
		for i := 0; i < 4; i++ {
			r = r.Right()
			l = l.Left()
		}
		assert.Equal(t, d, r, "four rights from %s", d)
		assert.Equal(t, d, l, "four lefts from %s", d)
	}
}

func TestRotationOrder(t *testing.T) {
	assert.Equal(t, East, North.Right())
	assert.Equal(t, South, East.Right())
	assert.Equal(t, West, South.Right())
	assert.Equal(t, North, West.Right())
	assert.Equal(t, West, North.Left())
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{
		North: "North",
		East:  "East",
		South: "South",
		West:  "West",
	}
	for d, name := range want {
		assert.Equal(t, name, d.String())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token string
		want  Direction
		ok    bool
	}{
		{"NORTH", North, true},
		{"north", North, true},
		{"East", East, true},
		{"SOUTH", South, true},
		{"wEsT", West, true},
		{"UP", North, false},
		{"", North, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got, "token %q", tt.token)
		}
	}
}
