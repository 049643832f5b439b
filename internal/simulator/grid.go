package simulator

import "fmt"

// Grid is the rectangular region of valid robot positions,
// [0,Width) x [0,Height).

type Grid struct {
	Width, Height int
}

// DefaultGrid is the standard 5x5 table.
var DefaultGrid = Grid{Width: 5, Height: 5}

func NewGrid(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("grid must be at least 1x1, got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
