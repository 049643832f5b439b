package simulator

import "fmt"

// Robot holds position and facing on its grid. The zero state is
// (0,0) facing North; there is no separate "not placed" flag, so a
// REPORT before any PLACE yields "0,0,North".

type Robot struct {
	X, Y   int
	Facing Direction

	grid Grid
}

func NewRobot(g Grid) *Robot {
	return &Robot{grid: g}
}

// Place sets position and facing. Off-grid coordinates are ignored
// without error: the robot refuses to be put past the edge.
func (r *Robot) Place(x, y int, f Direction) {
	if !r.grid.InBounds(x, y) {
		return
	}
	r.X, r.Y, r.Facing = x, y, f
}

// Move advances one cell along the current facing, unless that would
// leave the grid, in which case nothing happens.
func (r *Robot) Move() {
	dx, dy := r.Facing.Step()
	nx, ny := r.X+dx, r.Y+dy
	if !r.grid.InBounds(nx, ny) {
		return
	}
	r.X, r.Y = nx, ny
}

func (r *Robot) RotateLeft() {
	r.Facing = r.Facing.Left()
}

func (r *Robot) RotateRight() {
	r.Facing = r.Facing.Right()
}

// Report renders the current state as "X,Y,Facing".
func (r *Robot) Report() string {
	return fmt.Sprintf("%d,%d,%s", r.X, r.Y, r.Facing)
}

func (r *Robot) String() string {
	return r.Report()
}
