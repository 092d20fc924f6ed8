package grid

import "math"

// Pos is an integer cell coordinate. It is the addressing unit for every
// world query and is safe to use as a map key.
type Pos struct {
	X, Y int32
}

// Vec2 is a continuous world-space coordinate.
type Vec2 struct {
	X, Y float64
}

// Direction is a single orthogonal step, or no step at all.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Cardinals lists the four steps in the fixed expansion order shared by the
// pathfinder and the decision functions.
var Cardinals = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the (dx, dy) of one step. World y grows upward.
func (d Direction) Delta() (int32, int32) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "none"
}

// Add returns the neighbouring position one step in direction d.
func (p Pos) Add(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Offset returns p shifted by (dx, dy).
func (p Pos) Offset(dx, dy int32) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |dx| + |dy|.
func (p Pos) Manhattan(o Pos) int {
	return abs(int(p.X)-int(o.X)) + abs(int(p.Y)-int(o.Y))
}

// Chebyshev returns max(|dx|, |dy|).
func (p Pos) Chebyshev(o Pos) int {
	return max(abs(int(p.X)-int(o.X)), abs(int(p.Y)-int(o.Y)))
}

// ToWorld converts p to world space: world = grid * tileSize.
func (p Pos) ToWorld(tileSize float64) Vec2 {
	return Vec2{X: float64(p.X) * tileSize, Y: float64(p.Y) * tileSize}
}

// FromWorld converts a world coordinate to the cell containing it:
// grid = floor(world / tileSize).
func FromWorld(v Vec2, tileSize float64) Pos {
	return Pos{
		X: int32(math.Floor(v.X / tileSize)),
		Y: int32(math.Floor(v.Y / tileSize)),
	}
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b Vec2, t float64) Vec2 {
	t = min(max(t, 0), 1)
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Dist returns the straight-line distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
