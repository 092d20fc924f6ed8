package render

import (
	"math"

	"mrogue/internal/grid"
)

// Camera translates between grid cells and screen cells. Grid X is
// multiplied by 2 because emoji occupy 2 terminal columns, and grid Y is
// flipped because the world's y axis points up while screen rows go down.
type Camera struct {
	OffsetX    int // grid x of the leftmost column
	OffsetY    int // grid y of the top row
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centred on cell (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that cell (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each cell is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy + c.ViewHeight/2
}

// Follow centres on a continuous world position, so the view slides with a
// move in transit rather than jumping when it lands.
func (c *Camera) Follow(v grid.Vec2, tileSize float64) {
	cx, cy := nearestCell(v, tileSize)
	c.Center(cx, cy)
}

// WorldToScreen converts cell (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = c.OffsetY - wy
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a cell.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, c.OffsetY - sy
}

// nearestCell rounds a world position to the closest cell origin.
func nearestCell(v grid.Vec2, tileSize float64) (int, int) {
	return int(math.Round(v.X / tileSize)), int(math.Round(v.Y / tileSize))
}
