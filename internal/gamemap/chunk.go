package gamemap

import "mrogue/internal/grid"

// ChunkCoord addresses a chunk: floor(grid_pos / chunk_size) on each axis.
type ChunkCoord struct {
	X, Y int32
}

// Chunk is a fixed-size square block of terrain. Tiles are row-major
// (index = ly*Size + lx) and never change after generation.
type Chunk struct {
	Coord ChunkCoord
	Size  int
	Tiles []Tile
	Seed  uint32 // salt the terrain was derived from
}

// NewChunk creates a chunk of the given size filled with walls.
func NewChunk(cc ChunkCoord, size int) *Chunk {
	tiles := make([]Tile, size*size)
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &Chunk{Coord: cc, Size: size, Tiles: tiles}
}

// At returns the tile at local cell (lx, ly). Panics if out of range.
func (c *Chunk) At(lx, ly int) Tile {
	return c.Tiles[ly*c.Size+lx]
}

// Set replaces the tile at local cell (lx, ly). Only generators call this,
// before the chunk is inserted into a Store.
func (c *Chunk) Set(lx, ly int, t Tile) {
	c.Tiles[ly*c.Size+lx] = t
}

// Origin returns the grid position of local cell (0, 0).
func (c *Chunk) Origin() grid.Pos {
	return c.Coord.Origin(c.Size)
}

// WorldPos returns the grid position of local cell (lx, ly).
func (c *Chunk) WorldPos(lx, ly int) grid.Pos {
	o := c.Origin()
	return grid.Pos{X: o.X + int32(lx), Y: o.Y + int32(ly)}
}

// Contains reports whether p lies inside this chunk.
func (c *Chunk) Contains(p grid.Pos) bool {
	return ChunkOf(p, c.Size) == c.Coord
}

// Origin returns the grid position of the chunk's lower-left cell.
func (cc ChunkCoord) Origin(size int) grid.Pos {
	return grid.Pos{X: cc.X * int32(size), Y: cc.Y * int32(size)}
}

// Center returns the world-space centre of the chunk.
func (cc ChunkCoord) Center(size int, tileSize float64) grid.Vec2 {
	span := float64(size) * tileSize
	return grid.Vec2{
		X: (float64(cc.X) + 0.5) * span,
		Y: (float64(cc.Y) + 0.5) * span,
	}
}

// ChunkOf returns the coordinate of the chunk containing p.
func ChunkOf(p grid.Pos, size int) ChunkCoord {
	s := int32(size)
	return ChunkCoord{X: floorDiv(p.X, s), Y: floorDiv(p.Y, s)}
}

// Local returns p's cell offset inside its chunk, both in [0, size).
func Local(p grid.Pos, size int) (int, int) {
	s := int32(size)
	return int(p.X - floorDiv(p.X, s)*s), int(p.Y - floorDiv(p.Y, s)*s)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
