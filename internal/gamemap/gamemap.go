package gamemap

import (
	"cmp"
	"slices"

	"mrogue/internal/grid"
)

// Store is the sparse set of loaded chunks. It is the walkability oracle
// every query in the simulation goes through.
type Store struct {
	size   int
	chunks map[ChunkCoord]*Chunk
}

// NewStore creates an empty store for chunks of the given size.
func NewStore(chunkSize int) *Store {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Store{size: chunkSize, chunks: make(map[ChunkCoord]*Chunk)}
}

// ChunkSize returns the edge length of every chunk in the store.
func (s *Store) ChunkSize() int { return s.size }

// Len returns the number of loaded chunks.
func (s *Store) Len() int { return len(s.chunks) }

// Insert adds c, replacing any chunk already at its coordinate.
func (s *Store) Insert(c *Chunk) {
	s.chunks[c.Coord] = c
}

// Remove unloads the chunk at cc and returns it, or nil if absent.
func (s *Store) Remove(cc ChunkCoord) *Chunk {
	c := s.chunks[cc]
	delete(s.chunks, cc)
	return c
}

// Get returns the chunk at cc, or nil if it is not loaded.
func (s *Store) Get(cc ChunkCoord) *Chunk {
	return s.chunks[cc]
}

// Has reports whether the chunk at cc is loaded.
func (s *Store) Has(cc ChunkCoord) bool {
	_, ok := s.chunks[cc]
	return ok
}

// Coords returns the loaded chunk coordinates sorted by (Y, X).
func (s *Store) Coords() []ChunkCoord {
	out := make([]ChunkCoord, 0, len(s.chunks))
	for cc := range s.chunks {
		out = append(out, cc)
	}
	SortCoords(out)
	return out
}

// TileAt returns the tile at p and whether its chunk is loaded.
func (s *Store) TileAt(p grid.Pos) (Tile, bool) {
	c := s.chunks[ChunkOf(p, s.size)]
	if c == nil {
		return Tile{}, false
	}
	lx, ly := Local(p, s.size)
	return c.At(lx, ly), true
}

// IsWalkable reports whether p can be occupied. Cells in chunks that are not
// loaded are never walkable.
func (s *Store) IsWalkable(p grid.Pos) bool {
	t, ok := s.TileAt(p)
	return ok && t.Walkable
}

// IsTransparent reports whether light passes p. Unloaded cells are opaque.
func (s *Store) IsTransparent(p grid.Pos) bool {
	t, ok := s.TileAt(p)
	return ok && t.Transparent
}

// NearestWalkable searches square rings around p, out to maxRadius, for a
// walkable cell. Cells in a ring are visited row by row so the result is
// deterministic.
func (s *Store) NearestWalkable(p grid.Pos, maxRadius int) (grid.Pos, bool) {
	if s.IsWalkable(p) {
		return p, true
	}
	for r := int32(1); r <= int32(maxRadius); r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs32(dx), abs32(dy)) != r {
					continue
				}
				q := p.Offset(dx, dy)
				if s.IsWalkable(q) {
					return q, true
				}
			}
		}
	}
	return grid.Pos{}, false
}

// SortCoords orders chunk coordinates by (Y, X).
func SortCoords(cs []ChunkCoord) {
	slices.SortFunc(cs, func(a, b ChunkCoord) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
