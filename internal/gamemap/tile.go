package gamemap

// TileKind identifies the terrain class of a map cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Tile holds the terrain classification for one cell. Walkable and
// Transparent are kept separately so richer terrain can diverge later.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeTile returns the canonical tile for kind.
func MakeTile(kind TileKind) Tile {
	if kind == TileFloor {
		return MakeFloor()
	}
	return MakeWall()
}

func (k TileKind) String() string {
	if k == TileFloor {
		return "floor"
	}
	return "wall"
}
