package system

import (
	"mrogue/internal/component"
	"mrogue/internal/gamemap"
	"mrogue/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

// FogState is how a cell should be drawn.
type FogState uint8

const (
	FogHidden     FogState = iota // never seen
	FogRemembered                 // seen before, not now
	FogVisible                    // in the current view
)

// FogOfWar remembers every cell that has been in the player's view.
type FogOfWar struct {
	seen mapset.Set[grid.Pos]
}

func NewFogOfWar() *FogOfWar {
	return &FogOfWar{seen: mapset.New[grid.Pos]()}
}

// Remember adds the cells of a freshly computed view.
func (f *FogOfWar) Remember(visible mapset.Set[grid.Pos]) {
	visible.Each(f.seen.Put)
}

// State classifies p against the current view.
func (f *FogOfWar) State(p grid.Pos, view *component.FieldOfView) FogState {
	if view != nil && view.Sees(p) {
		return FogVisible
	}
	if f.seen.Has(p) {
		return FogRemembered
	}
	return FogHidden
}

// Seen returns how many distinct cells have ever been visible.
func (f *FogOfWar) Seen() int { return f.seen.Size() }

// ForgetChunk drops memory of every cell in chunk cc.
func (f *FogOfWar) ForgetChunk(cc gamemap.ChunkCoord, chunkSize int) int {
	var drop []grid.Pos
	f.seen.Each(func(p grid.Pos) {
		if gamemap.ChunkOf(p, chunkSize) == cc {
			drop = append(drop, p)
		}
	})
	for _, p := range drop {
		f.seen.Remove(p)
	}
	return len(drop)
}
