package system

import "mrogue/internal/grid"

// Walkability answers whether a cell can be entered. *gamemap.Store is the
// production implementation; cells it has not loaded are not walkable.
type Walkability interface {
	IsWalkable(p grid.Pos) bool
}

// WalkFunc adapts a plain function to Walkability.
type WalkFunc func(grid.Pos) bool

func (f WalkFunc) IsWalkable(p grid.Pos) bool { return f(p) }
