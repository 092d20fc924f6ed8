package component

import (
	"mrogue/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

// FieldOfView holds what an observer currently sees. It is recomputed only
// when the observer's cell changes or the view is marked dirty.
type FieldOfView struct {
	Radius  int
	Visible mapset.Set[grid.Pos]

	origin grid.Pos
	dirty  bool
}

// NewFieldOfView creates an empty view that will compute on first use.
func NewFieldOfView(radius int) *FieldOfView {
	return &FieldOfView{
		Radius:  max(radius, 0),
		Visible: mapset.New[grid.Pos](),
		dirty:   true,
	}
}

// MarkDirty forces the next update to recompute, e.g. after terrain around
// the observer streamed in or out.
func (f *FieldOfView) MarkDirty() { f.dirty = true }

// NeedsUpdate reports whether a view from observer must be recomputed.
func (f *FieldOfView) NeedsUpdate(observer grid.Pos) bool {
	return f.dirty || f.origin != observer
}

// Commit stores a freshly computed view from observer.
func (f *FieldOfView) Commit(observer grid.Pos, visible mapset.Set[grid.Pos]) {
	f.origin = observer
	f.Visible = visible
	f.dirty = false
}

// Origin returns the cell the current view was computed from.
func (f *FieldOfView) Origin() grid.Pos { return f.origin }

// Sees reports whether p is in the current view.
func (f *FieldOfView) Sees(p grid.Pos) bool { return f.Visible.Has(p) }
