package actor

import (
	"slices"

	"mrogue/internal/grid"
)

// Table is the arena of live actors.
type Table struct {
	nextID ID
	actors map[ID]*Actor
	order  []ID
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		nextID: 1,
		actors: make(map[ID]*Actor),
	}
}

// Spawn stores a copy of a under a new ID and returns the ID.
func (t *Table) Spawn(a Actor) ID {
	id := t.nextID
	t.nextID++
	a.ID = id
	t.actors[id] = &a
	t.order = append(t.order, id)
	return id
}

// Despawn removes the actor. Unknown IDs are ignored.
func (t *Table) Despawn(id ID) {
	if _, ok := t.actors[id]; !ok {
		return
	}
	delete(t.actors, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
}

// Alive reports whether the actor exists.
func (t *Table) Alive(id ID) bool {
	_, ok := t.actors[id]
	return ok
}

// Get returns the actor record, or nil. The pointer stays valid until the
// actor is despawned.
func (t *Table) Get(id ID) *Actor {
	return t.actors[id]
}

// Len returns the number of live actors.
func (t *Table) Len() int { return len(t.order) }

// IDs returns all live actor IDs in creation order.
func (t *Table) IDs() []ID {
	return slices.Clone(t.order)
}

// Query returns, in creation order, the IDs of actors for which keep is true.
func (t *Table) Query(keep func(*Actor) bool) []ID {
	var result []ID
	for _, id := range t.order {
		if keep(t.actors[id]) {
			result = append(result, id)
		}
	}
	return result
}

// Each calls fn for every actor in creation order. fn must not spawn or
// despawn.
func (t *Table) Each(fn func(*Actor)) {
	for _, id := range t.order {
		fn(t.actors[id])
	}
}

// Player returns the earliest-created player actor, or nil.
func (t *Table) Player() *Actor {
	for _, id := range t.order {
		if a := t.actors[id]; a.IsPlayer() {
			return a
		}
	}
	return nil
}

// OccupantOf returns the actor whose current or target cell is p, or nil.
func (t *Table) OccupantOf(p grid.Pos) *Actor {
	for _, id := range t.order {
		if a := t.actors[id]; a.Move.Occupies(p) {
			return a
		}
	}
	return nil
}
