package component

import "mrogue/internal/grid"

// GridMovement is an actor's cell and, while a move is in flight, the cell it
// is moving to. Target is cleared by the transit layer when the move lands.
type GridMovement struct {
	Current grid.Pos
	Target  *grid.Pos
}

// Moving reports whether a move is in flight.
func (m GridMovement) Moving() bool { return m.Target != nil }

// Occupies reports whether p is the actor's current or target cell.
func (m GridMovement) Occupies(p grid.Pos) bool {
	return m.Current == p || (m.Target != nil && *m.Target == p)
}
