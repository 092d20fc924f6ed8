package component

import "mrogue/internal/grid"

// Transit is the presentation-side state of a move: the actor's continuous
// world position and how far into the current move it is.
type Transit struct {
	World   grid.Vec2
	Elapsed int
}
