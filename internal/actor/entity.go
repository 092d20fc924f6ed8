package actor

import (
	"mrogue/internal/component"
	"mrogue/internal/grid"
)

// ID uniquely identifies an actor. IDs are handed out in increasing order and
// never reused, so ascending ID is creation order.
type ID uint64

// Nil is the zero value. No valid actor has this ID.
const Nil ID = 0

// Kind separates the player from environment actors for turn scheduling.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindWanderer
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "wanderer"
}

// Actor is one record in the table. Optional parts are nil pointers.
type Actor struct {
	ID      ID
	Kind    Kind
	Name    string
	Move    component.GridMovement
	Turn    component.TurnTaker
	Transit component.Transit
	Render  component.Renderable
	FOV     *component.FieldOfView
	AI      *component.AI
}

// IsPlayer reports whether the actor acts in the player phase.
func (a *Actor) IsPlayer() bool { return a.Kind == KindPlayer }

// CanAct reports whether the actor may be given a move this tick: not in
// transit and with actions left.
func (a *Actor) CanAct() bool {
	return !a.Move.Moving() && !a.Turn.Exhausted()
}

// Place puts the actor on p with no move in flight and its world position
// snapped to the cell.
func (a *Actor) Place(p grid.Pos, tileSize float64) {
	a.Move = component.GridMovement{Current: p}
	a.Transit = component.Transit{World: p.ToWorld(tileSize)}
}
