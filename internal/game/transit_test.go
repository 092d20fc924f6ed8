package game

import (
	"testing"

	"mrogue/internal/actor"
	"mrogue/internal/component"
	"mrogue/internal/grid"
)

func movingActor(tbl *actor.Table, from, to grid.Pos) *actor.Actor {
	a := actor.Actor{Kind: actor.KindWanderer, Turn: component.NewTurnTaker(1)}
	a.Place(from, 32)
	a.Move.Target = &to
	return tbl.Get(tbl.Spawn(a))
}

func TestAdvanceTransitInterpolates(t *testing.T) {
	tbl := actor.NewTable()
	a := movingActor(tbl, grid.Pos{X: 0, Y: 0}, grid.Pos{X: 0, Y: 1})

	advanceTransit(tbl, 4, 32)
	if a.Transit.World != (grid.Vec2{X: 0, Y: 8}) {
		t.Fatalf("after 1/4: world = %v, want (0,8)", a.Transit.World)
	}
	advanceTransit(tbl, 4, 32)
	advanceTransit(tbl, 4, 32)
	if a.Move.Target == nil {
		t.Fatal("move landed after 3 of 4 ticks")
	}
	advanceTransit(tbl, 4, 32)
	if a.Move.Target != nil || a.Move.Current != (grid.Pos{X: 0, Y: 1}) {
		t.Fatalf("move should have landed: %+v", a.Move)
	}
	if a.Transit.World != (grid.Vec2{X: 0, Y: 32}) || a.Transit.Elapsed != 0 {
		t.Fatalf("transit not reset: %+v", a.Transit)
	}
	if !a.CanAct() {
		t.Fatal("landed actor with actions left should be able to act")
	}
}

func TestAdvanceTransitZeroTicksLandsAtOnce(t *testing.T) {
	tbl := actor.NewTable()
	a := movingActor(tbl, grid.Pos{X: 3, Y: 3}, grid.Pos{X: 4, Y: 3})
	advanceTransit(tbl, 0, 32)
	if a.Move.Target != nil || a.Move.Current != (grid.Pos{X: 4, Y: 3}) {
		t.Fatalf("zero transit should land immediately: %+v", a.Move)
	}
}

func TestAdvanceTransitIgnoresResting(t *testing.T) {
	tbl := actor.NewTable()
	a := actor.Actor{}
	a.Place(grid.Pos{X: 2, Y: 2}, 32)
	id := tbl.Spawn(a)
	advanceTransit(tbl, 4, 32)
	if got := tbl.Get(id).Transit; got.Elapsed != 0 || got.World != (grid.Vec2{X: 64, Y: 64}) {
		t.Fatalf("resting actor changed: %+v", got)
	}
}
