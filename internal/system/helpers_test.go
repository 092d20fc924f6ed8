package system

import (
	"mrogue/internal/actor"
	"mrogue/internal/component"
	"mrogue/internal/grid"
)

// open is unbounded floor.
var open = WalkFunc(func(grid.Pos) bool { return true })

// walls is floor everywhere except the listed cells.
func walls(cells ...grid.Pos) Walkability {
	blocked := make(map[grid.Pos]bool, len(cells))
	for _, c := range cells {
		blocked[c] = true
	}
	return WalkFunc(func(p grid.Pos) bool { return !blocked[p] })
}

func pos(x, y int32) grid.Pos { return grid.Pos{X: x, Y: y} }

func spawnAt(t *actor.Table, kind actor.Kind, p grid.Pos, actions uint32) actor.ID {
	return t.Spawn(actor.Actor{
		Kind: kind,
		Move: component.GridMovement{Current: p},
		Turn: component.NewTurnTaker(actions),
	})
}
