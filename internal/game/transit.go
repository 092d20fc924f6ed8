package game

import (
	"mrogue/internal/actor"
	"mrogue/internal/grid"
)

// advanceTransit moves every in-flight actor one tick along its move. After
// ticks steps the move lands: Current becomes Target and Target is cleared,
// which makes the actor eligible for a new move. ticks <= 0 lands moves on
// the first call.
func advanceTransit(t *actor.Table, ticks int, tileSize float64) {
	t.Each(func(a *actor.Actor) {
		if a.Move.Target == nil {
			return
		}
		a.Transit.Elapsed++
		if a.Transit.Elapsed >= ticks {
			a.Place(*a.Move.Target, tileSize)
			return
		}
		from := a.Move.Current.ToWorld(tileSize)
		to := a.Move.Target.ToWorld(tileSize)
		a.Transit.World = grid.Lerp(from, to, float64(a.Transit.Elapsed)/float64(ticks))
	})
}
