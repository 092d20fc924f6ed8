package system

import (
	"math"
	"math/rand"

	"mrogue/internal/actor"
	"mrogue/internal/component"
	"mrogue/internal/grid"
)

// Decision is what a Decider sees when choosing a step.
type Decision struct {
	Oracle Walkability
	Player *actor.Actor // nil when there is no player
	Rng    *rand.Rand
}

// Decider picks the direction an environment actor tries this tick.
// Returning grid.DirNone still spends the action.
type Decider func(a *actor.Actor, d Decision) grid.Direction

// DeciderFor returns the decision function for a behaviour.
func DeciderFor(b component.AIBehavior) Decider {
	switch b {
	case component.BehaviorChase:
		return Chase
	case component.BehaviorStationary:
		return Stationary
	}
	return Wander
}

// ProcessAI asks every environment actor that can act for its step this tick
// and returns the intents in creation order.
func ProcessAI(t *actor.Table, oracle Walkability, rng *rand.Rand) []Intent {
	d := Decision{Oracle: oracle, Player: t.Player(), Rng: rng}
	var intents []Intent
	t.Each(func(a *actor.Actor) {
		if a.IsPlayer() || !a.CanAct() {
			return
		}
		behavior := component.BehaviorWander
		if a.AI != nil {
			behavior = a.AI.Behavior
		}
		intents = append(intents, Intent{Actor: a.ID, Dir: DeciderFor(behavior)(a, d)})
	})
	return intents
}

// Wander shuffles the four directions and takes the first walkable one.
func Wander(a *actor.Actor, d Decision) grid.Direction {
	dirs := grid.Cardinals
	d.Rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, dir := range dirs {
		if d.Oracle.IsWalkable(a.Move.Current.Add(dir)) {
			return dir
		}
	}
	return grid.DirNone
}

// Chase steps along a shortest path to the player once the player is within
// sight range, and wanders otherwise. Next to the player it holds still.
func Chase(a *actor.Actor, d Decision) grid.Direction {
	if d.Player == nil || a.AI == nil {
		return Wander(a, d)
	}
	from, to := a.Move.Current, d.Player.Move.Current
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	if math.Sqrt(dx*dx+dy*dy) > float64(a.AI.SightRange) {
		return Wander(a, d)
	}
	if from.Manhattan(to) <= 1 {
		return grid.DirNone
	}
	path, ok := FindPath(d.Oracle, from, to)
	if !ok || len(path) < 2 {
		return Wander(a, d)
	}
	return directionTo(from, path[1])
}

// Stationary never moves.
func Stationary(*actor.Actor, Decision) grid.Direction { return grid.DirNone }

func directionTo(from, to grid.Pos) grid.Direction {
	for _, d := range grid.Cardinals {
		if from.Add(d) == to {
			return d
		}
	}
	return grid.DirNone
}
