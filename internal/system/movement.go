package system

import (
	"slices"

	"mrogue/internal/actor"
	"mrogue/internal/grid"
	"mrogue/internal/logger"

	"github.com/sirupsen/logrus"
)

// Intent is one actor's requested step for this tick.
type Intent struct {
	Actor actor.ID
	Dir   grid.Direction
}

// MoveResult describes the outcome of one intent.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // target set
	MoveBlocked                    // wall or unloaded cell
	MoveOccupied                   // another actor is on or moving into the cell
	MoveNoIntent                   // no direction given
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOccupied:
		return "occupied"
	}
	return "no-intent"
}

// MoveOutcome records what happened to one intent. To is the candidate cell,
// equal to From when no direction was given.
type MoveOutcome struct {
	Actor    actor.ID
	From, To grid.Pos
	Result   MoveResult
}

// ResolveMoves turns intents into move targets.
//
// Intents are processed in ascending actor ID order whatever their order in
// the slice. Intents for actors that are gone, already moving or out of
// actions are dropped without charge. Every processed intent costs one action,
// accepted or not. A candidate cell is rejected if it is not walkable or if
// any other actor is on it or moving into it, counting targets accepted
// earlier in the same call.
func ResolveMoves(t *actor.Table, oracle Walkability, intents []Intent) []MoveOutcome {
	type claim struct {
		id      actor.ID
		current grid.Pos
		target  *grid.Pos
	}
	claims := make([]claim, 0, t.Len())
	slot := make(map[actor.ID]int, t.Len())
	t.Each(func(a *actor.Actor) {
		c := claim{id: a.ID, current: a.Move.Current}
		if a.Move.Target != nil {
			tgt := *a.Move.Target
			c.target = &tgt
		}
		slot[a.ID] = len(claims)
		claims = append(claims, c)
	})
	occupied := func(self actor.ID, p grid.Pos) bool {
		for _, c := range claims {
			if c.id == self {
				continue
			}
			if c.current == p || (c.target != nil && *c.target == p) {
				return true
			}
		}
		return false
	}

	ordered := slices.Clone(intents)
	slices.SortStableFunc(ordered, func(a, b Intent) int {
		switch {
		case a.Actor < b.Actor:
			return -1
		case a.Actor > b.Actor:
			return 1
		}
		return 0
	})

	outcomes := make([]MoveOutcome, 0, len(ordered))
	for _, in := range ordered {
		a := t.Get(in.Actor)
		if a == nil || !a.CanAct() {
			continue
		}
		out := MoveOutcome{Actor: a.ID, From: a.Move.Current, To: a.Move.Current}
		switch {
		case in.Dir == grid.DirNone:
			out.Result = MoveNoIntent
		default:
			out.To = a.Move.Current.Add(in.Dir)
			switch {
			case !oracle.IsWalkable(out.To):
				out.Result = MoveBlocked
			case occupied(a.ID, out.To):
				out.Result = MoveOccupied
			default:
				out.Result = MoveOK
				target := out.To
				claims[slot[a.ID]].target = &target
				a.Move.Target = &target
			}
		}
		a.Turn.Spend()
		if out.Result == MoveBlocked || out.Result == MoveOccupied {
			logger.Log.WithFields(logrus.Fields{
				"component": "movement",
				"actor":     a.ID,
				"from":      out.From,
				"to":        out.To,
				"result":    out.Result.String(),
			}).Debug("move rejected")
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
