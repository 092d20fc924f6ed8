package system

import (
	"mrogue/internal/actor"
	"mrogue/internal/logger"

	"github.com/sirupsen/logrus"
)

// Phase says whose turn it is.
type Phase uint8

const (
	PhasePlayer Phase = iota
	PhaseEnvironment
)

func (p Phase) String() string {
	if p == PhaseEnvironment {
		return "environment"
	}
	return "player"
}

// Scheduler alternates the player and environment phases. Each Advance makes
// at most one transition.
type Scheduler struct {
	phase Phase
	round int
}

// NewScheduler starts in the player phase.
func NewScheduler() *Scheduler {
	return &Scheduler{phase: PhasePlayer}
}

func (s *Scheduler) Phase() Phase { return s.phase }

// Round counts completed player+environment cycles.
func (s *Scheduler) Round() int { return s.round }

// Advance evaluates the transition rule for the current phase and returns
// the phase in effect afterwards.
//
// Player ends when the player has no actions left (its budget is refilled)
// or there is no player. Environment ends when every non-player actor has no
// actions left, which holds vacuously when there are none; all of them are
// refilled.
func (s *Scheduler) Advance(t *actor.Table) Phase {
	switch s.phase {
	case PhasePlayer:
		p := t.Player()
		if p == nil {
			s.enter(PhaseEnvironment)
			break
		}
		if p.Turn.Exhausted() {
			p.Turn.Reset()
			s.enter(PhaseEnvironment)
		}
	case PhaseEnvironment:
		pending := t.Query(func(a *actor.Actor) bool {
			return !a.IsPlayer() && !a.Turn.Exhausted()
		})
		if len(pending) > 0 {
			break
		}
		t.Each(func(a *actor.Actor) {
			if !a.IsPlayer() {
				a.Turn.Reset()
			}
		})
		s.round++
		s.enter(PhasePlayer)
	}
	return s.phase
}

func (s *Scheduler) enter(p Phase) {
	s.phase = p
	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"phase":     p.String(),
		"round":     s.round,
	}).Debug("phase transition")
}
