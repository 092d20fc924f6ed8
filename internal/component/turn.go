package component

// TurnTaker is an actor's action budget. ActionsRemaining never exceeds
// ActionsPerTurn.
type TurnTaker struct {
	ActionsPerTurn   uint32
	ActionsRemaining uint32
}

// NewTurnTaker returns a full budget of n actions.
func NewTurnTaker(n uint32) TurnTaker {
	return TurnTaker{ActionsPerTurn: n, ActionsRemaining: n}
}

// Spend consumes one action if any remain.
func (t *TurnTaker) Spend() {
	if t.ActionsRemaining > 0 {
		t.ActionsRemaining--
	}
}

// Reset refills the budget.
func (t *TurnTaker) Reset() { t.ActionsRemaining = t.ActionsPerTurn }

// Exhausted reports whether no actions remain.
func (t TurnTaker) Exhausted() bool { return t.ActionsRemaining == 0 }
