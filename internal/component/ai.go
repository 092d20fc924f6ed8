package component

// AIBehavior selects the decision function an environment actor uses.
type AIBehavior uint8

const (
	BehaviorWander     AIBehavior = iota // random legal step
	BehaviorChase                        // path toward the player when in sight
	BehaviorStationary                   // never moves, still spends its action
)

// ParseBehavior maps a config string to a behaviour; unknown names wander.
func ParseBehavior(s string) AIBehavior {
	switch s {
	case "chase":
		return BehaviorChase
	case "stationary":
		return BehaviorStationary
	}
	return BehaviorWander
}

func (b AIBehavior) String() string {
	switch b {
	case BehaviorChase:
		return "chase"
	case BehaviorStationary:
		return "stationary"
	}
	return "wander"
}

type AI struct {
	Behavior   AIBehavior
	SightRange int
}
