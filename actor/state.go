package actor

// ActionState is the actor's behavioural mode. The zero value is StateIdle.
type ActionState uint8

const (
	StateIdle ActionState = iota
	StateMelee
	StateLoadingRanged
)

func (s ActionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMelee:
		return "melee"
	case StateLoadingRanged:
		return "loading-ranged"
	default:
		return "unknown"
	}
}

// Loading reports whether the ranged reload latch is set.
func (s ActionState) Loading() bool {
	return s == StateLoadingRanged
}

// Next is the transition function of the action state machine for one
// frame of input. The loading latch survives every input; only Ready
// leaves it.
func Next(cur ActionState, in Input) ActionState {
	switch {
	case cur == StateLoadingRanged:
		return StateLoadingRanged
	case in.Secondary:
		return StateLoadingRanged
	case in.Primary:
		return StateMelee
	default:
		return StateIdle
	}
}

// Ready is the transition taken on the external "ready to fire" signal.
func Ready(cur ActionState) ActionState {
	if cur == StateLoadingRanged {
		return StateIdle
	}
	return cur
}
