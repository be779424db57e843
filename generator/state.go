package generator

// State is the observable phase of a generator
type State int

const (
	// StateIdle before Start, while deactivated, or after a fault
	StateIdle State = iota
	// StateGenerating extends the road on demand
	StateGenerating
	// StateCrossroadPending waits for the player to enter a branch
	StateCrossroadPending
	// StateClosingOut follows a forced turn away from the border
	StateClosingOut
	// StateCleared holds only the start piece until reactivated
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateCrossroadPending:
		return "crossroad_pending"
	case StateClosingOut:
		return "closing_out"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
