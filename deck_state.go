package podium

import "fmt"

// DeckState is a snapshot of the player state machine: Idle(Index), or
// Transitioning(From, Index) while a change is animating.
type DeckState struct {
	Index         int
	From          int
	Transitioning bool
}

// String formats the state as Idle(i) or Transitioning(from→to).
func (s DeckState) String() string {
	if s.Transitioning {
		return fmt.Sprintf("Transitioning(%d→%d)", s.From, s.Index)
	}
	return fmt.Sprintf("Idle(%d)", s.Index)
}
