package engine

// GamePhase is the top-level game state
type GamePhase int

const (
	PhaseWaiting GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseWaiting:
		return "WaitingToStart"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseWaiting:  {PhasePlaying},
	PhasePlaying:  {PhaseGameOver},
	PhaseGameOver: {PhaseWaiting},
}

// CanTransition reports whether from -> to is a legal phase change
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
