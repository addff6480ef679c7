package loop

// GameState represents the current game phase.
type GameState int

const (
	GameStatePlaying  GameState = iota // Active gameplay
	GameStateGameOver                  // Ship destroyed, waiting for restart
	GameStateVictory                   // Arena cleared, waiting for restart
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game over"
	case GameStateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
