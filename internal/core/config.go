package core

import "time"

// ScoreKeeper persists the per-game high-water mark.
// Implementations may fail; games keep playing with the in-memory value.
type ScoreKeeper interface {
	LoadHighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Scores is optional. A nil keeper means the high score starts at zero
	// and is never persisted.
	Scores ScoreKeeper
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Phase is a session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseLevelComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level-complete"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CanTransition reports whether a session may move from p to next.
// Restart is not a transition: it replaces the session wholesale.
func (p Phase) CanTransition(next Phase) bool {
	switch p {
	case PhaseNotStarted:
		return next == PhaseRunning
	case PhaseRunning:
		return next == PhasePaused || next == PhaseGameOver || next == PhaseLevelComplete
	case PhasePaused:
		return next == PhaseRunning
	case PhaseLevelComplete:
		return next == PhaseRunning
	default:
		return false
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	HighScore int   // Best score known to this session
	Level     int   // Current level (1-based)
	Phase     Phase // Lifecycle state
	GameOver  bool  // Whether the game has ended
	Paused    bool  // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
