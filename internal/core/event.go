package core

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventWallHit EventKind = iota + 1
	EventPaddleHit
	EventBrickDestroyed
	EventBallLost
	EventEffect
	EventLevelComplete
	EventGameOver
	EventPieceLocked
	EventLinesCleared
	EventRotated
)

func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall-hit"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickDestroyed:
		return "brick-destroyed"
	case EventBallLost:
		return "ball-lost"
	case EventEffect:
		return "effect"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventPieceLocked:
		return "piece-locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventRotated:
		return "rotated"
	default:
		return "unknown"
	}
}

// Event is a discrete signal emitted by Step for audio and visual feedback.
// Consumers must not block the simulation.
type Event struct {
	Kind   EventKind
	Pos    Vec    // Where it happened, in field units
	Value  int    // Points awarded, lines cleared or new level
	Detail string // Brick or effect type, piece kind
}

// EventSink receives events from the platform loop.
type EventSink interface {
	Notify(Event)
}

// Invariant panics with a formatted message when cond is false.
// It guards states that only a programming error can produce.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
