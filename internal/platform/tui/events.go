package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/core"
)

// LogSink traces game events at debug level and keeps a per-kind tally
// that is logged once when a game ends.
type LogSink struct {
	logger *log.Logger
	gameID string
	tally  map[core.EventKind]int
}

// NewLogSink creates a sink for one game.
func NewLogSink(logger *log.Logger, gameID string) *LogSink {
	return &LogSink{
		logger: logger,
		gameID: gameID,
		tally:  make(map[core.EventKind]int),
	}
}

// Notify implements core.EventSink. It never blocks.
func (s *LogSink) Notify(e core.Event) {
	s.tally[e.Kind]++
	s.logger.Debug("event",
		"game", s.gameID,
		"kind", e.Kind,
		"value", e.Value,
		"detail", e.Detail,
	)

	if e.Kind == core.EventGameOver {
		s.logger.Info("game over",
			"game", s.gameID,
			"value", e.Value,
			"bricks", s.tally[core.EventBrickDestroyed],
			"lines", s.tally[core.EventLinesCleared],
			"balls_lost", s.tally[core.EventBallLost],
		)
		clear(s.tally)
	}
}

// Count returns how many events of a kind were seen since the last game over.
func (s *LogSink) Count(kind core.EventKind) int {
	return s.tally[kind]
}
