// Package scoring implements the time-windowed combo multiplier shared by
// all games, together with the session high-score bookkeeping.
//
// The combo is kept in thousandths so repeated increments stay exact and two
// runs fed the same (event, timestamp) sequence always agree.
package scoring

import (
	"math"
	"time"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

const unit = 1000 // 1.0x in combo thousandths

// HighScores is the persistence side of the policy. Load is called once when
// the policy is created, Save at most once per scoring event.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}

// Keeper binds a core.ScoreKeeper to one game ID. A nil keeper yields a nil
// HighScores so the policy runs purely in memory.
func Keeper(k core.ScoreKeeper, gameID string) HighScores {
	if k == nil {
		return nil
	}
	return boundKeeper{k: k, id: gameID}
}

type boundKeeper struct {
	k  core.ScoreKeeper
	id string
}

func (b boundKeeper) Load() (int, error)   { return b.k.LoadHighScore(b.id) }
func (b boundKeeper) Save(score int) error { return b.k.SaveHighScore(b.id, score) }

// Policy turns scoring events into points.
//
// Within the window each event raises the combo by Step up to Max; an event
// after a gap of at least the window (or the first event) resets it to 1.0.
// Paddle hits and misses never touch the combo.
type Policy struct {
	window time.Duration
	step   int // thousandths
	max    int // thousandths

	score   int
	combo   int
	last    time.Duration
	hasLast bool

	high    int
	store   HighScores
	saveErr error
}

// NewPolicy creates a policy and loads the persisted high score. A load
// failure leaves the high score at zero; it is reported by LastError.
func NewPolicy(cfg config.ComboConfig, hs HighScores) *Policy {
	p := &Policy{
		window: time.Duration(cfg.WindowMs) * time.Millisecond,
		step:   int(math.Round(cfg.Step * unit)),
		max:    int(math.Round(cfg.Max * unit)),
		combo:  unit,
		store:  hs,
	}
	if p.max < unit {
		p.max = unit
	}
	if hs != nil {
		high, err := hs.Load()
		if err != nil {
			p.saveErr = err
		} else if high > 0 {
			p.high = high
		}
	}
	return p
}

// Award scores one event at simulation time now and returns the points
// added: floor(base * combo * multiplier).
func (p *Policy) Award(now time.Duration, base int, multiplier float64) int {
	if p.hasLast && p.window > 0 && now-p.last < p.window {
		p.combo = min(p.combo+p.step, p.max)
	} else {
		p.combo = unit
	}
	p.last = now
	p.hasLast = true

	mult := int64(math.Round(multiplier * unit))
	points := int(int64(base) * int64(p.combo) * mult / (unit * unit))
	p.score += points

	if p.score > p.high {
		p.high = p.score
		if p.store != nil {
			if err := p.store.Save(p.high); err != nil {
				p.saveErr = err
			}
		}
	}
	return points
}

// Score returns the cumulative session score.
func (p *Policy) Score() int { return p.score }

// Combo returns the current multiplier.
func (p *Policy) Combo() float64 { return float64(p.combo) / unit }

// HighScore returns the best score seen by this session or loaded at start.
func (p *Policy) HighScore() int { return p.high }

// LastError returns and clears the most recent persistence failure.
// The in-memory high score is unaffected by such failures.
func (p *Policy) LastError() error {
	err := p.saveErr
	p.saveErr = nil
	return err
}

// Snapshot is the comparable scoring state.
type Snapshot struct {
	Score     int
	ComboMill int
	LastMs    int64
	HighScore int
}

// Snapshot captures the scoring state for determinism checks.
func (p *Policy) Snapshot() Snapshot {
	return Snapshot{
		Score:     p.score,
		ComboMill: p.combo,
		LastMs:    p.last.Milliseconds(),
		HighScore: p.high,
	}
}
