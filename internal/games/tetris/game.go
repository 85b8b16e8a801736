// Package tetris implements falling-block Tetris on the shared scoring
// policy: line clears pay line_points[n] times the current level.
package tetris

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/scoring"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game is one Tetris session.
type Game struct {
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	cfg     config.TetrisConfig

	board *Board
	rng   *core.SimpleRNG
	cur   Piece
	next  Kind

	score *scoring.Policy
	lines int
	level int
	phase core.Phase
	tick  int
	fall  int // Ticks since gravity last moved the piece

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// SetDifficulty overrides the difficulty preset for this instance only,
// so concurrent sessions can each pick their own. Takes effect on Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, g.preset)
	g.ResetWith(runtime, cfg)
}

// ResetWith restarts the game with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.TetrisConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.board = NewBoard(cfg.Board.Rows, cfg.Board.Cols)
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.score = scoring.NewPolicy(cfg.Combo, scoring.Keeper(runtime.Scores, g.ID()))
	g.lines = 0
	g.level = 1
	g.phase = core.PhaseNotStarted
	g.tick = 0
	g.fall = 0

	g.cur = newPiece(g.randomKind(), cfg.Board.Cols)
	g.next = g.randomKind()

	g.minScreenW = cfg.Board.Cols*2 + 2 + sidebarW
	g.minScreenH = cfg.Board.Rows + 2
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

func (g *Game) randomKind() Kind {
	return kinds[g.rng.Intn(len(kinds))]
}

func (g *Game) setPhase(next core.Phase) {
	core.Invariant(g.phase.CanTransition(next), "tetris: %v -> %v", g.phase, next)
	g.phase = next
}

func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * g.runtime.TickDuration()
}

// GravityInterval returns how long the piece hangs before falling one row
// at the current level.
func (g *Game) GravityInterval() time.Duration {
	gc := g.cfg.Gravity
	ms := max(gc.MinMs, gc.StartMs-(g.level-1)*gc.StepMs)
	return time.Duration(ms) * time.Millisecond
}

// gravityTicks converts GravityInterval to whole ticks, at least one.
func (g *Game) gravityTicks() int {
	n := math.Round(float64(g.GravityInterval()) / float64(g.runtime.TickDuration()))
	return max(1, int(n))
}

// Step advances the game by one tick. Input is applied first: moves and
// rotation, then soft or hard drop. Gravity runs only if the piece did not
// lock this tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.phase == core.PhaseGameOver {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case core.PhaseRunning:
			g.setPhase(core.PhasePaused)
		case core.PhasePaused:
			g.setPhase(core.PhaseRunning)
		}
	}

	switch g.phase {
	case core.PhaseNotStarted:
		if in.Has(core.ActionJump) {
			g.setPhase(core.PhaseRunning)
		}
		return core.StepResult{State: g.State()}
	case core.PhaseRunning:
	default:
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var events []core.Event

	locked := g.applyInput(in, &events)
	if !locked {
		g.fall++
		if g.fall >= g.gravityTicks() {
			g.fall = 0
			if !g.tryMove(1, 0) {
				g.lock(&events)
			}
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyInput handles one frame of player input and reports whether the
// piece locked.
func (g *Game) applyInput(in core.InputFrame, events *[]core.Event) bool {
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.tryMove(0, -1)
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.tryMove(0, 1)
	}

	if in.Has(core.ActionUp) && g.Rotate() {
		*events = append(*events, core.Event{Kind: core.EventRotated, Detail: g.cur.Kind.String()})
	}

	switch {
	case in.Has(core.ActionJump):
		for g.tryMove(1, 0) {
		}
		g.lock(events)
		return true
	case in.Has(core.ActionDown):
		if !g.tryMove(1, 0) {
			g.lock(events)
			return true
		}
		g.fall = 0
	}
	return false
}

// tryMove shifts the current piece if the target is free.
func (g *Game) tryMove(dr, dc int) bool {
	p := g.cur.moved(dr, dc)
	if g.board.Collides(p) {
		return false
	}
	g.cur = p
	return true
}

// Rotate turns the current piece clockwise. When the turned piece collides
// it is tried one column left, one column right, then one row up; if every
// position collides the piece stays as it was.
func (g *Game) Rotate() bool {
	r := g.cur.rotated()
	if r.Kind == KindO {
		return false
	}
	for _, kick := range []Point{{0, 0}, {0, -1}, {0, 1}, {-1, 0}} {
		p := r.moved(kick.R, kick.C)
		if !g.board.Collides(p) {
			g.cur = p
			return true
		}
	}
	return false
}

// lock settles the current piece, clears lines, scores them and spawns the
// next piece.
func (g *Game) lock(events *[]core.Event) {
	fits := g.board.Place(g.cur)
	*events = append(*events, core.Event{Kind: core.EventPieceLocked, Detail: g.cur.Kind.String()})
	if !fits {
		g.endGame(events)
		return
	}

	if n := g.board.ClearLines(); n > 0 {
		points := g.linePoints(n)
		g.score.Award(g.now(), points, float64(g.level))
		g.lines += n
		g.level = g.lines/g.cfg.Scoring.LinesPerLevel + 1
		*events = append(*events, core.Event{Kind: core.EventLinesCleared, Value: n})
	}

	g.cur = newPiece(g.next, g.cfg.Board.Cols)
	g.next = g.randomKind()
	g.fall = 0
	if g.board.Collides(g.cur) {
		g.endGame(events)
	}
}

func (g *Game) linePoints(n int) int {
	lp := g.cfg.Scoring.LinePoints
	if n >= len(lp) {
		n = len(lp) - 1
	}
	return lp[n]
}

func (g *Game) endGame(events *[]core.Event) {
	g.setPhase(core.PhaseGameOver)
	*events = append(*events, core.Event{Kind: core.EventGameOver, Value: g.score.Score()})
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int { return g.lines }

// Board returns the settled blocks.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece.
func (g *Game) Current() Piece { return g.cur }

// Next returns the kind of the upcoming piece.
func (g *Game) Next() Kind { return g.next }

// Resize follows a terminal resize. The session keeps running; a screen
// below the minimum only suspends stepping and rendering.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// PersistenceError returns the last high-score storage failure, if any.
func (g *Game) PersistenceError() error {
	return g.score.LastError()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	well := g.wellRect(dst)
	g.renderWell(dst, well)
	g.renderSidebar(dst, well)
	g.renderOverlay(dst, well)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score.Score(),
		HighScore: g.score.HighScore(),
		Level:     g.level,
		Phase:     g.phase,
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.phase == core.PhasePaused,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
