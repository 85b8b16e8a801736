// Package breakout implements a Breakout variant with special bricks:
// speed-up, shrink, extend, split and area clear, scored through a
// time-windowed combo.
package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/scoring"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	TrailChar  = '·'
	BrickChar  = '█'
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

// Game is one Breakout session: the world, its score and the lifecycle
// around them.
type Game struct {
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	cfg     config.BreakoutConfig

	world  *World
	score  *scoring.Policy
	phase  core.Phase
	tick   int // Simulated ticks; frozen while not running
	banner int // Ticks left on the level banner

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
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
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, g.preset)
	g.ResetWith(runtime, cfg)
}

// ResetWith restarts the game with an explicit configuration.
// Restart replaces the whole session; nothing carries over except the
// persisted high score.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.world = NewWorld(cfg, runtime.Seed)
	g.score = scoring.NewPolicy(cfg.Combo, scoring.Keeper(runtime.Scores, g.ID()))
	g.phase = core.PhaseNotStarted
	g.tick = 0
	g.banner = 0

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

func (g *Game) setPhase(next core.Phase) {
	core.Invariant(g.phase.CanTransition(next), "breakout: %v -> %v", g.phase, next)
	g.phase = next
}

// now is the simulation clock used for combo timing.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * g.runtime.TickDuration()
}

// Step advances the game by one tick.
//
// While paused the world is not stepped and the simulation clock does not
// advance, so a pause never counts against the combo window and no
// backlog of ticks is replayed on resume.
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

	case core.PhaseLevelComplete:
		g.banner--
		if g.banner <= 0 {
			g.setPhase(core.PhaseRunning)
		}
		return core.StepResult{State: g.State()}

	case core.PhaseRunning:
	default:
		return core.StepResult{State: g.State()}
	}

	g.tick++
	out := g.world.Step(in, g.score, g.now())

	switch {
	case out.GameOver:
		g.setPhase(core.PhaseGameOver)
	case out.LevelComplete:
		g.world.AdvanceLevel()
		g.setPhase(core.PhaseLevelComplete)
		g.banner = g.cfg.Gameplay.LevelBannerTicks
		if g.banner <= 0 {
			g.setPhase(core.PhaseRunning)
		}
	}

	return core.StepResult{State: g.State(), Events: out.Events}
}

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

	v := newViewport(g.cfg.Field, dst)
	g.renderHUD(dst)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBalls(dst, v)
	g.renderOverlay(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score.Score(),
		HighScore: g.score.HighScore(),
		Level:     g.world.Level(),
		Phase:     g.phase,
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.phase == core.PhasePaused,
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
