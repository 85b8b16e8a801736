package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// WidthEffect is the active paddle width modifier.
type WidthEffect int

const (
	WidthNormal WidthEffect = iota
	WidthShrunk
	WidthExtended
)

func (e WidthEffect) String() string {
	switch e {
	case WidthShrunk:
		return "shrink"
	case WidthExtended:
		return "extend"
	default:
		return "normal"
	}
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	BaseWidth     float64
	Speed         float64 // Units per tick for directional input
	Effect        WidthEffect
	EffectTicks   int // Ticks until Width reverts to BaseWidth
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal centre of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Ball is one ball in play. Vel always has length Speed.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Speed  float64
	Radius float64
	Trail  []core.Vec // Oldest first
}

func (b *Ball) pushTrail(limit int) {
	if limit <= 0 {
		return
	}
	if len(b.Trail) >= limit {
		copy(b.Trail, b.Trail[1:])
		b.Trail = b.Trail[:limit-1]
	}
	b.Trail = append(b.Trail, b.Pos)
}

func (b Ball) clone() Ball {
	b.Trail = append([]core.Vec(nil), b.Trail...)
	return b
}

// World holds everything simulated in one frame: paddle, balls and the brick
// grid of the current level. It owns the RNG so a seed fully determines the
// generated levels.
type World struct {
	cfg   config.BreakoutConfig
	rng   *core.SimpleRNG
	diff  *config.DifficultyManager
	level int

	paddle Paddle
	balls  []*Ball
	grid   *Grid
}

// NewWorld creates a world at level 1.
func NewWorld(cfg config.BreakoutConfig, seed int64) *World {
	w := &World{
		cfg:  cfg,
		rng:  core.NewSimpleRNG(seed),
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
	w.Reset()
	return w
}

// Reset returns the world to level 1 with a centred paddle and one ball at
// the launch point. The RNG keeps running, so a reset after play produces a
// new layout.
func (w *World) Reset() {
	w.level = 1
	w.grid = generateGrid(w.cfg, w.level, w.rng)

	pc := w.cfg.Paddle
	w.paddle = Paddle{
		X:         (w.cfg.Field.Width - pc.Width) / 2,
		Y:         w.cfg.Field.Height - pc.BottomOffset,
		Width:     pc.Width,
		Height:    pc.Height,
		BaseWidth: pc.Width,
		Speed:     pc.Speed,
	}

	speed := w.launchSpeed()
	w.balls = []*Ball{{
		Pos:    w.launchPoint(),
		Vel:    w.launchDir().Scale(speed),
		Speed:  speed,
		Radius: w.cfg.Ball.Radius,
	}}
	w.clampPaddle()
}

// AdvanceLevel moves to the next level: a fresh grid and every ball sent
// back to the launch point along the launch direction at its own speed.
// Scoring state lives outside the world and is untouched.
func (w *World) AdvanceLevel() {
	w.level++
	w.grid = generateGrid(w.cfg, w.level, w.rng)

	minSpeed := w.launchSpeed()
	for _, b := range w.balls {
		b.Speed = math.Min(math.Max(b.Speed, minSpeed), w.cfg.Ball.MaxSpeed)
		b.Pos = w.launchPoint()
		b.Vel = w.launchDir().Scale(b.Speed)
		b.Trail = b.Trail[:0]
	}
}

func (w *World) launchSpeed() float64 {
	s := w.diff.Speed(w.cfg.Ball.Speed, w.level, 0)
	return math.Min(s, w.cfg.Ball.MaxSpeed)
}

func (w *World) launchPoint() core.Vec {
	return core.Vec{
		X: w.cfg.Field.Width / 2,
		Y: w.paddle.Y - w.cfg.Ball.Radius - 2,
	}
}

func (w *World) launchDir() core.Vec {
	a := w.cfg.Ball.LaunchAngleDeg * math.Pi / 180
	return core.Vec{X: math.Sin(a), Y: -math.Cos(a)}
}

// Level returns the current 1-based level.
func (w *World) Level() int { return w.level }

// Paddle returns a copy of the paddle.
func (w *World) Paddle() Paddle { return w.paddle }

// Balls returns copies of the balls in play.
func (w *World) Balls() []Ball {
	out := make([]Ball, len(w.balls))
	for i, b := range w.balls {
		out[i] = b.clone()
	}
	return out
}

// BallCount returns the number of balls in play.
func (w *World) BallCount() int { return len(w.balls) }

// Bricks returns a copy of the grid in row-major order.
func (w *World) Bricks() []Brick {
	return append([]Brick(nil), w.grid.bricks...)
}

// GridSize returns the rows and columns of the current grid.
func (w *World) GridSize() (rows, cols int) {
	return w.grid.rows, w.grid.cols
}

// PresentBricks counts bricks not yet destroyed.
func (w *World) PresentBricks() int {
	return w.grid.present()
}

// LevelComplete reports whether every brick of the level is gone.
func (w *World) LevelComplete() bool {
	return w.grid.present() == 0
}

// clampPaddle keeps the paddle inside the field and its width in range.
func (w *World) clampPaddle() {
	p := &w.paddle
	p.Width = core.ClampF(p.Width, w.cfg.Paddle.MinWidth, w.cfg.Paddle.MaxWidth)
	p.X = core.ClampF(p.X, 0, w.cfg.Field.Width-p.Width)
}
