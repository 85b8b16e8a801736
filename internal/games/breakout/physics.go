package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/scoring"
)

// StepOutcome reports what one tick did to the world.
type StepOutcome struct {
	Events        []core.Event
	GameOver      bool // No ball left in play
	LevelComplete bool // No brick left; the caller advances the level
}

func (o *StepOutcome) emit(kind core.EventKind, pos core.Vec, value int, detail string) {
	o.Events = append(o.Events, core.Event{Kind: kind, Pos: pos, Value: value, Detail: detail})
}

// Step advances the world by one tick at simulation time now.
//
// Order: paddle, then every ball is moved and checked against walls, the
// paddle and the bottom edge, then every ball that was in play at the start
// of the brick pass hits at most one brick. Balls spawned by a split join
// on the next tick.
func (w *World) Step(in core.InputFrame, sc *scoring.Policy, now time.Duration) StepOutcome {
	var out StepOutcome

	w.stepPaddle(in)
	w.stepBalls(&out)
	w.collideBricks(sc, now, &out)

	switch {
	case len(w.balls) == 0:
		out.GameOver = true
		out.emit(core.EventGameOver, core.Vec{}, w.level, "")
	case w.LevelComplete():
		out.LevelComplete = true
		out.emit(core.EventLevelComplete, core.Vec{}, w.level, "")
	}
	return out
}

// stepPaddle applies input and ticks the width modifier. An absolute pointer
// wins over directional input.
func (w *World) stepPaddle(in core.InputFrame) {
	p := &w.paddle

	switch {
	case in.HasPointer:
		p.X = in.PointerX*w.cfg.Field.Width - p.Width/2
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		p.X -= p.Speed
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		p.X += p.Speed
	}

	if p.EffectTicks > 0 {
		p.EffectTicks--
		if p.EffectTicks == 0 {
			p.Width = p.BaseWidth
			p.Effect = WidthNormal
		}
	}

	w.clampPaddle()
}

func (w *World) stepBalls(out *StepOutcome) {
	field := w.cfg.Field
	kept := w.balls[:0]

	for _, b := range w.balls {
		core.Invariant(b != nil, "nil ball in play")

		b.Pos = b.Pos.Add(b.Vel)
		b.pushTrail(w.cfg.Ball.TrailLength)

		if b.Pos.X-b.Radius < 0 || b.Pos.X+b.Radius > field.Width {
			b.Vel.X = -b.Vel.X
			b.Pos.X = core.ClampF(b.Pos.X, b.Radius, field.Width-b.Radius)
			out.emit(core.EventWallHit, b.Pos, 0, "side")
		}
		if b.Pos.Y-b.Radius < 0 {
			b.Vel.Y = -b.Vel.Y
			b.Pos.Y = b.Radius
			out.emit(core.EventWallHit, b.Pos, 0, "top")
		}

		if b.Vel.Y > 0 && w.paddle.Box().CircleIntersects(b.Pos, b.Radius) {
			w.bounceOffPaddle(b)
			out.emit(core.EventPaddleHit, b.Pos, 0, "")
		}

		if b.Pos.Y+b.Radius > field.Height {
			out.emit(core.EventBallLost, b.Pos, 0, "")
			continue
		}
		kept = append(kept, b)
	}

	// Drop references held by the tail of the reused backing array.
	for i := len(kept); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = kept
}

// bounceOffPaddle sends the ball up at an angle proportional to where it hit:
// straight up at the centre, MaxBounceAngleDeg from vertical at either edge.
func (w *World) bounceOffPaddle(b *Ball) {
	p := w.paddle
	ratio := core.ClampF((b.Pos.X-p.CenterX())/(p.Width/2), -1, 1)
	angle := ratio * w.cfg.Ball.MaxBounceAngleDeg * math.Pi / 180

	b.Vel = core.Vec{X: b.Speed * math.Sin(angle), Y: -b.Speed * math.Cos(angle)}
	b.Pos.Y = p.Y - b.Radius
}

// collideBricks lets each ball destroy at most one brick, scanning the grid
// row-major. The reflected axis is the one with the larger distance from
// the brick centre relative to the brick size.
func (w *World) collideBricks(sc *scoring.Policy, now time.Duration, out *StepOutcome) {
	n := len(w.balls)
	for i := range n {
		b := w.balls[i]
		for j := range w.grid.bricks {
			brick := &w.grid.bricks[j]
			if !brick.Present || !brick.Box.CircleIntersects(b.Pos, b.Radius) {
				continue
			}

			c := brick.Box.Center()
			distX := math.Abs(b.Pos.X - c.X)
			distY := math.Abs(b.Pos.Y - c.Y)
			if distX/brick.Box.W > distY/brick.Box.H {
				b.Vel.X = -b.Vel.X
			} else {
				b.Vel.Y = -b.Vel.Y
			}

			out.Events = append(out.Events, w.hitBrick(brick, b, sc, now)...)
			break
		}
	}
}
