package breakout

import (
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/scoring"
)

// hitBrick destroys a brick struck by ball, scores it and applies its effect.
func (w *World) hitBrick(b *Brick, ball *Ball, sc *scoring.Policy, now time.Duration) []core.Event {
	events := []core.Event{w.destroyAndScore(b, sc, now)}
	return append(events, w.ApplyEffect(b, ball, sc, now)...)
}

func (w *World) destroyAndScore(b *Brick, sc *scoring.Policy, now time.Duration) core.Event {
	w.grid.destroy(b)
	points := sc.Award(now, w.cfg.Combo.BasePoints, w.cfg.Combo.Multiplier(b.Type.String()))
	return core.Event{
		Kind:   core.EventBrickDestroyed,
		Pos:    b.Box.Center(),
		Value:  points,
		Detail: b.Type.String(),
	}
}

// ApplyEffect runs the secondary effect of a destroyed brick. Bricks taken
// out by an area clear are scored but their own effects never run, so an
// area clear cannot chain.
func (w *World) ApplyEffect(b *Brick, ball *Ball, sc *scoring.Policy, now time.Duration) []core.Event {
	ec := w.cfg.Effects
	effect := core.Event{Kind: core.EventEffect, Pos: b.Box.Center(), Detail: b.Type.String()}

	switch b.Type {
	case BrickSpeedUp:
		ball.Speed = min(ball.Speed*ec.SpeedFactor, w.cfg.Ball.MaxSpeed)
		ball.Vel = ball.Vel.WithLen(ball.Speed)

	case BrickShrink:
		w.setWidthEffect(WidthShrunk, ec.ShrinkFactor)

	case BrickExtend:
		w.setWidthEffect(WidthExtended, ec.ExtendFactor)

	case BrickSplit:
		if len(w.balls) >= ec.MaxBalls {
			return nil
		}
		w.balls = append(w.balls, &Ball{
			Pos:    ball.Pos,
			Vel:    core.Vec{X: -ball.Vel.X, Y: ball.Vel.Y},
			Speed:  ball.Speed,
			Radius: ball.Radius,
		})

	case BrickAreaClear:
		events := []core.Event{effect}
		for _, n := range w.grid.neighbours(b, ec.AreaClear) {
			events = append(events, w.destroyAndScore(n, sc, now))
		}
		return events

	default:
		return nil
	}
	return []core.Event{effect}
}

// setWidthEffect replaces any running width modifier and restarts its timer.
func (w *World) setWidthEffect(e WidthEffect, factor float64) {
	p := &w.paddle
	p.Effect = e
	p.Width = p.BaseWidth * factor
	p.EffectTicks = w.cfg.Effects.DurationTicks
	w.clampPaddle()
}
