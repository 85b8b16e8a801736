package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// viewport maps field units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(field config.FieldConfig, dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / field.Width,
		sy:  float64(dst.Height()-hudRows) / field.Height,
		top: hudRows,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

// span converts a box to an inclusive cell range, at least one cell wide.
func (v viewport) span(b core.Box) core.Rect {
	x0, y0 := v.cell(core.Vec{X: b.X, Y: b.Y})
	x1, y1 := v.cell(core.Vec{X: b.Right(), Y: b.Bottom()})
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

var brickColors = map[BrickType]core.Color{
	BrickNormal:  core.ColorCyan,
	BrickSpeedUp: core.ColorYellow,
	BrickShrink:  core.ColorBlue,
	BrickSplit:   core.ColorRed,
	BrickExtend:  core.ColorGreen,
}

var rainbow = []core.Color{
	core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow,
	core.ColorBrightGreen, core.ColorBrightCyan, core.ColorBrightBlue, core.ColorBrightMagenta,
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Score()))

	center := fmt.Sprintf("Level %d", g.world.Level())
	if c := g.score.Combo(); c > 1 {
		center += fmt.Sprintf("  Combo x%.1f", c)
	}
	dst.DrawTextCentered(0, center)

	hi := fmt.Sprintf("Hi: %d", g.score.HighScore())
	dst.DrawText(dst.Width()-len(hi)-1, 0, hi)

	p := g.world.Paddle()
	if p.Effect != WidthNormal {
		secs := (p.EffectTicks + g.runtime.TickRate - 1) / core.Max(g.runtime.TickRate, 1)
		dst.DrawTextColor(1, 1, fmt.Sprintf("%s %ds", p.Effect, secs), core.ColorBrightWhite)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	for _, b := range g.world.grid.bricks {
		if !b.Present {
			continue
		}
		color := brickColors[b.Type]
		if b.Type == BrickAreaClear {
			color = rainbow[(g.tick/6+b.Col)%len(rainbow)]
		}
		r := v.span(b.Box)
		// Leave a one-cell gutter between neighbours when there is room.
		if r.W > 2 {
			r.W--
		}
		dst.DrawRectColor(r, BrickChar, color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	p := g.world.Paddle()
	r := v.span(p.Box())
	color := core.ColorBrightBlue
	switch p.Effect {
	case WidthShrunk:
		color = core.ColorBlue
	case WidthExtended:
		color = core.ColorBrightGreen
	}
	dst.DrawRectColor(core.NewRect(r.X, r.Y, r.W, 1), PaddleChar, color)
}

func (g *Game) renderBalls(dst *core.Screen, v viewport) {
	for _, b := range g.world.balls {
		for _, t := range b.Trail {
			x, y := v.cell(t)
			if dst.Get(x, y) == ' ' {
				dst.SetColor(x, y, TrailChar, core.ColorGray)
			}
		}
	}
	for _, b := range g.world.balls {
		x, y := v.cell(b.Pos)
		dst.SetColor(x, y, BallChar, core.ColorBrightWhite)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to start")

	case core.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case core.PhaseLevelComplete:
		drawCenteredBox(dst, fmt.Sprintf("LEVEL %d", g.world.Level()), "Get ready...")

	case core.PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score())
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
