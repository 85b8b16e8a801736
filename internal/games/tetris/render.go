package tetris

import (
	"fmt"

	"github.com/vovakirdan/brickfall/internal/core"
)

// BlockChar fills one board cell; each cell is two characters wide so the
// blocks look square in a terminal.
const BlockChar = '█'

const (
	cellW    = 2
	sidebarW = 16
)

// wellRect returns the bordered well, centred with the sidebar to its right.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	w := g.board.Cols()*cellW + 2
	h := g.board.Rows() + 2
	x := (dst.Width() - w - sidebarW) / 2
	y := (dst.Height() - h) / 2
	return core.NewRect(x, y, w, h)
}

func (g *Game) drawBlock(dst *core.Screen, well core.Rect, r, c int, k Kind) {
	if r < 0 {
		return
	}
	x := well.X + 1 + c*cellW
	y := well.Y + 1 + r
	for i := range cellW {
		dst.SetColor(x+i, y, BlockChar, k.Color())
	}
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well)

	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			if k := g.board.At(r, c); k != KindNone {
				g.drawBlock(dst, well, r, c, k)
			}
		}
	}

	if g.phase == core.PhaseGameOver {
		return
	}
	for _, pt := range g.cur.Blocks() {
		g.drawBlock(dst, well, pt.R, pt.C, g.cur.Kind)
	}
}

func (g *Game) renderSidebar(dst *core.Screen, well core.Rect) {
	x := well.Right() + 2
	y := well.Y + 1

	dst.DrawText(x, y, "Next")
	preview := newPiece(g.next, 0)
	for _, c := range preview.Cells {
		for i := range cellW {
			dst.SetColor(x+c.C*cellW+i, y+2+c.R, BlockChar, g.next.Color())
		}
	}

	lines := []string{
		fmt.Sprintf("Score: %d", g.score.Score()),
		fmt.Sprintf("Level: %d", g.level),
		fmt.Sprintf("Lines: %d", g.lines),
		fmt.Sprintf("Hi: %d", g.score.HighScore()),
	}
	for i, line := range lines {
		dst.DrawText(x, y+5+i*2, line)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, well core.Rect) {
	centerX := well.X + well.W/2
	centerY := well.Y + well.H/2

	switch g.phase {
	case core.PhaseNotStarted:
		drawOverlay(dst, centerX, centerY, "TETRIS", "SPACE to start")
	case core.PhasePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
	case core.PhaseGameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score: %d", g.score.Score()), "R to restart")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
