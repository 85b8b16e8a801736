package tetris

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

func TestRotationFormula(t *testing.T) {
	tests := []struct {
		kind Kind
		want [4]Point
	}{
		{KindT, [4]Point{{1, 2}, {0, 1}, {1, 1}, {2, 1}}},
		{KindI, [4]Point{{0, 3}, {1, 3}, {2, 3}, {3, 3}}},
		{KindO, shapes[KindO]},
	}

	for _, tc := range tests {
		got := newPiece(tc.kind, 10).rotated().Cells
		if got != tc.want {
			t.Errorf("%v rotated = %v, expected %v", tc.kind, got, tc.want)
		}
	}
}

func TestFourRotationsIdentity(t *testing.T) {
	for _, k := range kinds {
		p := newPiece(k, 10)
		r := p.rotated().rotated().rotated().rotated()
		if r.Cells != p.Cells {
			t.Errorf("%v after four turns = %v, expected %v", k, r.Cells, p.Cells)
		}
	}
}

func TestSpawnPosition(t *testing.T) {
	p := newPiece(KindL, 10)
	if p.Pos != (Point{R: -1, C: 4}) {
		t.Errorf("spawn = %v, expected (-1, 4)", p.Pos)
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, config.DefaultTetrisConfig())
	g.Step(input(core.ActionJump))
	return g
}

func TestRotateKicks(t *testing.T) {
	tests := []struct {
		name    string
		cur     Piece
		wantOK  bool
		wantPos Point
	}{
		{
			name:    "free rotation stays in place",
			cur:     Piece{Kind: KindT, Cells: shapes[KindT], Pos: Point{R: 5, C: 3}},
			wantOK:  true,
			wantPos: Point{R: 5, C: 3},
		},
		// Vertical T hugging the wall; its next turn pokes out to col -1.
		{
			name:    "left wall kicks right",
			cur:     Piece{Kind: KindT, Cells: [4]Point{{0, 1}, {1, 1}, {1, 2}, {2, 1}}, Pos: Point{R: 5, C: -1}},
			wantOK:  true,
			wantPos: Point{R: 5, C: 0},
		},
		// Turns to (1,2),(0,1),(1,1),(1,0): col 10 is out, one left fits.
		{
			name:    "right wall kicks left",
			cur:     Piece{Kind: KindT, Cells: [4]Point{{0, 1}, {1, 0}, {1, 1}, {2, 1}}, Pos: Point{R: 5, C: 8}},
			wantOK:  true,
			wantPos: Point{R: 5, C: 7},
		},
		{
			name:    "floor kicks up",
			cur:     Piece{Kind: KindT, Cells: shapes[KindT], Pos: Point{R: 18, C: 3}},
			wantOK:  true,
			wantPos: Point{R: 17, C: 3},
		},
		{
			name:    "every kick blocked is a no-op",
			cur:     Piece{Kind: KindI, Cells: shapes[KindI], Pos: Point{R: 19, C: 3}},
			wantOK:  false,
			wantPos: Point{R: 19, C: 3},
		},
		{
			name:    "O never rotates",
			cur:     newPiece(KindO, 10),
			wantOK:  false,
			wantPos: Point{R: -1, C: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.cur = tc.cur
			before := g.cur

			ok := g.Rotate()

			if ok != tc.wantOK {
				t.Fatalf("Rotate() = %v, expected %v", ok, tc.wantOK)
			}
			if g.cur.Pos != tc.wantPos {
				t.Errorf("position = %v, expected %v", g.cur.Pos, tc.wantPos)
			}
			if !ok && g.cur != before {
				t.Error("a failed rotation must leave the piece unchanged")
			}
			if g.board.Collides(g.cur) {
				t.Error("the piece must never end up overlapping")
			}
		})
	}
}

func TestRotateBlockedBySettledBlocks(t *testing.T) {
	g := newTestGame(t, 1)
	g.cur = Piece{Kind: KindT, Cells: shapes[KindT], Pos: Point{R: 10, C: 3}}
	// Blocks under and above the T leave no room to turn or kick.
	for c := 3; c <= 5; c++ {
		g.board.Set(12, c, KindZ)
	}
	g.board.Set(9, 4, KindZ)

	if g.Rotate() {
		t.Errorf("Rotate() succeeded into %v, expected blocked", g.cur)
	}
}
