package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestGameStartsOnJump(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, config.DefaultTetrisConfig())

	for range 120 {
		g.Step(input())
	}
	if g.State().Phase != core.PhaseNotStarted || g.Current().Pos.R != -1 {
		t.Fatal("nothing should fall before the game starts")
	}

	g.Step(input(core.ActionJump))
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("phase = %s, expected running", g.State().Phase)
	}
	if g.Board().Filled() != 0 {
		t.Error("the starting jump must not hard-drop the first piece")
	}
}

func TestGravity(t *testing.T) {
	g := newTestGame(t, 1)

	for range 59 {
		g.Step(input())
	}
	if g.Current().Pos.R != -1 {
		t.Fatalf("row = %d after 59 ticks, expected -1", g.Current().Pos.R)
	}

	g.Step(input())
	if g.Current().Pos.R != 0 {
		t.Errorf("row = %d after 60 ticks, expected 0", g.Current().Pos.R)
	}
}

func TestGravityInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
		ticks int
	}{
		{1, time.Second, 60},
		{2, 900 * time.Millisecond, 54},
		{5, 600 * time.Millisecond, 36},
		{10, 100 * time.Millisecond, 6},
		{15, 100 * time.Millisecond, 6},
	}

	g := newTestGame(t, 1)
	for _, tc := range tests {
		g.level = tc.level
		if got := g.GravityInterval(); got != tc.want {
			t.Errorf("level %d: GravityInterval() = %v, expected %v", tc.level, got, tc.want)
		}
		if got := g.gravityTicks(); got != tc.ticks {
			t.Errorf("level %d: gravityTicks() = %d, expected %d", tc.level, got, tc.ticks)
		}
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	g := newTestGame(t, 1)
	g.cur = newPiece(KindO, 10)

	for range 10 {
		g.Step(input(core.ActionLeft))
	}
	if g.Current().Pos.C != 0 {
		t.Errorf("col = %d after moving left, expected 0", g.Current().Pos.C)
	}

	for range 10 {
		g.Step(input(core.ActionRight))
	}
	if g.Current().Pos.C != 8 {
		t.Errorf("col = %d after moving right, expected 8", g.Current().Pos.C)
	}

	g.Step(input(core.ActionLeft, core.ActionRight))
	if g.Current().Pos.C != 8 {
		t.Error("left and right together should cancel")
	}
}

func TestSoftDrop(t *testing.T) {
	g := newTestGame(t, 1)
	g.cur = newPiece(KindO, 10)

	for range 5 {
		g.Step(input(core.ActionDown))
	}
	if g.Current().Pos.R != 4 {
		t.Errorf("row = %d after five soft drops, expected 4", g.Current().Pos.R)
	}
	// Reset by the drop, then counted once by this tick's gravity.
	if g.fall != 1 {
		t.Errorf("fall = %d, expected gravity timer reset by soft drop", g.fall)
	}
}

func TestHardDrop(t *testing.T) {
	g := newTestGame(t, 1)
	g.cur = newPiece(KindO, 10)
	next := g.Next()

	res := g.Step(input(core.ActionJump))

	if countEvents(res.Events, core.EventPieceLocked) != 1 {
		t.Fatalf("events = %v, expected one piece-locked", res.Events)
	}
	if g.Board().At(19, 4) != KindO || g.Board().At(18, 5) != KindO {
		t.Error("the O should rest on the floor under its spawn column")
	}
	if g.Current().Kind != next || g.Current().Pos != (Point{R: -1, C: 4}) {
		t.Errorf("current = %+v, expected the previewed %v at spawn", g.Current(), next)
	}
}

func TestRotateEvent(t *testing.T) {
	g := newTestGame(t, 1)
	g.cur = Piece{Kind: KindT, Cells: shapes[KindT], Pos: Point{R: 5, C: 3}}

	res := g.Step(input(core.ActionUp))

	if countEvents(res.Events, core.EventRotated) != 1 {
		t.Errorf("events = %v, expected a rotated event", res.Events)
	}
}

func TestLineClearScoring(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		lines      int
		rows       int // Full rows prepared under a vertical I in col 0
		wantPoints int
		wantLines  int
		wantLevel  int
	}{
		{"single at level 1", 1, 0, 1, 40, 1, 1},
		{"double at level 3", 3, 20, 2, 300, 22, 3},
		{"triple", 1, 0, 3, 300, 3, 1},
		{"four lines", 2, 10, 4, 2400, 14, 2},
		{"level up uses the old level", 1, 9, 1, 40, 10, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.level, g.lines = tc.level, tc.lines
			for r := 20 - tc.rows; r < 20; r++ {
				fillRow(g.board, r, 0)
			}
			// Vertical I whose bottom tc.rows blocks fill the gaps.
			g.cur = Piece{Kind: KindI, Cells: [4]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Pos: Point{R: -4, C: 0}}

			res := g.Step(input(core.ActionJump))

			if got := res.State.Score; got != tc.wantPoints {
				t.Errorf("Score = %d, expected %d", got, tc.wantPoints)
			}
			if g.Lines() != tc.wantLines {
				t.Errorf("Lines() = %d, expected %d", g.Lines(), tc.wantLines)
			}
			if res.State.Level != tc.wantLevel {
				t.Errorf("Level = %d, expected %d", res.State.Level, tc.wantLevel)
			}
			cleared := 0
			for _, e := range res.Events {
				if e.Kind == core.EventLinesCleared {
					cleared = e.Value
				}
			}
			if cleared != tc.rows {
				t.Errorf("lines-cleared value = %d, expected %d", cleared, tc.rows)
			}
			if g.Board().Filled() != 4-tc.rows {
				t.Errorf("Filled() = %d, expected %d leftover I blocks", g.Board().Filled(), 4-tc.rows)
			}
		})
	}
}

func TestLockAboveTopEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	for r := range 20 {
		fillRow(g.board, r, 9)
	}
	g.cur = newPiece(KindO, 10)

	res := g.Step(input(core.ActionJump))

	if !res.State.GameOver {
		t.Fatal("a piece locked above the top should end the game")
	}
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Errorf("events = %v, expected one game-over", res.Events)
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	g.board.Set(0, 4, KindZ)
	g.board.Set(0, 5, KindZ)
	g.cur = Piece{Kind: KindI, Cells: shapes[KindI], Pos: Point{R: 10, C: 0}}
	g.next = KindO

	res := g.Step(input(core.ActionJump))

	if !res.State.GameOver {
		t.Fatal("a spawn that overlaps the stack should end the game")
	}
	if g.Board().At(19, 0) != KindI {
		t.Error("the dropped piece should still be locked")
	}
}

func TestGameOverRestart(t *testing.T) {
	g := newTestGame(t, 1)
	for r := range 20 {
		fillRow(g.board, r, 9)
	}
	g.cur = newPiece(KindO, 10)
	g.Step(input(core.ActionJump))

	g.Step(input(core.ActionLeft, core.ActionPause))
	if g.State().Phase != core.PhaseGameOver {
		t.Fatal("only restart should leave game over")
	}

	g.Step(input(core.ActionRestart))
	st := g.State()
	if st.Phase != core.PhaseNotStarted || st.Score != 0 || st.Level != 1 {
		t.Errorf("after restart: %+v, expected a fresh session", st)
	}
	if g.Board().Filled() != 0 || g.Lines() != 0 {
		t.Error("restart should empty the board")
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(input(core.ActionPause))

	frozen := g.Snapshot()
	for range 200 {
		g.Step(input(core.ActionDown))
	}
	if snap := g.Snapshot(); snap.Hash() != frozen.Hash() {
		t.Error("paused game should not change state")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("game should be resumed")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 45 {
		case 3:
			inputs[i].Set(core.ActionUp)
		case 7, 8:
			if i%2 == 0 {
				inputs[i].Set(core.ActionLeft)
			} else {
				inputs[i].Set(core.ActionRight)
			}
		case 30:
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, 777)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Tick == 0 {
		t.Error("the run should have simulated some ticks")
	}
}

func TestPieceSequenceFollowsSeed(t *testing.T) {
	seq := func(seed int64) []Kind {
		g := newTestGame(t, seed)
		out := []Kind{g.Current().Kind}
		for range 20 {
			g.Step(input(core.ActionJump))
			if g.State().GameOver {
				break
			}
			out = append(out, g.Current().Kind)
		}
		return out
	}

	a, b := seq(9), seq(9)
	if len(a) != len(b) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(a), len(b))
	}
	seen := map[Kind]bool{}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("piece %d: %v vs %v", i, a[i], b[i])
		}
		seen[a[i]] = true
	}
	if len(seen) < 2 {
		t.Error("a seeded sequence should not repeat one kind forever")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(input(core.ActionJump))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	for _, want := range []string{"Next", "Score: ", "Level: 1", "Lines: 0"} {
		if !strings.Contains(str, want) {
			t.Errorf("render should contain %q", want)
		}
	}
	if !strings.ContainsRune(str, BlockChar) {
		t.Error("blocks should be drawn")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 30, ScreenH: 24, TickRate: 60, Seed: 1}, config.DefaultTetrisConfig())

	screen := core.NewScreen(30, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected the too-small message")
	}
}
