package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/storage"
)

// scriptedGame ends after a fixed number of ticks with a fixed score.
type scriptedGame struct {
	ticks    int
	endAt    int
	score    int
	resized  [2]int
	resets   int
	persist  error
	lastSeen core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastSeen = in.Clone()
	if in.Has(core.ActionRestart) && g.ticks >= g.endAt {
		g.ticks = 0
		return core.StepResult{State: g.State()}
	}
	if g.ticks >= g.endAt {
		return core.StepResult{State: g.State()}
	}
	g.ticks++
	var events []core.Event
	events = append(events, core.Event{Kind: core.EventBrickDestroyed, Value: 10})
	if g.ticks == g.endAt {
		events = append(events, core.Event{Kind: core.EventGameOver, Value: 1})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) State() core.GameState {
	over := g.ticks >= g.endAt
	phase := core.PhaseRunning
	if over {
		phase = core.PhaseGameOver
	}
	return core.GameState{Score: g.score, Level: 2, Phase: phase, GameOver: over}
}

func (g *scriptedGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *scriptedGame) PersistenceError() error { return g.persist }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 3, score: 120}
	m := NewGameModel(game, store, core.DefaultConfig(), nil)
	m.Init()

	for range 10 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 120 || scores[0].Level != 2 {
		t.Fatalf("scores = %+v, expected one entry of 120 at level 2", scores)
	}

	sink := m.sink.(*LogSink)
	if sink.Count(core.EventBrickDestroyed) != 0 {
		t.Error("the tally should reset after game over")
	}
}

func TestGameModelSavesAgainAfterRestart(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 2, score: 50}
	m := NewGameModel(game, store, core.DefaultConfig(), nil)
	m.Init()

	for range 4 {
		m = tick(t, m)
	}
	m.inputFrame.Set(core.ActionRestart)
	for range 4 {
		m = tick(t, m)
	}

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("len(scores) = %d, expected one per finished game", len(scores))
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	game := &scriptedGame{endAt: 1, score: 10}
	m := NewGameModel(game, nil, core.DefaultConfig(), nil)
	if m.config.Scores != nil {
		t.Fatal("a nil store must not become a non-nil keeper")
	}
	m.Init()
	m = tick(t, m)
	m = tick(t, m)
	if !m.State().GameOver {
		t.Error("game should be over")
	}
}

func TestGameModelClearsInputEachTick(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(GameModel)
	m = tick(t, m)
	if !game.lastSeen.Has(core.ActionLeft) {
		t.Fatal("the key should reach the game")
	}
	m = tick(t, m)
	if game.lastSeen.Has(core.ActionLeft) {
		t.Error("input should be cleared after the tick")
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(GameModel)

	if game.resets != 1 {
		t.Errorf("resets = %d, a resizable game should not restart", game.resets)
	}
	if game.resized != [2]int{100, 40 - helpRows} {
		t.Errorf("resized = %v, expected the playfield below the help row", game.resized)
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig(), nil)
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.BackToMenu() {
		t.Error("a running game should ignore back")
	}

	game.endAt = 1
	m = tick(t, m)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("back should leave a finished game")
	}
}

func TestGameModelReportsPersistenceOnce(t *testing.T) {
	game := &scriptedGame{endAt: 100, persist: errors.New("disk full")}
	m := NewGameModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	m = tick(t, m)
	if m.persistErr != "disk full" {
		t.Fatalf("persistErr = %q", m.persistErr)
	}

	game.persist = nil
	m = tick(t, m)
	if m.persistErr != "" {
		t.Error("a recovered keeper should clear the reported error")
	}
}

func TestGameModelView(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, nil)
	m.Init()

	if m.screen.Height() != 10-helpRows {
		t.Errorf("screen height = %d, expected room for help", m.screen.Height())
	}
	if v := m.View(); v == "" {
		t.Error("view should not be empty")
	}
}
