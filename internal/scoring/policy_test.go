package scoring

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/brickfall/internal/config"
)

func breakoutCombo() config.ComboConfig {
	return config.DefaultBreakoutConfig().Combo
}

type memStore struct {
	high    int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) Save(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.high = score
	return nil
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestComboClimbsWithinWindow(t *testing.T) {
	p := NewPolicy(breakoutCombo(), nil)

	wantPoints := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	total := 0
	for i, want := range wantPoints {
		got := p.Award(ms(i*100), 10, 1.0)
		if got != want {
			t.Errorf("hit %d: Award() = %d, expected %d", i, got, want)
		}
		wantCombo := 1.0 + 0.1*float64(i)
		if math.Abs(p.Combo()-wantCombo) > 1e-9 {
			t.Errorf("hit %d: Combo() = %v, expected %v", i, p.Combo(), wantCombo)
		}
		total += want
	}
	if p.Score() != total {
		t.Errorf("Score() = %d, expected %d", p.Score(), total)
	}
}

func TestComboResetsAfterWindow(t *testing.T) {
	tests := []struct {
		name      string
		second    time.Duration
		wantCombo float64
	}{
		{"well after window", ms(1500), 1.0},
		{"exactly at window", ms(1000), 1.0},
		{"just inside window", ms(999), 1.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPolicy(breakoutCombo(), nil)
			p.Award(0, 10, 1.0)
			p.Award(tc.second, 10, 1.0)
			if math.Abs(p.Combo()-tc.wantCombo) > 1e-9 {
				t.Errorf("Combo() = %v, expected %v", p.Combo(), tc.wantCombo)
			}
		})
	}
}

func TestFirstEventStartsAtOne(t *testing.T) {
	p := NewPolicy(breakoutCombo(), nil)
	// The simulation clock starts at zero, so the first hit can land well
	// inside one window of t=0.
	if got := p.Award(ms(16), 10, 1.0); got != 10 {
		t.Errorf("first Award() = %d, expected 10", got)
	}
	if p.Combo() != 1.0 {
		t.Errorf("Combo() = %v, expected 1.0", p.Combo())
	}
}

func TestComboCapped(t *testing.T) {
	p := NewPolicy(breakoutCombo(), nil)
	for i := range 50 {
		p.Award(ms(i*10), 10, 1.0)
		if p.Combo() > 5.0 {
			t.Fatalf("hit %d: Combo() = %v exceeds cap", i, p.Combo())
		}
	}
	if p.Combo() != 5.0 {
		t.Errorf("Combo() after 50 rapid hits = %v, expected 5.0", p.Combo())
	}
	if got := p.Award(ms(500), 10, 1.0); got != 50 {
		t.Errorf("Award() at cap = %d, expected 50", got)
	}
}

func TestTypeMultiplierFloors(t *testing.T) {
	p := NewPolicy(breakoutCombo(), nil)
	p.Award(0, 10, 1.0)
	// combo 1.1 * 1.5 * 10 = 16.5
	if got := p.Award(ms(100), 10, 1.5); got != 16 {
		t.Errorf("Award() = %d, expected 16", got)
	}
}

func TestDisabledWindow(t *testing.T) {
	cfg := config.DefaultTetrisConfig().Combo
	p := NewPolicy(cfg, nil)
	p.Award(0, 100, 1)
	if got := p.Award(ms(1), 300, 2); got != 600 {
		t.Errorf("Award() with combos disabled = %d, expected 600", got)
	}
	if p.Combo() != 1.0 {
		t.Errorf("Combo() = %v, expected 1.0", p.Combo())
	}
}

func TestHighScorePersistence(t *testing.T) {
	store := &memStore{high: 25}
	p := NewPolicy(breakoutCombo(), store)

	if p.HighScore() != 25 {
		t.Fatalf("HighScore() = %d, expected loaded 25", p.HighScore())
	}

	// 10 then 21, both below the stored 25
	p.Award(0, 10, 1.0)
	p.Award(ms(100), 10, 1.0)
	if len(store.saves) != 0 {
		t.Errorf("saves = %v, expected none below the stored high score", store.saves)
	}

	// 33 then 46
	p.Award(ms(200), 10, 1.0)
	p.Award(ms(300), 10, 1.0)
	if len(store.saves) != 2 || store.saves[1] != 46 {
		t.Errorf("saves = %v, expected one save per event above the high score", store.saves)
	}
	if p.HighScore() != 46 {
		t.Errorf("HighScore() = %d, expected 46", p.HighScore())
	}
}

func TestPersistenceFailuresDegrade(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk gone"), saveErr: errors.New("read-only")}
	p := NewPolicy(breakoutCombo(), store)

	if p.HighScore() != 0 {
		t.Errorf("HighScore() after load failure = %d, expected 0", p.HighScore())
	}
	if err := p.LastError(); err == nil {
		t.Error("LastError() should report the load failure")
	}

	p.Award(0, 10, 1.0)
	if p.HighScore() != 10 {
		t.Errorf("HighScore() = %d, expected in-memory 10 despite save failure", p.HighScore())
	}
	if err := p.LastError(); err == nil {
		t.Error("LastError() should report the save failure")
	}
	if err := p.LastError(); err != nil {
		t.Errorf("LastError() should clear after reading, got %v", err)
	}
}

func TestDeterministicReplay(t *testing.T) {
	events := []struct {
		at   time.Duration
		base int
		mult float64
	}{
		{ms(0), 10, 1}, {ms(300), 10, 1.2}, {ms(2400), 10, 1}, {ms(2500), 40, 3}, {ms(2600), 10, 1},
	}
	run := func() Snapshot {
		p := NewPolicy(breakoutCombo(), nil)
		for _, e := range events {
			p.Award(e.at, e.base, e.mult)
		}
		return p.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("replays differ: %+v vs %+v", a, b)
	}
}
