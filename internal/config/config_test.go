package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	bcfg, err := load("breakout-missing", "", defaultBreakoutYAML, DefaultBreakoutConfig)
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	want := DefaultBreakoutConfig()
	// yaml decodes `{}` into an empty map, the hardcoded default leaves it nil
	bcfg.Combo.TypeMultipliers = nil
	if math.Abs(bcfg.Ball.Speed-want.Ball.Speed) > 1e-9 {
		t.Errorf("embedded ball speed = %v, expected %v", bcfg.Ball.Speed, want.Ball.Speed)
	}
	bcfg.Ball.Speed = want.Ball.Speed
	if !reflect.DeepEqual(bcfg, want) {
		t.Errorf("embedded breakout.yaml differs from DefaultBreakoutConfig():\n got %+v\nwant %+v", bcfg, want)
	}

	tcfg, err := load("tetris-missing", "", defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	if !reflect.DeepEqual(tcfg, DefaultTetrisConfig()) {
		t.Errorf("embedded tetris.yaml differs from DefaultTetrisConfig():\n got %+v", tcfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "breakout.yaml")
	if err := os.WriteFile(yamlPath, []byte("ball:\n  speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBreakout(yamlPath)
	if err != nil {
		t.Fatalf("LoadBreakout(yaml) error: %v", err)
	}
	if cfg.Ball.Speed != 7 {
		t.Errorf("Ball.Speed = %v, expected 7", cfg.Ball.Speed)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %v, expected default 120 to survive partial file", cfg.Paddle.Width)
	}

	tomlPath := filepath.Join(dir, "tetris.toml")
	data := "[gravity]\nstart_ms = 800\n\n[scoring]\nline_points = [0, 10, 20, 30, 40]\n"
	if err := os.WriteFile(tomlPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	tcfg, err := LoadTetris(tomlPath)
	if err != nil {
		t.Fatalf("LoadTetris(toml) error: %v", err)
	}
	if tcfg.Gravity.StartMs != 800 {
		t.Errorf("Gravity.StartMs = %d, expected 800", tcfg.Gravity.StartMs)
	}
	if tcfg.Scoring.LinePoints[4] != 40 {
		t.Errorf("LinePoints[4] = %d, expected 40", tcfg.Scoring.LinePoints[4])
	}
	if tcfg.Board.Cols != 10 {
		t.Errorf("Board.Cols = %d, expected default 10", tcfg.Board.Cols)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("LoadBreakout() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("LoadBreakout() with malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("combo:\n  max: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(invalid); err == nil {
		t.Error("LoadBreakout() with combo max below 1 should fail validation")
	}
}

func TestBreakoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BreakoutConfig)
		wantErr bool
	}{
		{"defaults", func(*BreakoutConfig) {}, false},
		{"zero field", func(c *BreakoutConfig) { c.Field.Width = 0 }, true},
		{"weights over one", func(c *BreakoutConfig) { c.Bricks.Weights.Split = 0.9 }, true},
		{"unknown area mode", func(c *BreakoutConfig) { c.Effects.AreaClear.Mode = "cross" }, true},
		{"radius area mode", func(c *BreakoutConfig) { c.Effects.AreaClear.Mode = AreaRadius }, false},
		{"max speed below speed", func(c *BreakoutConfig) { c.Ball.MaxSpeed = 1 }, true},
		{"no balls allowed", func(c *BreakoutConfig) { c.Effects.MaxBalls = 0 }, true},
		{"gap ratio one", func(c *BreakoutConfig) { c.Bricks.GapRatio = 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTetrisValidate(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default tetris config invalid: %v", err)
	}
	cfg.Scoring.LinePoints = []int{0, 40}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a short line_points table")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "NORMAL", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Error("empty preset should leave the config untouched")
	}

	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("hard preset paddle width = %v, expected 100", cfg.Paddle.Width)
	}

	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.0},
		{3, 0.5},
		{5, 1.0},
		{9, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.level, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.level, got, tc.want)
		}
	}

	if got := dm.Speed(10, 3, 0); math.Abs(got-15) > 1e-9 {
		t.Errorf("Speed(10, level 3) = %v, expected 15", got)
	}

	cfg.Enabled = false
	if got := NewDifficultyManager(cfg).Speed(10, 9, 0); got != 10 {
		t.Errorf("disabled Speed() = %v, expected base 10", got)
	}
}
