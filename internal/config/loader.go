package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.brickfall/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.brickfall/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load decodes the first config found for a game on top of its defaults.
// A custom path must exist and parse; the other locations are optional.
func load[T any](game, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(game) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := decode(path, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension. Anything that is not
// .toml is treated as YAML.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// searchPaths lists the optional config locations for a game, most specific first.
func searchPaths(game string) []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, game+".yaml"),
			filepath.Join(dir, game+".toml"))
	}
	return append(paths,
		filepath.Join("configs", game+".yaml"),
		filepath.Join("configs", game+".toml"))
}

// userConfigDir returns ~/.brickfall/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfall", "configs")
}

// ParsePreset validates a difficulty preset name. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 150
		cfg.Ball.Speed = 4.5
	case DifficultyHard:
		cfg.Paddle.Width = 100
		cfg.Ball.Speed = 7
	}
}

// ApplyTetrisPreset modifies the gravity curve based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.StartMs = 1200
	case DifficultyHard:
		cfg.Gravity.StartMs = 700
		cfg.Gravity.MinMs = 80
	}
}

// Validate reports the first setting that would make the simulation ill-defined.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Paddle.MinWidth > c.Paddle.MaxWidth {
		errs = append(errs, errors.New("paddle min_width exceeds max_width"))
	}
	if c.Paddle.MaxWidth > c.Field.Width {
		errs = append(errs, errors.New("paddle max_width exceeds field width"))
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball radius and speed must be positive"))
	}
	if c.Ball.MaxSpeed < c.Ball.Speed {
		errs = append(errs, errors.New("ball max_speed is below speed"))
	}
	for _, g := range []GridSize{c.Bricks.FirstLevel, c.Bricks.LaterLevels} {
		if g.Rows <= 0 || g.Cols <= 0 {
			errs = append(errs, errors.New("brick grid must have rows and cols"))
			break
		}
	}
	if c.Bricks.GapRatio < 0 || c.Bricks.GapRatio >= 1 {
		errs = append(errs, errors.New("bricks gap_ratio must be in [0, 1)"))
	}
	if c.Bricks.Weights.Sum() > 1.0+1e-9 {
		errs = append(errs, errors.New("brick type weights sum above 1"))
	}
	switch c.Effects.AreaClear.Mode {
	case AreaGrid, AreaRadius, AreaRow:
	default:
		errs = append(errs, fmt.Errorf("unknown area_clear mode %q", c.Effects.AreaClear.Mode))
	}
	if c.Effects.MaxBalls < 1 {
		errs = append(errs, errors.New("effects max_balls must be at least 1"))
	}
	if err := c.Combo.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}

// Validate reports settings that would make the simulation ill-defined.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		errs = append(errs, errors.New("board must be at least 4x4"))
	}
	if c.Gravity.StartMs <= 0 || c.Gravity.MinMs <= 0 {
		errs = append(errs, errors.New("gravity intervals must be positive"))
	}
	if len(c.Scoring.LinePoints) < 5 {
		errs = append(errs, errors.New("scoring line_points needs entries for 0-4 lines"))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("scoring lines_per_level must be positive"))
	}
	if err := c.Combo.validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}

func (c ComboConfig) validate() error {
	if c.WindowMs < 0 || c.Step < 0 {
		return errors.New("combo window_ms and step must not be negative")
	}
	if c.Max < 1 {
		return errors.New("combo max must be at least 1")
	}
	return nil
}
