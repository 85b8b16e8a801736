// Package config provides YAML/TOML game configuration loading and
// difficulty presets for brickfall.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are in field units (the field is scaled to the terminal when
// rendering), durations in ticks unless the field name says otherwise.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Bricks     BrickConfig      `yaml:"bricks" toml:"bricks"`
	Effects    EffectConfig     `yaml:"effects" toml:"effects"`
	Combo      ComboConfig      `yaml:"combo" toml:"combo"`
	Gameplay   BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig is the size of the simulated playfield.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the paddle geometry and limits.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from paddle top to field bottom
	MinWidth     float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth     float64 `yaml:"max_width" toml:"max_width"`
}

// BallConfig defines the ball and its launch.
type BallConfig struct {
	Radius            float64 `yaml:"radius" toml:"radius"`
	Speed             float64 `yaml:"speed" toml:"speed"`
	MaxSpeed          float64 `yaml:"max_speed" toml:"max_speed"`
	LaunchAngleDeg    float64 `yaml:"launch_angle_deg" toml:"launch_angle_deg"`         // From vertical, positive = right
	MaxBounceAngleDeg float64 `yaml:"max_bounce_angle_deg" toml:"max_bounce_angle_deg"` // At the paddle edge
	TrailLength       int     `yaml:"trail_length" toml:"trail_length"`
}

// GridSize is a brick layout in rows and columns.
type GridSize struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

// BrickConfig defines brick layout and type distribution.
type BrickConfig struct {
	FirstLevel  GridSize    `yaml:"first_level" toml:"first_level"`
	LaterLevels GridSize    `yaml:"later_levels" toml:"later_levels"`
	Height      float64     `yaml:"height" toml:"height"`
	Padding     float64     `yaml:"padding" toml:"padding"`
	TopOffset   float64     `yaml:"top_offset" toml:"top_offset"`
	GapRatio    float64     `yaml:"gap_ratio" toml:"gap_ratio"`
	Weights     TypeWeights `yaml:"weights" toml:"weights"`
}

// TypeWeights are the draw probabilities of the special brick types.
// Whatever is left up to 1.0 becomes a normal brick.
type TypeWeights struct {
	AreaClear float64 `yaml:"area_clear" toml:"area_clear"`
	Split     float64 `yaml:"split" toml:"split"`
	Shrink    float64 `yaml:"shrink" toml:"shrink"`
	SpeedUp   float64 `yaml:"speed_up" toml:"speed_up"`
	Extend    float64 `yaml:"extend" toml:"extend"`
}

// Sum returns the total probability of special bricks.
func (w TypeWeights) Sum() float64 {
	return w.AreaClear + w.Split + w.Shrink + w.SpeedUp + w.Extend
}

// Area-clear neighbourhood modes.
const (
	AreaGrid   = "grid"   // +-Span rows and columns around the hit brick
	AreaRadius = "radius" // Brick centres closer than Radius
	AreaRow    = "row"    // The whole row of the hit brick
)

// AreaClearConfig selects which bricks an area-clear brick takes with it.
type AreaClearConfig struct {
	Mode   string  `yaml:"mode" toml:"mode"`
	Span   int     `yaml:"span" toml:"span"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// EffectConfig defines special brick effects.
type EffectConfig struct {
	SpeedFactor   float64         `yaml:"speed_factor" toml:"speed_factor"`
	ShrinkFactor  float64         `yaml:"shrink_factor" toml:"shrink_factor"`
	ExtendFactor  float64         `yaml:"extend_factor" toml:"extend_factor"`
	DurationTicks int             `yaml:"duration_ticks" toml:"duration_ticks"`
	MaxBalls      int             `yaml:"max_balls" toml:"max_balls"`
	AreaClear     AreaClearConfig `yaml:"area_clear" toml:"area_clear"`
}

// ComboConfig parameterizes the time-windowed combo multiplier.
// A zero window disables combos: every event scores at 1.0x.
type ComboConfig struct {
	WindowMs        int                `yaml:"window_ms" toml:"window_ms"`
	Step            float64            `yaml:"step" toml:"step"`
	Max             float64            `yaml:"max" toml:"max"`
	BasePoints      int                `yaml:"base_points" toml:"base_points"`
	TypeMultipliers map[string]float64 `yaml:"type_multipliers" toml:"type_multipliers"`
}

// Multiplier returns the configured multiplier for a brick type, 1.0 if unset.
func (c ComboConfig) Multiplier(typ string) float64 {
	if m, ok := c.TypeMultipliers[typ]; ok && m > 0 {
		return m
	}
	return 1.0
}

// BreakoutGameplay defines session-level settings.
type BreakoutGameplay struct {
	LevelBannerTicks int `yaml:"level_banner_ticks" toml:"level_banner_ticks"`
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board" toml:"board"`
	Gravity GravityConfig `yaml:"gravity" toml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring" toml:"scoring"`
	Combo   ComboConfig   `yaml:"combo" toml:"combo"`
}

// BoardConfig is the well size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

// GravityConfig controls the automatic fall interval:
// max(MinMs, StartMs - (level-1)*StepMs).
type GravityConfig struct {
	StartMs int `yaml:"start_ms" toml:"start_ms"`
	StepMs  int `yaml:"step_ms" toml:"step_ms"`
	MinMs   int `yaml:"min_ms" toml:"min_ms"`
}

// TetrisScoring defines line-clear rewards.
type TetrisScoring struct {
	LinePoints    []int `yaml:"line_points" toml:"line_points"` // Indexed by lines cleared at once
	LinesPerLevel int   `yaml:"lines_per_level" toml:"lines_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level", "score" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
