package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        8,
			BottomOffset: 30,
			MinWidth:     40,
			MaxWidth:     200,
		},
		Ball: BallConfig{
			Radius:            8,
			Speed:             4 * math.Sqrt2,
			MaxSpeed:          16,
			LaunchAngleDeg:    45,
			MaxBounceAngleDeg: 60,
			TrailLength:       5,
		},
		Bricks: BrickConfig{
			FirstLevel:  GridSize{Rows: 6, Cols: 10},
			LaterLevels: GridSize{Rows: 8, Cols: 12},
			Height:      25,
			Padding:     5,
			TopOffset:   40,
			GapRatio:    0.1,
			Weights: TypeWeights{
				AreaClear: 0.05,
				Split:     0.20,
				Shrink:    0.15,
				SpeedUp:   0.20,
				Extend:    0.15,
			},
		},
		Effects: EffectConfig{
			SpeedFactor:   1.1,
			ShrinkFactor:  0.8,
			ExtendFactor:  1.2,
			DurationTicks: 300,
			MaxBalls:      16,
			AreaClear: AreaClearConfig{
				Mode:   AreaGrid,
				Span:   2,
				Radius: 100,
			},
		},
		Combo: ComboConfig{
			WindowMs:   1000,
			Step:       0.1,
			Max:        5.0,
			BasePoints: 10,
		},
		Gameplay: BreakoutGameplay{
			LevelBannerTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{Rows: 20, Cols: 10},
		Gravity: GravityConfig{
			StartMs: 1000,
			StepMs:  100,
			MinMs:   100,
		},
		Scoring: TetrisScoring{
			LinePoints:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
		},
		Combo: ComboConfig{
			WindowMs:   0,
			Step:       0,
			Max:        1.0,
			BasePoints: 1,
		},
	}
}
