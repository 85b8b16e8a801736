package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// BrickType determines what happens when a brick is destroyed.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickSpeedUp
	BrickShrink
	BrickSplit
	BrickExtend
	BrickAreaClear
)

// String returns the config/event name of the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickSpeedUp:
		return "speed_up"
	case BrickShrink:
		return "shrink"
	case BrickSplit:
		return "split"
	case BrickExtend:
		return "extend"
	case BrickAreaClear:
		return "area_clear"
	default:
		return "normal"
	}
}

// Brick is one cell of the grid. A destroyed brick stays in the grid with
// Present false and is never revived.
type Brick struct {
	Box     core.Box
	Row     int
	Col     int
	Type    BrickType
	Present bool
}

// Grid is the brick layout of one level, stored row-major.
type Grid struct {
	rows, cols int
	bricks     []Brick
}

func (g *Grid) at(row, col int) *Brick {
	return &g.bricks[row*g.cols+col]
}

func (g *Grid) present() int {
	n := 0
	for i := range g.bricks {
		if g.bricks[i].Present {
			n++
		}
	}
	return n
}

// destroy marks a brick as gone. Destroying it twice is a logic error.
func (g *Grid) destroy(b *Brick) {
	core.Invariant(b.Present, "brick (%d,%d) destroyed twice", b.Row, b.Col)
	b.Present = false
}

// generateGrid builds the layout for a level. Level 1 uses the first-level
// size, every later level the larger one. A fixed share of cells (rounded)
// is left empty; each remaining cell draws its type from the weights.
func generateGrid(cfg config.BreakoutConfig, level int, rng *core.SimpleRNG) *Grid {
	size := cfg.Bricks.LaterLevels
	if level <= 1 {
		size = cfg.Bricks.FirstLevel
	}

	bc := cfg.Bricks
	g := &Grid{rows: size.Rows, cols: size.Cols, bricks: make([]Brick, size.Rows*size.Cols)}
	brickW := (cfg.Field.Width - float64(size.Cols+1)*bc.Padding) / float64(size.Cols)

	total := len(g.bricks)
	gaps := int(math.Round(float64(total) * bc.GapRatio))
	gaps = min(gaps, total-1)

	// Pick gap cells without replacement, in the order they are drawn.
	isGap := make([]bool, total)
	candidates := make([]int, total)
	for i := range candidates {
		candidates[i] = i
	}
	for range gaps {
		j := rng.Intn(len(candidates))
		isGap[candidates[j]] = true
		candidates = append(candidates[:j], candidates[j+1:]...)
	}

	for r := range size.Rows {
		for c := range size.Cols {
			idx := r*size.Cols + c
			b := &g.bricks[idx]
			b.Row, b.Col = r, c
			b.Box = core.Box{
				X: float64(c)*(brickW+bc.Padding) + bc.Padding,
				Y: float64(r)*(bc.Height+bc.Padding) + bc.TopOffset,
				W: brickW,
				H: bc.Height,
			}
			if isGap[idx] {
				continue
			}
			b.Present = true
			b.Type = rollType(bc.Weights, rng.Float64())
		}
	}
	return g
}

// rollType maps a uniform draw onto the cumulative type weights.
func rollType(w config.TypeWeights, roll float64) BrickType {
	steps := []struct {
		typ    BrickType
		weight float64
	}{
		{BrickAreaClear, w.AreaClear},
		{BrickSplit, w.Split},
		{BrickShrink, w.Shrink},
		{BrickSpeedUp, w.SpeedUp},
		{BrickExtend, w.Extend},
	}
	acc := 0.0
	for _, s := range steps {
		acc += s.weight
		if roll < acc {
			return s.typ
		}
	}
	return BrickNormal
}

// neighbours lists the present bricks an area clear centred on b destroys,
// in row-major order. b itself is excluded.
func (g *Grid) neighbours(b *Brick, ac config.AreaClearConfig) []*Brick {
	var out []*Brick
	center := b.Box.Center()
	for r := range g.rows {
		for c := range g.cols {
			n := g.at(r, c)
			if n == b || !n.Present {
				continue
			}
			var hit bool
			switch ac.Mode {
			case config.AreaRadius:
				d := n.Box.Center()
				hit = math.Hypot(d.X-center.X, d.Y-center.Y) < ac.Radius
			case config.AreaRow:
				hit = r == b.Row
			default:
				hit = abs(r-b.Row) <= ac.Span && abs(c-b.Col) <= ac.Span
			}
			if hit {
				out = append(out, n)
			}
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
