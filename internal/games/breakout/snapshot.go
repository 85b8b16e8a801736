package breakout

import "math"

// Snapshot contains the complete game state for replay checks.
// Uses primitive types only for stable comparison; floats are stored as
// their IEEE-754 bits.
type Snapshot struct {
	Tick  int
	Phase int
	Level int

	Score     int
	ComboMill int
	HighScore int

	PaddleX      uint64
	PaddleWidth  uint64
	PaddleEffect int
	EffectTicks  int

	// Each ball is 5 values: X, Y, VX, VY, Speed
	BallCount int
	BallData  []uint64

	// Each brick is 2 values: Present, Type
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	ballData := make([]uint64, 0, len(w.balls)*5)
	for _, b := range w.balls {
		ballData = append(ballData,
			math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y),
			math.Float64bits(b.Vel.X), math.Float64bits(b.Vel.Y),
			math.Float64bits(b.Speed))
	}

	brickData := make([]int, 0, len(w.grid.bricks)*2)
	for _, b := range w.grid.bricks {
		present := 0
		if b.Present {
			present = 1
		}
		brickData = append(brickData, present, int(b.Type))
	}

	sc := g.score.Snapshot()
	return Snapshot{
		Tick:         g.tick,
		Phase:        int(g.phase),
		Level:        w.level,
		Score:        sc.Score,
		ComboMill:    sc.ComboMill,
		HighScore:    sc.HighScore,
		PaddleX:      math.Float64bits(w.paddle.X),
		PaddleWidth:  math.Float64bits(w.paddle.Width),
		PaddleEffect: int(w.paddle.Effect),
		EffectTicks:  w.paddle.EffectTicks,
		BallCount:    len(w.balls),
		BallData:     ballData,
		BrickData:    brickData,
		RNGState:     w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboMill)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleEffect) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)    //#nosec G115 -- hash computation
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleWidth

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
