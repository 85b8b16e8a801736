package tetris

// Snapshot contains the complete game state for replay checks.
type Snapshot struct {
	Tick  int
	Phase int
	Fall  int

	Score     int
	HighScore int
	Lines     int
	Level     int

	Piece  int
	PieceR int
	PieceC int
	Cells  [8]int // Row and column of each block offset
	Next   int

	Board    []int // Row-major Kind values
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	board := make([]int, 0, g.board.Rows()*g.board.Cols())
	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			board = append(board, int(g.board.At(r, c)))
		}
	}

	var cells [8]int
	for i, c := range g.cur.Cells {
		cells[i*2], cells[i*2+1] = c.R, c.C
	}

	sc := g.score.Snapshot()
	return Snapshot{
		Tick:      g.tick,
		Phase:     int(g.phase),
		Fall:      g.fall,
		Score:     sc.Score,
		HighScore: sc.HighScore,
		Lines:     g.lines,
		Level:     g.level,
		Piece:     int(g.cur.Kind),
		PieceR:    g.cur.Pos.R,
		PieceC:    g.cur.Pos.C,
		Cells:     cells,
		Next:      int(g.next),
		Board:     board,
		RNGState:  g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(0)
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range []int{
		snap.Tick, snap.Phase, snap.Fall,
		snap.Score, snap.HighScore, snap.Lines, snap.Level,
		snap.Piece, snap.PieceR, snap.PieceC, snap.Next,
	} {
		mix(v)
	}
	for _, v := range snap.Cells {
		mix(v)
	}
	for _, v := range snap.Board {
		mix(v)
	}

	return h*31 + snap.RNGState
}
