package tetris

// Board is the well of settled blocks, indexed [row][col] with row 0 at the
// top.
type Board struct {
	rows, cols int
	cells      [][]Kind
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols, cells: make([][]Kind, rows)}
	for r := range b.cells {
		b.cells[r] = make([]Kind, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// At returns the block at (r, c), KindNone when empty or outside the board.
func (b *Board) At(r, c int) Kind {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return KindNone
	}
	return b.cells[r][c]
}

// Set writes a block. Out-of-range positions are ignored.
func (b *Board) Set(r, c int, k Kind) {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return
	}
	b.cells[r][c] = k
}

// Collides reports whether p overlaps a wall, the floor or a settled block.
// Blocks above the top row are allowed while the piece enters the well.
func (b *Board) Collides(p Piece) bool {
	for _, pt := range p.Blocks() {
		if pt.C < 0 || pt.C >= b.cols || pt.R >= b.rows {
			return true
		}
		if pt.R >= 0 && b.cells[pt.R][pt.C] != KindNone {
			return true
		}
	}
	return false
}

// Place writes p into the board. It reports false when any block of p is
// still above the top row; those blocks are dropped.
func (b *Board) Place(p Piece) bool {
	fits := true
	for _, pt := range p.Blocks() {
		if pt.R < 0 {
			fits = false
			continue
		}
		b.Set(pt.R, pt.C, p.Kind)
	}
	return fits
}

// ClearLines removes every full row, shifts the rows above down and returns
// how many were removed.
func (b *Board) ClearLines() int {
	write := b.rows - 1
	for read := b.rows - 1; read >= 0; read-- {
		if b.full(read) {
			continue
		}
		if write != read {
			copy(b.cells[write], b.cells[read])
		}
		write--
	}

	cleared := write + 1
	for r := 0; r <= write; r++ {
		clear(b.cells[r])
	}
	return cleared
}

func (b *Board) full(r int) bool {
	for _, k := range b.cells[r] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// Filled counts settled blocks.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}
