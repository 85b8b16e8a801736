package tetris

import "github.com/vovakirdan/brickfall/internal/core"

// Kind identifies a tetromino. KindNone marks an empty board cell.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// kinds lists the playable pieces in draw order.
var kinds = []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "."
	}
}

// Color returns the render color of the piece.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorBrightYellow
	case KindS:
		return core.ColorBrightGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Point is a (row, col) offset or board position.
type Point struct {
	R, C int
}

// shapes are the spawn orientations as offsets from the piece origin.
var shapes = map[Kind][4]Point{
	KindI: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	KindJ: {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	KindL: {{0, 2}, {1, 0}, {1, 1}, {1, 2}},
	KindO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	KindS: {{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	KindT: {{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	KindZ: {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Cells [4]Point // Offsets from Pos
	Pos   Point
}

// newPiece places a piece of kind k at the spawn position for a board cols
// wide: one row above the top, left of centre.
func newPiece(k Kind, cols int) Piece {
	return Piece{
		Kind:  k,
		Cells: shapes[k],
		Pos:   Point{R: -1, C: cols/2 - 1},
	}
}

// Blocks returns the absolute board positions the piece covers.
func (p Piece) Blocks() [4]Point {
	var out [4]Point
	for i, c := range p.Cells {
		out[i] = Point{R: p.Pos.R + c.R, C: p.Pos.C + c.C}
	}
	return out
}

// moved returns a copy shifted by dr rows and dc columns.
func (p Piece) moved(dr, dc int) Piece {
	p.Pos.R += dr
	p.Pos.C += dc
	return p
}

// rotated returns the piece turned clockwise inside its bounding square:
// 4x4 for I, 3x3 for the rest. O is symmetric and comes back unchanged.
func (p Piece) rotated() Piece {
	if p.Kind == KindO {
		return p
	}
	last := 2 // Highest index inside the bounding square
	if p.Kind == KindI {
		last = 3
	}
	for i, c := range p.Cells {
		p.Cells[i] = Point{R: c.C, C: last - c.R}
	}
	return p
}
