// Package board implements the 8x8 Block Blast board using a 64-bit
// occupancy bitboard, plus the piece, move, and game-state types the
// solver operates on.
package board

import "fmt"

// Board dimensions.
const (
	BoardSize  = 8
	TotalCells = BoardSize * BoardSize
)

// PiecesPerTurn is the number of pieces dealt per bag.
const PiecesPerTurn = 3

// Cell addresses a board cell by coordinates. X grows rightward, Y grows
// downward, so (0,0) is the top-left corner. Piece definitions reuse Cell
// for their relative offsets, which is why the fields are plain ints.
type Cell struct {
	X, Y int
}

// Index returns the stable row-major index x + 8*y (0-63).
func (c Cell) Index() int {
	return c.Y*BoardSize + c.X
}

// Valid returns true if the cell lies on the board.
func (c Cell) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// CellFromIndex is the inverse of Index.
func CellFromIndex(idx int) Cell {
	return Cell{X: idx % BoardSize, Y: idx / BoardSize}
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
