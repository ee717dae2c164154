package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents the 8x8 grid where each bit corresponds to a cell.
// Bit 0 = (0,0), bit 7 = (7,0), bit 56 = (0,7) (row-major, x + 8*y).
type Bitboard uint64

// Row masks
const (
	Row0 Bitboard = 0x00000000000000FF
	Row1 Bitboard = 0x000000000000FF00
	Row2 Bitboard = 0x0000000000FF0000
	Row3 Bitboard = 0x00000000FF000000
	Row4 Bitboard = 0x000000FF00000000
	Row5 Bitboard = 0x0000FF0000000000
	Row6 Bitboard = 0x00FF000000000000
	Row7 Bitboard = 0xFF00000000000000
)

// Column masks
const (
	Col0 Bitboard = 0x0101010101010101
	Col1 Bitboard = 0x0202020202020202
	Col2 Bitboard = 0x0404040404040404
	Col3 Bitboard = 0x0808080808080808
	Col4 Bitboard = 0x1010101010101010
	Col5 Bitboard = 0x2020202020202020
	Col6 Bitboard = 0x4040404040404040
	Col7 Bitboard = 0x8080808080808080
)

// Special masks
const (
	EmptyBoard Bitboard = 0
	FullBoard  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// RowMask holds the row mask for each row (0-7).
var RowMask = [BoardSize]Bitboard{Row0, Row1, Row2, Row3, Row4, Row5, Row6, Row7}

// ColMask holds the column mask for each column (0-7).
var ColMask = [BoardSize]Bitboard{Col0, Col1, Col2, Col3, Col4, Col5, Col6, Col7}

// CellBB returns a bitboard with only the given cell set.
func CellBB(c Cell) Bitboard {
	return 1 << c.Index()
}

// Set sets the bit at the given cell index.
func (b Bitboard) Set(idx int) Bitboard {
	return b | (1 << idx)
}

// Clear clears the bit at the given cell index.
func (b Bitboard) Clear(idx int) Bitboard {
	return b &^ (1 << idx)
}

// IsSet returns true if the bit at the given cell index is set.
func (b Bitboard) IsSet(idx int) bool {
	return b&(1<<idx) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set cell index, or -1 when empty.
func (b Bitboard) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// PopLSB removes and returns the lowest set cell index.
func (b *Bitboard) PopLSB() int {
	idx := b.LSB()
	*b &= *b - 1
	return idx
}

// More returns true if any bits are set.
func (b Bitboard) More() bool {
	return b != 0
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Cells returns a slice of all cells that are set.
func (b Bitboard) Cells() []Cell {
	cells := make([]Cell, 0, b.PopCount())
	for b != 0 {
		cells = append(cells, CellFromIndex(b.PopLSB()))
	}
	return cells
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := "  0 1 2 3 4 5 6 7\n"
	for y := 0; y < BoardSize; y++ {
		s += fmt.Sprintf("%d ", y)
		for x := 0; x < BoardSize; x++ {
			if b.IsSet(Cell{x, y}.Index()) {
				s += "X "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}
