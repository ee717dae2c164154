package board

import "fmt"

// Grid is the 8x8 occupancy grid. It is a value type; copying a Grid copies
// the whole board.
type Grid struct {
	mask Bitboard
}

// GridFromMask builds a grid from a 64-bit occupancy mask.
func GridFromMask(mask Bitboard) Grid {
	return Grid{mask: mask}
}

// GridFromBools builds a grid from 64 booleans in row-major order.
func GridFromBools(cells []bool) (Grid, error) {
	if len(cells) != TotalCells {
		return Grid{}, fmt.Errorf("expected %d cells, got %d", TotalCells, len(cells))
	}
	var mask Bitboard
	for i, occupied := range cells {
		if occupied {
			mask = mask.Set(i)
		}
	}
	return Grid{mask: mask}, nil
}

// Mask returns the grid's occupancy mask.
func (g *Grid) Mask() Bitboard {
	return g.mask
}

// IsOccupied returns true if the cell is occupied. Out-of-bounds positions
// report occupied so placement checks short-circuit.
func (g *Grid) IsOccupied(x, y int) bool {
	if !(Cell{x, y}).Valid() {
		return true
	}
	return g.mask.IsSet(Cell{x, y}.Index())
}

// SetCell sets or clears a single cell. Out-of-bounds positions are ignored.
func (g *Grid) SetCell(x, y int, occupied bool) {
	c := Cell{x, y}
	if !c.Valid() {
		return
	}
	if occupied {
		g.mask = g.mask.Set(c.Index())
	} else {
		g.mask = g.mask.Clear(c.Index())
	}
}

// Clear empties the grid.
func (g *Grid) Clear() {
	g.mask = EmptyBoard
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	return g.mask.PopCount()
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	return TotalCells - g.mask.PopCount()
}

// IsEmpty returns true if no cell is occupied.
func (g *Grid) IsEmpty() bool {
	return g.mask.Empty()
}

// IsFull returns true if every cell is occupied.
func (g *Grid) IsFull() bool {
	return g.mask == FullBoard
}

// CanPlace returns true iff every cell of the piece, anchored at the given
// cell, is in bounds and empty. The bounding box is checked first so the
// mask shift cannot wrap across rows.
func (g *Grid) CanPlace(p Piece, anchor Cell) bool {
	if anchor.X < 0 || anchor.Y < 0 ||
		anchor.X+p.width > BoardSize || anchor.Y+p.height > BoardSize {
		return false
	}
	return g.mask&(p.mask<<anchor.Index()) == 0
}

// Place sets every cell of the piece anchored at the given cell. It reports
// ErrIllegalPlacement when the placement is out of bounds or collides.
func (g *Grid) Place(p Piece, anchor Cell) error {
	if !g.CanPlace(p, anchor) {
		return fmt.Errorf("%w: %d-cell piece at %v", ErrIllegalPlacement, p.Size(), anchor)
	}
	g.mask |= p.mask << anchor.Index()
	return nil
}

// Remove clears the cells of the piece anchored at the given cell. It is
// only meaningful for undoing a previously successful Place.
func (g *Grid) Remove(p Piece, anchor Cell) {
	if anchor.X < 0 || anchor.Y < 0 ||
		anchor.X+p.width > BoardSize || anchor.Y+p.height > BoardSize {
		return
	}
	g.mask &^= p.mask << anchor.Index()
}

// ClearResult reports what a ClearCompleteLines call removed.
type ClearResult struct {
	RowsCleared  int
	ColsCleared  int
	CellsCleared int // union cardinality; intersections counted once
	Combo        int // RowsCleared * ColsCleared
}

// Lines returns the total number of cleared lines.
func (r ClearResult) Lines() int {
	return r.RowsCleared + r.ColsCleared
}

// ClearCompleteLines detects every row and column that is complete in the
// current board, then clears the union of their cells in one step.
// Detection strictly precedes clearing, so a row and a column completed by
// the same placement are both cleared and their intersection is counted
// exactly once.
func (g *Grid) ClearCompleteLines() ClearResult {
	var result ClearResult
	var cleared Bitboard

	for y := 0; y < BoardSize; y++ {
		if g.mask&RowMask[y] == RowMask[y] {
			result.RowsCleared++
			cleared |= RowMask[y]
		}
	}
	for x := 0; x < BoardSize; x++ {
		if g.mask&ColMask[x] == ColMask[x] {
			result.ColsCleared++
			cleared |= ColMask[x]
		}
	}

	result.CellsCleared = cleared.PopCount()
	result.Combo = result.RowsCleared * result.ColsCleared
	g.mask &^= cleared
	return result
}

// CountHoles returns, summed across columns, the number of empty cells that
// lie below the topmost occupied cell of their column.
func (g *Grid) CountHoles() int {
	holes := 0
	for x := 0; x < BoardSize; x++ {
		foundOccupied := false
		for y := 0; y < BoardSize; y++ {
			if g.mask.IsSet(Cell{x, y}.Index()) {
				foundOccupied = true
			} else if foundOccupied {
				holes++
			}
		}
	}
	return holes
}

// ColumnHeight returns 8 minus the row of the topmost occupied cell in the
// column, or 0 for an empty column.
func (g *Grid) ColumnHeight(x int) int {
	col := g.mask & ColMask[x]
	if col.Empty() {
		return 0
	}
	return BoardSize - col.LSB()/BoardSize
}

// HeightVariance returns the variance of the eight column heights.
func (g *Grid) HeightVariance() float64 {
	var heights [BoardSize]int
	mean := 0.0
	for x := 0; x < BoardSize; x++ {
		heights[x] = g.ColumnHeight(x)
		mean += float64(heights[x])
	}
	mean /= BoardSize

	variance := 0.0
	for _, h := range heights {
		diff := float64(h) - mean
		variance += diff * diff
	}
	return variance / BoardSize
}

// ValidAnchors enumerates every anchor where the piece can be placed, in
// row-major order (y, then x).
func (g *Grid) ValidAnchors(p Piece) []Cell {
	anchors := make([]Cell, 0, TotalCells)
	for y := 0; y <= BoardSize-p.height; y++ {
		for x := 0; x <= BoardSize-p.width; x++ {
			if g.mask&(p.mask<<Cell{x, y}.Index()) == 0 {
				anchors = append(anchors, Cell{x, y})
			}
		}
	}
	return anchors
}

// CountPlacements returns the number of (rotation, anchor) pairs at which
// the piece can be placed, counting every distinct rotation variant.
func (g *Grid) CountPlacements(p Piece) int {
	count := 0
	for _, rot := range p.Rotations() {
		for y := 0; y <= BoardSize-rot.height; y++ {
			for x := 0; x <= BoardSize-rot.width; x++ {
				if g.mask&(rot.mask<<Cell{x, y}.Index()) == 0 {
					count++
				}
			}
		}
	}
	return count
}

// String returns the board as ASCII art with row and column indices.
func (g *Grid) String() string {
	return g.mask.String()
}
