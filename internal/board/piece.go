package board

import (
	"fmt"
	"sort"
)

// Piece is an immutable polyomino. Cells are relative positions normalized
// so that min(x) = min(y) = 0. A piece carries a precomputed occupancy mask
// anchored at (0,0), which makes placement checks a shift-and-AND.
type Piece struct {
	cells  []Cell
	mask   Bitboard
	width  int
	height int

	// Deduplicated rotation variants in the order 0, 90, 180, 270
	// degrees. Populated at construction; variants themselves carry nil
	// and recompute on demand.
	rotations []Piece
}

// NewPiece constructs a piece from a raw cell-set. The set must be
// non-empty, free of duplicates, and fit inside the 8x8 board after
// normalization; otherwise ErrInvalidPiece is returned.
func NewPiece(cells []Cell) (Piece, error) {
	p, err := newNormalized(cells)
	if err != nil {
		return Piece{}, err
	}
	p.rotations = computeRotations(p)
	return p, nil
}

// MustPiece is NewPiece for statically-known shapes; it panics on error.
func MustPiece(cells []Cell) Piece {
	p, err := NewPiece(cells)
	if err != nil {
		panic(err)
	}
	return p
}

// newNormalized builds a piece without its rotation cache.
func newNormalized(cells []Cell) (Piece, error) {
	if len(cells) == 0 {
		return Piece{}, fmt.Errorf("%w: empty cell-set", ErrInvalidPiece)
	}

	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return Piece{}, fmt.Errorf("%w: duplicate cell %v", ErrInvalidPiece, c)
		}
		seen[c] = true
	}

	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := cells[0].X, cells[0].Y
	for _, c := range cells {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}

	width := maxX - minX + 1
	height := maxY - minY + 1
	if width > BoardSize || height > BoardSize {
		return Piece{}, fmt.Errorf("%w: %dx%d exceeds the board", ErrInvalidPiece, width, height)
	}

	normalized := make([]Cell, len(cells))
	var mask Bitboard
	for i, c := range cells {
		nc := Cell{X: c.X - minX, Y: c.Y - minY}
		normalized[i] = nc
		mask |= CellBB(nc)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Index() < normalized[j].Index()
	})

	return Piece{cells: normalized, mask: mask, width: width, height: height}, nil
}

// Cells returns the normalized cells in index order. The returned slice is
// shared; callers must not modify it.
func (p Piece) Cells() []Cell {
	return p.cells
}

// Mask returns the piece's occupancy mask anchored at (0,0).
func (p Piece) Mask() Bitboard {
	return p.mask
}

// Size returns the number of cells.
func (p Piece) Size() int {
	return len(p.cells)
}

// Width returns the bounding-box width.
func (p Piece) Width() int {
	return p.width
}

// Height returns the bounding-box height.
func (p Piece) Height() int {
	return p.height
}

// IsEmpty returns true for the zero Piece.
func (p Piece) IsEmpty() bool {
	return len(p.cells) == 0
}

// Equal reports shape equality. Normalized pieces are equal iff their
// occupancy masks are equal.
func (p Piece) Equal(other Piece) bool {
	return p.mask == other.mask
}

// Rotate90 returns the piece rotated a quarter turn by (x,y) -> (y,-x) and
// renormalized. With Y growing downward, this turns the piece
// counterclockwise as drawn.
func (p Piece) Rotate90() Piece {
	return p.rotate(func(c Cell) Cell { return Cell{X: c.Y, Y: -c.X} })
}

// Rotate180 returns the piece rotated 180 degrees and renormalized.
func (p Piece) Rotate180() Piece {
	return p.rotate(func(c Cell) Cell { return Cell{X: -c.X, Y: -c.Y} })
}

// Rotate270 returns the piece rotated three quarter turns by (x,y) -> (-y,x)
// and renormalized: one quarter turn clockwise as drawn.
func (p Piece) Rotate270() Piece {
	return p.rotate(func(c Cell) Cell { return Cell{X: -c.Y, Y: c.X} })
}

func (p Piece) rotate(f func(Cell) Cell) Piece {
	rotated := make([]Cell, len(p.cells))
	for i, c := range p.cells {
		rotated[i] = f(c)
	}
	// Rotation of a valid piece cannot fail.
	r, err := newNormalized(rotated)
	if err != nil {
		panic(err)
	}
	return r
}

// Rotations returns the distinct rotation variants in the order 0, 90,
// 180, 270 degrees, with any variant equal to an earlier one omitted. The
// piece itself is always element 0.
func (p Piece) Rotations() []Piece {
	if p.rotations != nil {
		return p.rotations
	}
	return computeRotations(p)
}

func computeRotations(p Piece) []Piece {
	variants := []Piece{p, p.Rotate90(), p.Rotate180(), p.Rotate270()}
	distinct := variants[:1]
	for _, v := range variants[1:] {
		dup := false
		for _, d := range distinct {
			if v.Equal(d) {
				dup = true
				break
			}
		}
		if !dup {
			distinct = append(distinct, v)
		}
	}
	return distinct
}

// String returns the piece's bounding box with occupied cells marked.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty piece"
	}
	s := ""
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.mask.IsSet(Cell{x, y}.Index()) {
				s += "X "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s + fmt.Sprintf("(%dx%d)\n", p.width, p.height)
}
