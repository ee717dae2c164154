package board

import (
	"testing"
)

func TestGridBasics(t *testing.T) {
	var g Grid
	if !g.IsEmpty() {
		t.Error("new grid should be empty")
	}
	if g.EmptyCount() != 64 || g.OccupiedCount() != 0 {
		t.Errorf("expected 64 empty / 0 occupied, got %d / %d", g.EmptyCount(), g.OccupiedCount())
	}

	g.SetCell(0, 0, true)
	if g.IsEmpty() {
		t.Error("grid should not be empty after SetCell")
	}
	if g.EmptyCount() != 63 {
		t.Errorf("expected 63 empty, got %d", g.EmptyCount())
	}
	if !g.IsOccupied(0, 0) {
		t.Error("(0,0) should be occupied")
	}

	// Out of bounds reads as occupied so placement checks short-circuit.
	if !g.IsOccupied(-1, 0) || !g.IsOccupied(8, 3) || !g.IsOccupied(0, 8) {
		t.Error("out-of-bounds cells should report occupied")
	}

	g.Clear()
	if !g.IsEmpty() {
		t.Error("grid should be empty after Clear")
	}
}

func TestPlacement(t *testing.T) {
	var g Grid
	square := ShapePiece(ShapeSquare2)

	if !g.CanPlace(square, Cell{0, 0}) {
		t.Fatal("2x2 square should fit at (0,0) on an empty grid")
	}
	if err := g.Place(square, Cell{0, 0}); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if g.OccupiedCount() != 4 {
		t.Errorf("expected 4 occupied cells, got %d", g.OccupiedCount())
	}

	if g.CanPlace(square, Cell{0, 0}) {
		t.Error("square should no longer fit at (0,0)")
	}
	if g.CanPlace(square, Cell{1, 1}) {
		t.Error("square should collide at (1,1)")
	}
	if !g.CanPlace(square, Cell{2, 0}) {
		t.Error("square should fit at (2,0)")
	}

	// Bounding box checks: anchors that push the piece off the board.
	if g.CanPlace(square, Cell{7, 0}) || g.CanPlace(square, Cell{0, 7}) || g.CanPlace(square, Cell{-1, 0}) {
		t.Error("out-of-bounds placements must be rejected")
	}

	if err := g.Place(square, Cell{1, 1}); err == nil {
		t.Error("expected IllegalPlacement error for colliding Place")
	}
}

func TestPlaceRemoveRoundTrip(t *testing.T) {
	g := GridFromMask(0x00FF00000000FF00)
	before := g.Mask()

	for _, shape := range []Shape{ShapeSingle, ShapeDot5, ShapeLLarge, ShapeSquare3} {
		piece := ShapePiece(shape)
		for _, rot := range piece.Rotations() {
			for _, anchor := range g.ValidAnchors(rot) {
				if err := g.Place(rot, anchor); err != nil {
					t.Fatalf("%v at %v: %v", shape, anchor, err)
				}
				g.Remove(rot, anchor)
				if g.Mask() != before {
					t.Fatalf("%v at %v: place+remove did not restore the board", shape, anchor)
				}
			}
		}
	}
}

func TestClearCompleteLines(t *testing.T) {
	var g Grid

	// One full row.
	for x := 0; x < BoardSize; x++ {
		g.SetCell(x, 0, true)
	}
	result := g.ClearCompleteLines()
	if result.RowsCleared != 1 || result.ColsCleared != 0 {
		t.Errorf("expected 1 row / 0 cols, got %d / %d", result.RowsCleared, result.ColsCleared)
	}
	if result.CellsCleared != 8 {
		t.Errorf("expected 8 cells cleared, got %d", result.CellsCleared)
	}
	if !g.IsEmpty() {
		t.Error("board should be empty after clearing the only row")
	}

	// One full column.
	for y := 0; y < BoardSize; y++ {
		g.SetCell(3, y, true)
	}
	result = g.ClearCompleteLines()
	if result.ColsCleared != 1 || result.RowsCleared != 0 {
		t.Errorf("expected 1 col / 0 rows, got %d / %d", result.ColsCleared, result.RowsCleared)
	}

	// A crossing row and column: intersection counted once.
	for x := 0; x < BoardSize; x++ {
		g.SetCell(x, 2, true)
	}
	for y := 0; y < BoardSize; y++ {
		g.SetCell(5, y, true)
	}
	result = g.ClearCompleteLines()
	if result.RowsCleared != 1 || result.ColsCleared != 1 {
		t.Errorf("expected 1 row and 1 col, got %d / %d", result.RowsCleared, result.ColsCleared)
	}
	if result.CellsCleared != 15 {
		t.Errorf("crossing row+col should clear 15 cells, got %d", result.CellsCleared)
	}
	if result.Combo != 1 {
		t.Errorf("expected combo 1, got %d", result.Combo)
	}
	if !g.IsEmpty() {
		t.Error("board should be empty after the cross clear")
	}
}

func TestClearRowFeedingColumn(t *testing.T) {
	// Row 0 filled at columns 0-6 and column 0 filled at rows 0-6.
	// Completing row 0 must not also clear column 0: detection happens
	// before any cell is removed, and column 0 is one cell short.
	var g Grid
	for x := 0; x < 7; x++ {
		g.SetCell(x, 0, true)
	}
	for y := 1; y < 7; y++ {
		g.SetCell(0, y, true)
	}
	g.SetCell(7, 0, true) // the placement that completes row 0

	result := g.ClearCompleteLines()
	if result.RowsCleared != 1 || result.ColsCleared != 0 {
		t.Errorf("expected 1 row / 0 cols, got %d / %d", result.RowsCleared, result.ColsCleared)
	}
	if result.CellsCleared != 8 {
		t.Errorf("expected 8 cells cleared, got %d", result.CellsCleared)
	}
	// Column 0 keeps rows 1..6 filled.
	if got := (g.Mask() & Col0).PopCount(); got != 6 {
		t.Errorf("column 0 should keep 6 cells, has %d", got)
	}
}

func TestClearFullBoard(t *testing.T) {
	g := GridFromMask(FullBoard)
	result := g.ClearCompleteLines()
	if result.RowsCleared != 8 || result.ColsCleared != 8 {
		t.Errorf("expected 8 rows and 8 cols, got %d / %d", result.RowsCleared, result.ColsCleared)
	}
	if result.CellsCleared != 64 {
		t.Errorf("expected all 64 cells cleared once, got %d", result.CellsCleared)
	}
	if result.Combo != 64 {
		t.Errorf("expected combo 64, got %d", result.Combo)
	}
	if !g.IsEmpty() {
		t.Error("board should be empty after a full-board clear")
	}
}

func TestCountHoles(t *testing.T) {
	var g Grid
	if g.CountHoles() != 0 {
		t.Error("empty board has no holes")
	}

	// Occupied at (2,1) leaves six empty cells below it in column 2.
	g.SetCell(2, 1, true)
	if got := g.CountHoles(); got != 6 {
		t.Errorf("expected 6 holes, got %d", got)
	}

	// Filling (2,2) removes one.
	g.SetCell(2, 2, true)
	if got := g.CountHoles(); got != 5 {
		t.Errorf("expected 5 holes, got %d", got)
	}
}

func TestHeightVariance(t *testing.T) {
	var g Grid
	if g.HeightVariance() != 0 {
		t.Error("empty board has zero height variance")
	}

	// Uniform height: variance stays zero.
	for x := 0; x < BoardSize; x++ {
		g.SetCell(x, 5, true)
	}
	if got := g.HeightVariance(); got != 0 {
		t.Errorf("uniform columns should have variance 0, got %v", got)
	}

	// One column to full height: heights are 8 and seven 3s.
	g.SetCell(0, 0, true)
	want := 0.0
	mean := (8.0 + 7*3.0) / 8.0
	for _, h := range []float64{8, 3, 3, 3, 3, 3, 3, 3} {
		want += (h - mean) * (h - mean)
	}
	want /= 8
	if got := g.HeightVariance(); got != want {
		t.Errorf("expected variance %v, got %v", want, got)
	}
}

func TestValidAnchors(t *testing.T) {
	var g Grid

	if got := len(g.ValidAnchors(ShapePiece(ShapeSingle))); got != 64 {
		t.Errorf("1x1 on empty board: expected 64 anchors, got %d", got)
	}
	if got := len(g.ValidAnchors(ShapePiece(ShapeSquare2))); got != 49 {
		t.Errorf("2x2 on empty board: expected 49 anchors, got %d", got)
	}
	if got := len(g.ValidAnchors(ShapePiece(ShapeDot5))); got != 32 {
		t.Errorf("1x5 on empty board: expected 32 anchors, got %d", got)
	}

	// Row-major ordering.
	anchors := g.ValidAnchors(ShapePiece(ShapeSingle))
	for i := 1; i < len(anchors); i++ {
		if anchors[i].Index() <= anchors[i-1].Index() {
			t.Fatalf("anchors not in row-major order at %d: %v then %v", i, anchors[i-1], anchors[i])
		}
	}
}

func TestCountPlacements(t *testing.T) {
	var g Grid
	if got := g.CountPlacements(ShapePiece(ShapeSingle)); got != 64 {
		t.Errorf("single: expected 64 placements, got %d", got)
	}
	// 1x5 line: 32 horizontal + 32 vertical.
	if got := g.CountPlacements(ShapePiece(ShapeDot5)); got != 64 {
		t.Errorf("dot5: expected 64 placements, got %d", got)
	}
	// 2x2 square has a single distinct rotation.
	if got := g.CountPlacements(ShapePiece(ShapeSquare2)); got != 49 {
		t.Errorf("square2: expected 49 placements, got %d", got)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	masks := []Bitboard{0, FullBoard, 0x00FF00000000FF00, 0x8000000000000001, 0x0123456789ABCDEF}
	for _, m := range masks {
		g := GridFromMask(m)
		if g.Mask() != m {
			t.Errorf("mask round trip failed for %016x: got %016x", uint64(m), uint64(g.Mask()))
		}
	}
}

func TestGridFromBools(t *testing.T) {
	cells := make([]bool, TotalCells)
	cells[0] = true
	cells[63] = true
	g, err := GridFromBools(cells)
	if err != nil {
		t.Fatalf("GridFromBools: %v", err)
	}
	if !g.IsOccupied(0, 0) || !g.IsOccupied(7, 7) {
		t.Error("expected corners occupied")
	}
	if g.OccupiedCount() != 2 {
		t.Errorf("expected 2 occupied cells, got %d", g.OccupiedCount())
	}

	if _, err := GridFromBools(make([]bool, 10)); err == nil {
		t.Error("expected error for wrong-length input")
	}
}
