package engine

import (
	"testing"

	"github.com/kiratopat/blockblast/internal/board"
)

func TestComboScore(t *testing.T) {
	if got := ComboScore(0); got != 0 {
		t.Errorf("combo 0: got %v, want 0", got)
	}
	if got := ComboScore(1); got != 2 {
		t.Errorf("combo 1: got %v, want 2", got)
	}
	if got := ComboScore(3); got != 8 {
		t.Errorf("combo 3: got %v, want 8", got)
	}
}

func TestSurvivalEmptyBoard(t *testing.T) {
	// A 1x1 single has 64 placements, an 8x1 line 8 horizontal plus 8
	// vertical, and a 2x2 square 49.
	line8 := board.MustPiece([]board.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0},
	})
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		line8,
		board.ShapePiece(board.ShapeSquare2),
	})

	e := NewEvaluator(DefaultWeights())
	want := (64.0 + 16.0 + 49.0) / 3.0
	if got := e.Survival(&s); got != want {
		t.Errorf("survival: got %v, want %v", got, want)
	}
}

func TestSurvivalNoUnusedPieces(t *testing.T) {
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{})
	e := NewEvaluator(DefaultWeights())
	if got := e.Survival(&s); got != 0 {
		t.Errorf("survival with empty bag: got %v, want 0", got)
	}
}

func TestEvaluateFixedOrder(t *testing.T) {
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeDot3),
		board.ShapePiece(board.ShapeT),
	})
	s.Board().SetCell(0, 0, true)
	s.Board().SetCell(4, 3, true)

	e := NewEvaluator(DefaultWeights())
	first := e.Evaluate(&s)
	for i := 0; i < 10; i++ {
		if got := e.Evaluate(&s); got != first {
			t.Fatalf("evaluation not deterministic: %v then %v", first, got)
		}
	}
}

func TestEvaluateZeroWeights(t *testing.T) {
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
	})
	e := NewEvaluator(ScoringWeights{})
	if got := e.Evaluate(&s); got != 0 {
		t.Errorf("zero weights: got %v, want 0", got)
	}
}

func TestEvaluateEmptyBoardComponents(t *testing.T) {
	// With an empty bag, only the empty-space component contributes.
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{})
	e := NewEvaluator(DefaultWeights())
	if got := e.Evaluate(&s); got != 64 {
		t.Errorf("empty board, empty bag: got %v, want 64", got)
	}
}

func TestEvaluatePenalties(t *testing.T) {
	// A single occupied cell at the top of a column creates holes and
	// height variance; the penalties must lower the score.
	bag := [board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
	}

	flat := board.NewGameState(bag)
	flat.Board().SetCell(3, 7, true) // bottom cell: no holes

	spiky := board.NewGameState(bag)
	spiky.Board().SetCell(3, 0, true) // top cell: seven holes below

	e := NewEvaluator(DefaultWeights())
	if e.Evaluate(&spiky) >= e.Evaluate(&flat) {
		t.Error("a hole-creating cell should evaluate worse than a bottom cell")
	}
}

func TestReachabilityAndFragmentation(t *testing.T) {
	var g board.Grid
	if got := Reachability(&g); got != 64 {
		t.Errorf("empty board reachability: got %d, want 64", got)
	}
	if got := Fragmentation(&g); got != 0 {
		t.Errorf("empty board fragmentation: got %d, want 0", got)
	}

	// Wall off (0,0): neighbors (1,0) and (0,1) occupied.
	g.SetCell(1, 0, true)
	g.SetCell(0, 1, true)
	if got := Fragmentation(&g); got != 1 {
		t.Errorf("fragmentation with isolated corner: got %d, want 1", got)
	}
}

func TestPotentialClears(t *testing.T) {
	var g board.Grid
	if got := PotentialClears(&g); got != 0 {
		t.Errorf("empty board potential clears: got %d, want 0", got)
	}

	// Row 0 with six cells filled is within two of completion.
	for x := 0; x < 6; x++ {
		g.SetCell(x, 0, true)
	}
	if got := PotentialClears(&g); got != 1 {
		t.Errorf("potential clears: got %d, want 1", got)
	}
}
