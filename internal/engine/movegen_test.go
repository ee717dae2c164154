package engine

import (
	"testing"

	"github.com/kiratopat/blockblast/internal/board"
)

func TestGenerateMovesMatchesCanPlace(t *testing.T) {
	g := board.GridFromMask(0x0000FF000000F00F)
	var gen MoveGenerator

	for shape := 0; shape < board.NumShapes; shape++ {
		piece := board.ShapePiece(board.Shape(shape))
		moves := gen.GenerateMoves(&g, piece, 0)

		// Every emitted move is placeable.
		seen := make(map[board.Move]bool, len(moves))
		for _, m := range moves {
			rot := piece.Rotations()[m.Rotation]
			if !g.CanPlace(rot, m.Anchor) {
				t.Errorf("%v: emitted unplaceable move %v", board.Shape(shape), m)
			}
			if seen[m] {
				t.Errorf("%v: duplicate move %v", board.Shape(shape), m)
			}
			seen[m] = true
		}

		// And every placeable (rotation, anchor) is emitted.
		if want := g.CountPlacements(piece); len(moves) != want {
			t.Errorf("%v: emitted %d moves, CountPlacements says %d", board.Shape(shape), len(moves), want)
		}
	}
}

func TestGenerateMovesOrdering(t *testing.T) {
	var g board.Grid
	var gen MoveGenerator

	moves := gen.GenerateMoves(&g, board.ShapePiece(board.ShapeLSmall), 1)
	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		if cur.Rotation < prev.Rotation {
			t.Fatalf("rotation order violated at %d: %v then %v", i, prev, cur)
		}
		if cur.Rotation == prev.Rotation && cur.Anchor.Index() <= prev.Anchor.Index() {
			t.Fatalf("anchor order violated at %d: %v then %v", i, prev, cur)
		}
	}

	for _, m := range moves {
		if m.PieceIndex != 1 {
			t.Fatalf("piece index not preserved: %v", m)
		}
	}
}

func TestGenerateAllSequences(t *testing.T) {
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
	})
	var gen MoveGenerator

	sequences := gen.GenerateAllSequences(&s, 500)
	if len(sequences) == 0 {
		t.Fatal("expected sequences on an empty board")
	}
	if len(sequences) > 500 {
		t.Fatalf("limit not honored: %d sequences", len(sequences))
	}

	for _, seq := range sequences {
		if seq.Placed < 1 || seq.Placed > board.PiecesPerTurn {
			t.Fatalf("sequence length %d out of range", seq.Placed)
		}
		// Distinct piece indices within a sequence.
		var used [board.PiecesPerTurn]bool
		for _, m := range seq.Slice() {
			if used[m.PieceIndex] {
				t.Fatalf("piece %d repeated in sequence", m.PieceIndex)
			}
			used[m.PieceIndex] = true
		}
		// On an open board every enumerated sequence runs to full length.
		if seq.Placed != board.PiecesPerTurn {
			t.Fatalf("expected full-length sequences on an open board, got %d", seq.Placed)
		}
	}
}

func TestGenerateAllSequencesReplayable(t *testing.T) {
	// Sequences must replay cleanly even when they cross a line clear.
	s := board.NewGameState([board.PiecesPerTurn]board.Piece{
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
		board.ShapePiece(board.ShapeSingle),
	})
	for x := 0; x < 7; x++ {
		s.Board().SetCell(x, 0, true)
	}

	var gen MoveGenerator
	for _, seq := range gen.GenerateAllSequences(&s, 100) {
		replay := s.Clone()
		for _, m := range seq.Slice() {
			if _, err := replay.Apply(m); err != nil {
				t.Fatalf("sequence does not replay: %v at %v", err, m)
			}
		}
	}
}

func TestGeneratePrunedMoves(t *testing.T) {
	var g board.Grid
	var gen MoveGenerator
	piece := board.ShapePiece(board.ShapeSingle)

	pruned := gen.GeneratePrunedMoves(&g, piece, 0, 10)
	if len(pruned) > 10 {
		t.Fatalf("expected at most 10 moves, got %d", len(pruned))
	}
	if len(pruned) == 0 {
		t.Fatal("expected sampled moves")
	}

	// Below the cap the full list comes back.
	full := gen.GeneratePrunedMoves(&g, piece, 0, 100)
	if len(full) != 64 {
		t.Fatalf("expected the full 64 moves, got %d", len(full))
	}
}
