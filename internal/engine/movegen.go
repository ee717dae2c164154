package engine

import "github.com/kiratopat/blockblast/internal/board"

// MoveGenerator enumerates legal moves and move sequences.
type MoveGenerator struct{}

// GenerateMoves emits every legal (rotation, anchor) placement of the
// piece, with rotation index ascending and anchors in row-major order.
// This ordering is observable: the solver's stable sorts break score ties
// in first-encountered order.
func (MoveGenerator) GenerateMoves(g *board.Grid, p board.Piece, pieceIndex int) []board.Move {
	moves := make([]board.Move, 0, board.TotalCells)
	for rotIdx, rot := range p.Rotations() {
		for _, anchor := range g.ValidAnchors(rot) {
			moves = append(moves, board.Move{
				PieceIndex: pieceIndex,
				Anchor:     anchor,
				Rotation:   rotIdx,
			})
		}
	}
	return moves
}

// GenerateAllSequences enumerates move sequences of length 1..3 depth-first:
// for each unused piece slot in ascending order, each legal move is applied
// to a clone of the state and the enumeration recurses. A partial sequence
// is emitted when no further move is legal. Enumeration stops once limit
// sequences have been collected.
//
// Each step clones the state instead of undoing, so sequences that cross a
// line-clearing placement are enumerated correctly.
func (gen MoveGenerator) GenerateAllSequences(s *board.GameState, limit int) []board.MoveSequence {
	sequences := make([]board.MoveSequence, 0, min(limit, 256))
	state := s.Clone()
	gen.generateSequences(&state, board.MoveSequence{}, &sequences, limit)
	return sequences
}

func (gen MoveGenerator) generateSequences(s *board.GameState, seq board.MoveSequence, out *[]board.MoveSequence, limit int) {
	if len(*out) >= limit {
		return
	}
	if seq.Placed == board.PiecesPerTurn {
		*out = append(*out, seq)
		return
	}

	extended := false
	for i := 0; i < board.PiecesPerTurn; i++ {
		if s.PieceUsed(i) {
			continue
		}
		for _, m := range gen.GenerateMoves(s.Board(), s.Piece(i), i) {
			if len(*out) >= limit {
				return
			}
			child := s.Clone()
			if _, err := child.Apply(m); err != nil {
				continue
			}
			extended = true
			next := seq
			next.Push(m)
			gen.generateSequences(&child, next, out, limit)
		}
	}

	if !extended && seq.Placed > 0 {
		*out = append(*out, seq)
	}
}

// GeneratePrunedMoves returns at most maxMoves moves sampled at a uniform
// index stride from the full move list. Callers accept the approximate
// coverage in exchange for a bounded branching factor.
func (gen MoveGenerator) GeneratePrunedMoves(g *board.Grid, p board.Piece, pieceIndex, maxMoves int) []board.Move {
	all := gen.GenerateMoves(g, p, pieceIndex)
	if maxMoves <= 0 || len(all) <= maxMoves {
		return all
	}

	pruned := make([]board.Move, 0, maxMoves)
	step := len(all) / maxMoves
	for i := 0; i < len(all) && len(pruned) < maxMoves; i += step {
		pruned = append(pruned, all[i])
	}
	return pruned
}
