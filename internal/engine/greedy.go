package engine

import (
	"math"

	"github.com/kiratopat/blockblast/internal/board"
)

// GreedySolver is the baseline: it walks the three piece slots in order
// and commits the locally best move for each, never reconsidering piece
// order. It exists to benchmark the beam search against.
type GreedySolver struct {
	eval *Evaluator
	gen  MoveGenerator
}

// NewGreedySolver creates a greedy solver with the given weights.
func NewGreedySolver(weights ScoringWeights) *GreedySolver {
	return &GreedySolver{eval: NewEvaluator(weights)}
}

// Solve greedily places each unused piece, mutating the given state, and
// returns the sequence of moves it committed.
func (g *GreedySolver) Solve(state *board.GameState) board.MoveSequence {
	var seq board.MoveSequence

	for i := 0; i < board.PiecesPerTurn; i++ {
		if state.PieceUsed(i) {
			continue
		}

		best := board.NoMove
		bestScore := math.Inf(-1)
		for _, m := range g.gen.GenerateMoves(state.Board(), state.Piece(i), i) {
			clone := state.Clone()
			if _, err := clone.Apply(m); err != nil {
				continue
			}
			if score := g.eval.Evaluate(&clone); score > bestScore {
				bestScore = score
				best = m
			}
		}

		if best.IsValid() {
			best.Score = bestScore
			if _, err := state.Apply(best); err != nil {
				continue
			}
			seq.Push(best)
			seq.TotalScore += bestScore
		}
	}
	return seq
}
