// Package engine implements position evaluation, move generation, and the
// beam-search solver for the 8x8 Block Blast puzzle.
package engine

import (
	"math"

	"github.com/kiratopat/blockblast/internal/board"
)

// ScoringWeights are the tunable coefficients of the evaluation function.
// Penalty components carry their sign in the weight.
type ScoringWeights struct {
	EmptySpace     float64 `yaml:"empty_space"`
	Combo          float64 `yaml:"combo"`
	Survival       float64 `yaml:"survival"`
	HeightVariance float64 `yaml:"height_variance"`
	Holes          float64 `yaml:"holes"`
}

// DefaultWeights returns the tuned default weights.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		EmptySpace:     1.0,
		Combo:          10.0,
		Survival:       5.0,
		HeightVariance: -0.5,
		Holes:          -2.0,
	}
}

// Evaluator scores a board-plus-remaining-pieces tuple. Higher is better.
type Evaluator struct {
	weights ScoringWeights
}

// NewEvaluator creates an evaluator with the given weights.
func NewEvaluator(weights ScoringWeights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Weights returns the current weights.
func (e *Evaluator) Weights() ScoringWeights {
	return e.weights
}

// SetWeights replaces the weights.
func (e *Evaluator) SetWeights(weights ScoringWeights) {
	e.weights = weights
}

// Evaluate returns the weighted heuristic score of the state. The
// components are summed in a fixed order so the result is deterministic
// for a given weight set.
func (e *Evaluator) Evaluate(s *board.GameState) float64 {
	g := s.Board()

	score := e.weights.EmptySpace * EmptySpace(g)
	score += e.weights.Combo * ComboScore(s.Combo())
	score += e.weights.Survival * e.Survival(s)
	score += e.weights.HeightVariance * g.HeightVariance()
	score += e.weights.Holes * float64(g.CountHoles())
	return score
}

// EmptySpace returns the number of empty cells.
func EmptySpace(g *board.Grid) float64 {
	return float64(g.EmptyCount())
}

// ComboScore returns 2^combo for a positive combo counter, 0 otherwise.
func ComboScore(combo int) float64 {
	if combo <= 0 {
		return 0
	}
	return math.Pow(2, float64(combo))
}

// Survival returns the mean number of legal (rotation, anchor) placements
// of the unused pieces on the current board, or 0 with no unused pieces.
// Few legal placements mean the board is close to a trap.
func (e *Evaluator) Survival(s *board.GameState) float64 {
	g := s.Board()
	total := 0
	pieces := 0
	for i := 0; i < board.PiecesPerTurn; i++ {
		if s.PieceUsed(i) || s.Piece(i).IsEmpty() {
			continue
		}
		pieces++
		total += g.CountPlacements(s.Piece(i))
	}
	if pieces == 0 {
		return 0
	}
	return float64(total) / float64(pieces)
}

// Reachability returns the number of empty cells with at least one empty
// orthogonal neighbor.
func Reachability(g *board.Grid) int {
	reachable := 0
	for y := 0; y < board.BoardSize; y++ {
		for x := 0; x < board.BoardSize; x++ {
			if g.IsOccupied(x, y) {
				continue
			}
			if !g.IsOccupied(x-1, y) || !g.IsOccupied(x+1, y) ||
				!g.IsOccupied(x, y-1) || !g.IsOccupied(x, y+1) {
				reachable++
			}
		}
	}
	return reachable
}

// Fragmentation returns the number of isolated empty cells: empty cells
// whose four orthogonal neighbors are all occupied or off the board.
func Fragmentation(g *board.Grid) int {
	isolated := 0
	for y := 0; y < board.BoardSize; y++ {
		for x := 0; x < board.BoardSize; x++ {
			if g.IsOccupied(x, y) {
				continue
			}
			if g.IsOccupied(x-1, y) && g.IsOccupied(x+1, y) &&
				g.IsOccupied(x, y-1) && g.IsOccupied(x, y+1) {
				isolated++
			}
		}
	}
	return isolated
}

// PotentialClears returns the number of rows and columns within two cells
// of completion.
func PotentialClears(g *board.Grid) int {
	potential := 0
	mask := g.Mask()
	for i := 0; i < board.BoardSize; i++ {
		if (mask & board.RowMask[i]).PopCount() >= board.BoardSize-2 {
			potential++
		}
		if (mask & board.ColMask[i]).PopCount() >= board.BoardSize-2 {
			potential++
		}
	}
	return potential
}
