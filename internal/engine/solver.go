package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kiratopat/blockblast/internal/board"
)

// ErrInvalidConfig reports a solver configuration outside its domain.
var ErrInvalidConfig = errors.New("invalid solver config")

// Config specifies the solver's search parameters.
type Config struct {
	// BeamWidth is the number of frontier nodes retained per depth.
	BeamWidth int `yaml:"beam_width"`

	// MaxDepth bounds the sequence length, at most PiecesPerTurn.
	MaxDepth int `yaml:"max_depth"`

	// PruningThreshold in [0,1] controls how far below the best child a
	// node may score before it is dropped.
	PruningThreshold float64 `yaml:"pruning_threshold"`

	// UseParallel enables fork-join node expansion.
	UseParallel bool `yaml:"use_parallel"`

	// NumThreads is the worker count; 0 selects GOMAXPROCS.
	NumThreads int `yaml:"num_threads"`

	Weights ScoringWeights `yaml:"weights"`
}

// DefaultConfig returns the default search parameters.
func DefaultConfig() Config {
	return Config{
		BeamWidth:        50,
		MaxDepth:         board.PiecesPerTurn,
		PruningThreshold: 0.3,
		UseParallel:      true,
		NumThreads:       0,
		Weights:          DefaultWeights(),
	}
}

// Validate reports ErrInvalidConfig when a parameter is outside its domain.
func (c Config) Validate() error {
	if c.BeamWidth <= 0 {
		return fmt.Errorf("%w: beam width %d", ErrInvalidConfig, c.BeamWidth)
	}
	if c.MaxDepth < 1 || c.MaxDepth > board.PiecesPerTurn {
		return fmt.Errorf("%w: max depth %d not in [1,%d]", ErrInvalidConfig, c.MaxDepth, board.PiecesPerTurn)
	}
	if c.PruningThreshold < 0 || c.PruningThreshold > 1 {
		return fmt.Errorf("%w: pruning threshold %v not in [0,1]", ErrInvalidConfig, c.PruningThreshold)
	}
	if c.NumThreads < 0 {
		return fmt.Errorf("%w: num threads %d", ErrInvalidConfig, c.NumThreads)
	}
	return nil
}

// Stats accumulates over one solve call and resets on the next.
type Stats struct {
	NodesEvaluated int
	NodesGenerated int
	Duration       time.Duration
	BestScore      float64
}

// searchNode is one frontier entry: a cloned state, the partial sequence
// that produced it, its evaluation, and its depth. Nodes own their states;
// nothing is shared between siblings.
type searchNode struct {
	state board.GameState
	seq   board.MoveSequence
	score float64
	depth int
}

// Solver picks the best ordered move sequence with breadth-limited
// best-first beam search.
type Solver struct {
	cfg   Config
	eval  *Evaluator
	gen   MoveGenerator
	stats Stats
}

// NewSolver creates a solver, validating the configuration.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, eval: NewEvaluator(cfg.Weights)}, nil
}

// Config returns the solver's configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration after validating it.
func (s *Solver) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.eval.SetWeights(cfg.Weights)
	return nil
}

// Stats returns the statistics of the most recent solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// FindBestSequence runs the beam search and returns the highest-scored
// move sequence, up to three moves long. A state with no legal moves
// yields an empty sequence, not an error: that is the game-over signal.
func (s *Solver) FindBestSequence(state *board.GameState) board.MoveSequence {
	start := time.Now()
	s.stats = Stats{}

	beam := s.beamSearch(state, s.cfg.MaxDepth)
	s.stats.Duration = time.Since(start)

	if len(beam) == 0 || beam[0].seq.Placed == 0 {
		return board.MoveSequence{}
	}
	s.stats.BestScore = beam[0].score
	return beam[0].seq
}

// beamSearch expands the frontier one piece-placement per depth, keeping
// the top beamWidth nodes. The returned beam is sorted by descending score
// with ties in first-encountered order, which makes the result
// deterministic for a fixed weight set regardless of worker scheduling.
func (s *Solver) beamSearch(initial *board.GameState, maxDepth int) []searchNode {
	root := searchNode{state: initial.Clone()}
	root.score = s.eval.Evaluate(&root.state)
	s.stats.NodesEvaluated++

	beam := []searchNode{root}
	for depth := 0; depth < maxDepth && len(beam) > 0; depth++ {
		next := s.expandBeam(beam)
		next = s.pruneNodes(next)

		sort.SliceStable(next, func(i, j int) bool {
			return next[i].score > next[j].score
		})
		if len(next) > s.cfg.BeamWidth {
			next = next[:s.cfg.BeamWidth]
		}
		beam = next
	}
	return beam
}

// expandNode produces the node's children: every legal move of every
// unused piece, applied to a clone and evaluated. Finished nodes (no
// pieces left) are carried forward unchanged. Moves that fail to apply are
// swallowed; the child is simply not emitted. Stats go to the caller's
// partial so parallel workers never share a counter.
func (s *Solver) expandNode(node *searchNode, stats *Stats) []searchNode {
	if node.state.RemainingPieces() == 0 {
		return []searchNode{*node}
	}

	var children []searchNode
	for i := 0; i < board.PiecesPerTurn; i++ {
		if node.state.PieceUsed(i) {
			continue
		}
		for _, m := range s.gen.GenerateMoves(node.state.Board(), node.state.Piece(i), i) {
			child := searchNode{
				state: node.state.Clone(),
				seq:   node.seq,
				depth: node.depth + 1,
			}
			if _, err := child.state.Apply(m); err != nil {
				continue
			}
			child.score = s.eval.Evaluate(&child.state)
			stats.NodesEvaluated++

			m.Score = child.score
			child.seq.Push(m)
			child.seq.TotalScore = child.score

			children = append(children, child)
			stats.NodesGenerated++
		}
	}
	return children
}

// pruneNodes drops children scoring too far below the best child. The
// cutoff is max - threshold*|max|, which stays monotone when the best
// score is negative (a plain threshold*max would invert the filter there).
func (s *Solver) pruneNodes(nodes []searchNode) []searchNode {
	if len(nodes) == 0 {
		return nodes
	}

	maxScore := math.Inf(-1)
	for i := range nodes {
		maxScore = math.Max(maxScore, nodes[i].score)
	}
	cutoff := maxScore - s.cfg.PruningThreshold*math.Abs(maxScore)

	kept := nodes[:0]
	for i := range nodes {
		if nodes[i].score >= cutoff {
			kept = append(kept, nodes[i])
		}
	}
	return kept
}

// FindBestMove evaluates every legal move of one piece slot against the
// current state and returns the best, or (NoMove, false) when the slot is
// unusable or has no legal move.
func (s *Solver) FindBestMove(state *board.GameState, pieceIndex int) (board.Move, bool) {
	if pieceIndex < 0 || pieceIndex >= board.PiecesPerTurn || state.PieceUsed(pieceIndex) {
		return board.NoMove, false
	}

	moves := s.gen.GenerateMoves(state.Board(), state.Piece(pieceIndex), pieceIndex)
	if len(moves) == 0 {
		return board.NoMove, false
	}

	scores := make([]float64, len(moves))
	s.forEachMove(len(moves), func(i int) {
		clone := state.Clone()
		if _, err := clone.Apply(moves[i]); err != nil {
			scores[i] = math.Inf(-1)
			return
		}
		scores[i] = s.eval.Evaluate(&clone)
	})

	best := 0
	for i := 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	move := moves[best]
	move.Score = scores[best]
	return move, true
}

// SolveIterativeDeepening runs the search at depths 1, 2, ... within the
// wall-clock budget and returns the best sequence seen. A sequence that
// places more pieces outranks a shorter one; scores decide between
// sequences of equal length. The next depth is skipped once the budget is
// exhausted.
func (s *Solver) SolveIterativeDeepening(state *board.GameState, budget time.Duration) board.MoveSequence {
	start := time.Now()
	s.stats = Stats{}

	var best board.MoveSequence
	bestScore := math.Inf(-1)

	for depth := 1; depth <= s.cfg.MaxDepth; depth++ {
		if time.Since(start) >= budget {
			break
		}

		beam := s.beamSearch(state, depth)
		s.stats.Duration = time.Since(start)

		if len(beam) == 0 || beam[0].seq.Placed == 0 {
			continue
		}
		placed := beam[0].seq.Placed
		if placed > best.Placed || (placed == best.Placed && beam[0].score > bestScore) {
			bestScore = beam[0].score
			best = beam[0].seq
			s.stats.BestScore = bestScore
		}
	}
	return best
}
