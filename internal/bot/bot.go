package bot

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/kiratopat/blockblast/internal/board"
	"github.com/kiratopat/blockblast/internal/engine"
)

// Bot owns a game state and a solver and exposes the operations the CLI
// and the UI drive: new game, install a bag, compute and execute the best
// sequence.
type Bot struct {
	state  board.GameState
	solver *engine.Solver
	log    zerolog.Logger
}

// New creates a bot with the given solver configuration.
func New(cfg engine.Config, logger zerolog.Logger) (*Bot, error) {
	solver, err := engine.NewSolver(cfg)
	if err != nil {
		return nil, err
	}
	return &Bot{solver: solver, log: logger}, nil
}

// State returns the bot's game state.
func (b *Bot) State() *board.GameState {
	return &b.state
}

// NewGame resets the board, score, and combo.
func (b *Bot) NewGame() {
	b.state.Reset()
}

// SetPieces installs the three-piece bag and clears all used flags.
func (b *Bot) SetPieces(pieces [board.PiecesPerTurn]board.Piece) {
	b.state.SetPieces(pieces)
}

// SetWeights replaces the scoring weights, keeping the rest of the
// configuration.
func (b *Bot) SetWeights(weights engine.ScoringWeights) error {
	cfg := b.solver.Config()
	cfg.Weights = weights
	return b.solver.SetConfig(cfg)
}

// FindBestSequence computes the best move sequence for the current state.
func (b *Bot) FindBestSequence() board.MoveSequence {
	seq := b.solver.FindBestSequence(&b.state)
	stats := b.solver.Stats()
	b.log.Debug().
		Int("placed", seq.Placed).
		Float64("score", seq.TotalScore).
		Int("nodes_generated", stats.NodesGenerated).
		Int("nodes_evaluated", stats.NodesEvaluated).
		Dur("elapsed", stats.Duration).
		Msg("sequence computed")
	return seq
}

// ApplySequence applies the sequence's moves in order to the bot's state.
// It returns true only if every move applied.
func (b *Bot) ApplySequence(seq board.MoveSequence) bool {
	for _, m := range seq.Slice() {
		if _, err := b.state.Apply(m); err != nil {
			b.log.Warn().Err(err).Stringer("move", m).Msg("sequence move rejected")
			return false
		}
	}
	return true
}

// BoardString returns the diagnostic rendering of the board.
func (b *Bot) BoardString() string {
	return b.state.Board().String()
}

// Stats returns the solver statistics of the last computation.
func (b *Bot) Stats() engine.Stats {
	return b.solver.Stats()
}

// GameReport summarizes one automatic game.
type GameReport struct {
	Score int
	Turns int
}

// Turn safety stop for automatic play; a stuck heuristic loop would
// otherwise run forever on a lucky piece stream.
const maxAutoTurns = 100

// RunAutomatic plays games full games with random bags drawn from rng and
// returns one report per game.
func (b *Bot) RunAutomatic(games int, rng *rand.Rand) []GameReport {
	reports := make([]GameReport, 0, games)

	for game := 0; game < games; game++ {
		b.NewGame()
		turns := 0

		for turns < maxAutoTurns {
			b.SetPieces(board.RandomBag(rng))

			seq := b.FindBestSequence()
			if seq.Placed == 0 {
				break
			}
			if !b.ApplySequence(seq) {
				break
			}
			turns++

			if b.state.IsGameOver() {
				break
			}
		}

		report := GameReport{Score: b.state.Score(), Turns: turns}
		reports = append(reports, report)
		b.log.Info().
			Int("game", game+1).
			Int("score", report.Score).
			Int("turns", report.Turns).
			Msg("game finished")
	}
	return reports
}
