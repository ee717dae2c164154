package ui

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kiratopat/blockblast/internal/board"
	"github.com/kiratopat/blockblast/internal/engine"
	"github.com/kiratopat/blockblast/internal/storage"
)

// Game implements ebiten.Game: it runs the solver against a random piece
// stream and animates the placements one move per tick interval.
type Game struct {
	state  board.GameState
	solver *engine.Solver
	stats  engine.Stats
	rng    *rand.Rand

	renderer *Renderer
	store    *storage.Storage

	// Moves still to animate from the last computed sequence.
	pending    board.MoveSequence
	pendingIdx int
	lastPlaced board.Bitboard

	paused   bool
	stepOnce bool
	interval int // ticks between moves
	ticker   int

	turns     int
	lines     int
	best      int
	gameStart time.Time
}

// NewGame creates the viewer. Storage problems are non-fatal: the game
// runs without persistence and logs the cause.
func NewGame() *Game {
	cfg := engine.DefaultConfig()

	var store *storage.Storage
	best := 0
	if s, err := storage.NewStorage(); err != nil {
		log.Printf("[UI] Storage disabled: %v", err)
	} else {
		store = s
		if prefs, err := s.LoadPreferences(); err == nil {
			cfg.BeamWidth = prefs.BeamWidth
			cfg.MaxDepth = prefs.MaxDepth
			cfg.UseParallel = prefs.UseParallel
		}
		if stats, err := s.LoadStats(); err == nil {
			best = stats.BestScore
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[UI] Stored config invalid (%v), using defaults", err)
		cfg = engine.DefaultConfig()
	}

	solver, err := engine.NewSolver(cfg)
	if err != nil {
		log.Fatalf("[UI] Solver: %v", err)
	}

	g := &Game{
		solver:   solver,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		renderer: NewRenderer(),
		store:    store,
		interval: 30,
		best:     best,
	}
	g.startNewGame()
	return g
}

// startNewGame resets the state and deals the first bag.
func (g *Game) startNewGame() {
	g.state.Reset()
	g.state.SetPieces(board.RandomBag(g.rng))
	g.pending = board.MoveSequence{}
	g.pendingIdx = 0
	g.lastPlaced = board.EmptyBoard
	g.turns = 1
	g.lines = 0
	g.stats = engine.Stats{}
	g.gameStart = time.Now()
}

// finishGame records the result and starts over.
func (g *Game) finishGame() {
	score := g.state.Score()
	if score > g.best {
		g.best = score
	}
	if g.store != nil {
		err := g.store.RecordGame(storage.GameResult{
			Score:    score,
			Turns:    g.turns,
			Lines:    g.lines,
			Duration: time.Since(g.gameStart),
		})
		if err != nil {
			log.Printf("[UI] Recording game failed: %v", err)
		}
	}
	log.Printf("[UI] Game over: score %d, turns %d", score, g.turns)
	g.startNewGame()
}

// step advances the bot by one placement, dealing bags and computing
// sequences as needed.
func (g *Game) step() {
	if g.pendingIdx < g.pending.Placed {
		move := g.pending.Moves[g.pendingIdx]
		g.pendingIdx++

		piece := g.state.Piece(move.PieceIndex).Rotations()[move.Rotation]
		g.lastPlaced = piece.Mask() << move.Anchor.Index()

		result, err := g.state.Apply(move)
		if err != nil {
			log.Printf("[UI] Move rejected: %v", err)
			g.finishGame()
			return
		}
		g.lines += result.Lines()
		return
	}

	if g.state.RemainingPieces() == 0 {
		g.state.SetPieces(board.RandomBag(g.rng))
		g.turns++
	}

	g.pending = g.solver.FindBestSequence(&g.state)
	g.stats = g.solver.Stats()
	g.pendingIdx = 0

	if g.pending.Placed == 0 {
		g.finishGame()
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.handleInput()

	if g.paused && !g.stepOnce {
		return nil
	}

	g.ticker++
	if g.ticker < g.interval && !g.stepOnce {
		return nil
	}
	g.ticker = 0
	g.stepOnce = false

	g.step()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.renderer.DrawBoard(screen, g.state.Board(), g.lastPlaced)
	g.renderer.DrawTray(screen, &g.state)
	g.DrawPanel(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close releases the storage handle.
func (g *Game) Close() {
	if g.store != nil {
		g.store.Close()
	}
}
