// blockblast-bot is the headless solver CLI: enter a board and a bag and
// get the best move sequence, or let the bot play full games against a
// random piece stream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kiratopat/blockblast/internal/board"
	"github.com/kiratopat/blockblast/internal/bot"
	"github.com/kiratopat/blockblast/internal/engine"
)

var (
	autoGames  = flag.Int("auto", 0, "play N automatic games instead of interactive mode")
	beamWidth  = flag.Int("beam-width", 0, "beam search width (default 50)")
	maxDepth   = flag.Int("max-depth", 0, "maximum search depth 1-3 (default 3)")
	threads    = flag.Int("threads", 0, "worker count (default: all cores)")
	noParallel = flag.Bool("no-parallel", false, "disable parallel expansion")
	configFile = flag.String("config", "", "YAML config file with solver settings and weights")
	seed       = flag.Int64("seed", 0, "random seed for automatic games (default: time-based)")
	quiet      = flag.Bool("quiet", false, "only log warnings and errors")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if *quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		logger.Info().Str("path", *cpuprofile).Msg("CPU profiling enabled")
	}

	cfg, err := resolveConfig(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	b, err := bot.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create bot")
	}

	if *autoGames > 0 {
		runAutomatic(b, logger)
		return
	}
	runInteractive(b)
}

// resolveConfig layers the config file and flags over the defaults.
func resolveConfig(logger zerolog.Logger) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if *configFile != "" {
		loaded, err := bot.LoadConfigFile(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logger.Info().Str("path", *configFile).Msg("config loaded")
	}

	if *beamWidth > 0 {
		cfg.BeamWidth = *beamWidth
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *threads > 0 {
		cfg.NumThreads = *threads
	}
	if *noParallel {
		cfg.UseParallel = false
	}
	return cfg, cfg.Validate()
}

func runAutomatic(b *bot.Bot, logger zerolog.Logger) {
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	logger.Info().Int("games", *autoGames).Int64("seed", rngSeed).Msg("running automatic games")

	reports := b.RunAutomatic(*autoGames, rng)

	total := 0
	for _, r := range reports {
		total += r.Score
	}
	if len(reports) > 0 {
		fmt.Printf("average score over %d game(s): %d\n", len(reports), total/len(reports))
	}
}

func runInteractive(b *bot.Bot) {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Block Blast Bot ===")
	fmt.Println("Enter board state and pieces to get optimal moves")

	for {
		fmt.Println("\nOptions:")
		fmt.Println("1. Enter new board state")
		fmt.Println("2. Use empty board")
		fmt.Println("3. Quit")
		fmt.Print("Choice: ")

		choice, ok := readInt(in)
		if !ok || choice == 3 {
			return
		}

		switch choice {
		case 1:
			if !readBoard(in, b) {
				fmt.Println("Invalid board input!")
				continue
			}
		case 2:
			b.NewGame()
		default:
			fmt.Println("Invalid choice!")
			continue
		}

		fmt.Println("\nEnter 3 pieces:")
		b.SetPieces(readPieces(in))

		fmt.Println("\nCurrent board:")
		fmt.Println(b.BoardString())
		printPieces(b)

		fmt.Println("Computing best moves...")
		seq := b.FindBestSequence()
		printSequence(seq)
		printStats(b.Stats())
	}
}

// readBoard reads 8 lines of 8 characters; '.' is empty, 'X'/'x'/'1' is
// occupied.
func readBoard(in *bufio.Scanner, b *bot.Bot) bool {
	fmt.Println("Enter board state (8 lines of 8 characters, '.' for empty, 'X' for occupied):")

	b.NewGame()
	g := b.State().Board()
	for y := 0; y < board.BoardSize; y++ {
		if !in.Scan() {
			return false
		}
		line := strings.TrimSpace(in.Text())
		if len(line) != board.BoardSize {
			return false
		}
		for x := 0; x < board.BoardSize; x++ {
			switch line[x] {
			case 'X', 'x', '1':
				g.SetCell(x, y, true)
			case '.', '0':
			default:
				return false
			}
		}
	}
	return true
}

// readPieces reads three catalog numbers (1-13), 0 picking a random piece.
func readPieces(in *bufio.Scanner) [board.PiecesPerTurn]board.Piece {
	fmt.Println("Enter piece type for each (1-13 for predefined, 0 for random):")
	fmt.Println("1=Single, 2=Dot2, 3=Dot3, 4=Dot4, 5=Dot5, 6=Square2, 7=Square3")
	fmt.Println("8=L-Small, 9=L-Large, 10=T, 11=Z, 12=Plus, 13=Corner3")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var pieces [board.PiecesPerTurn]board.Piece
	for i := range pieces {
		fmt.Printf("Piece %d: ", i+1)
		n, ok := readInt(in)
		switch {
		case ok && n == 0:
			pieces[i] = board.RandomPiece(rng)
		case ok && n >= 1 && n <= board.NumShapes:
			pieces[i] = board.ShapePiece(board.Shape(n - 1))
		default:
			fmt.Println("Invalid type, using random piece.")
			pieces[i] = board.RandomPiece(rng)
		}
	}
	return pieces
}

func readInt(in *bufio.Scanner) (int, bool) {
	if !in.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return 0, false
	}
	return n, true
}

func printPieces(b *bot.Bot) {
	fmt.Println("Available pieces:")
	for i := 0; i < board.PiecesPerTurn; i++ {
		if b.State().PieceUsed(i) {
			continue
		}
		fmt.Printf("Piece %d:\n%s\n", i+1, b.State().Piece(i))
	}
}

func printSequence(seq board.MoveSequence) {
	fmt.Println("\n=== Best Move Sequence ===")
	fmt.Printf("Total score: %.2f\n", seq.TotalScore)
	fmt.Printf("Pieces placed: %d\n", seq.Placed)

	for i, m := range seq.Slice() {
		fmt.Printf("\nMove %d:\n", i+1)
		fmt.Printf("  Piece: %d\n", m.PieceIndex+1)
		fmt.Printf("  Position: %v\n", m.Anchor)
		fmt.Printf("  Rotation: %d\n", m.Rotation)
		fmt.Printf("  Score: %.2f\n", m.Score)
	}
}

func printStats(stats engine.Stats) {
	fmt.Println("\n=== Statistics ===")
	fmt.Printf("Nodes evaluated: %d\n", stats.NodesEvaluated)
	fmt.Printf("Nodes generated: %d\n", stats.NodesGenerated)
	fmt.Printf("Time: %d ms\n", stats.Duration.Milliseconds())
	fmt.Printf("Best score: %.2f\n", stats.BestScore)
}
