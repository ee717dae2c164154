package board

import "fmt"

// Scoring constants for placements and line clears.
const (
	lineClearScore = 10
	comboBonus     = 5
)

// GameState holds the board, the current three-piece bag, the used mask,
// the running game score, and the combo counter. It is cheaply cloneable:
// all fields have value semantics (piece cell slices are immutable and may
// be shared between clones).
type GameState struct {
	grid   Grid
	pieces [PiecesPerTurn]Piece
	used   [PiecesPerTurn]bool
	score  int
	combo  int
}

// NewGameState creates a state with an empty board and the given bag.
func NewGameState(pieces [PiecesPerTurn]Piece) GameState {
	return GameState{pieces: pieces}
}

// Board returns the state's grid for inspection and setup.
func (s *GameState) Board() *Grid {
	return &s.grid
}

// SetBoard replaces the grid.
func (s *GameState) SetBoard(g Grid) {
	s.grid = g
}

// SetPieces installs a new three-piece bag and clears all used flags.
func (s *GameState) SetPieces(pieces [PiecesPerTurn]Piece) {
	s.pieces = pieces
	s.used = [PiecesPerTurn]bool{}
}

// Piece returns the piece in the given bag slot.
func (s *GameState) Piece(i int) Piece {
	return s.pieces[i]
}

// PieceUsed returns true if the slot's piece has been placed.
func (s *GameState) PieceUsed(i int) bool {
	return s.used[i]
}

// RemainingPieces returns the number of unused pieces.
func (s *GameState) RemainingPieces() int {
	n := 0
	for _, u := range s.used {
		if !u {
			n++
		}
	}
	return n
}

// Score returns the cumulative game score.
func (s *GameState) Score() int {
	return s.score
}

// Combo returns the current combo counter: the number of consecutive
// line-clearing placements since the last non-clearing placement.
func (s *GameState) Combo() int {
	return s.combo
}

// Apply places the move's piece in its selected rotation, marks the slot
// used, clears any completed lines, and updates score and combo. The
// returned ClearResult describes the lines removed by this placement.
func (s *GameState) Apply(m Move) (ClearResult, error) {
	if m.PieceIndex < 0 || m.PieceIndex >= PiecesPerTurn {
		return ClearResult{}, fmt.Errorf("%w: %d", ErrPieceIndexOutOfRange, m.PieceIndex)
	}
	if s.used[m.PieceIndex] {
		return ClearResult{}, fmt.Errorf("%w: slot %d", ErrPieceAlreadyUsed, m.PieceIndex)
	}

	rotations := s.pieces[m.PieceIndex].Rotations()
	if m.Rotation < 0 || m.Rotation >= len(rotations) {
		return ClearResult{}, fmt.Errorf("%w: rotation %d of %d", ErrIllegalPlacement, m.Rotation, len(rotations))
	}
	piece := rotations[m.Rotation]

	if err := s.grid.Place(piece, m.Anchor); err != nil {
		return ClearResult{}, err
	}
	s.used[m.PieceIndex] = true

	result := s.grid.ClearCompleteLines()

	s.score += piece.Size()
	if result.Lines() > 0 {
		s.combo++
		s.score += result.Lines()*lineClearScore + s.combo*comboBonus
	} else {
		s.combo = 0
	}

	return result, nil
}

// Undo removes the cells placed by the most recent Apply and clears the
// slot's used flag. It performs cell removal only: it cannot restore cells
// removed by a line clear, so it is valid only when the undone placement
// cleared no lines. Search paths should prefer Clone-then-Apply.
func (s *GameState) Undo(m Move) {
	if m.PieceIndex < 0 || m.PieceIndex >= PiecesPerTurn {
		return
	}
	rotations := s.pieces[m.PieceIndex].Rotations()
	if m.Rotation < 0 || m.Rotation >= len(rotations) {
		return
	}
	piece := rotations[m.Rotation]
	s.grid.Remove(piece, m.Anchor)
	s.used[m.PieceIndex] = false
	s.score -= piece.Size()
}

// HasValidMoves returns true iff at least one unused piece has at least one
// legal (rotation, anchor) on the current board.
func (s *GameState) HasValidMoves() bool {
	for i := 0; i < PiecesPerTurn; i++ {
		if s.used[i] || s.pieces[i].IsEmpty() {
			continue
		}
		for _, rot := range s.pieces[i].Rotations() {
			for y := 0; y <= BoardSize-rot.height; y++ {
				for x := 0; x <= BoardSize-rot.width; x++ {
					if s.grid.mask&(rot.mask<<Cell{x, y}.Index()) == 0 {
						return true
					}
				}
			}
		}
	}
	return false
}

// IsGameOver returns true when no unused piece can be placed.
func (s *GameState) IsGameOver() bool {
	return !s.HasValidMoves()
}

// Clone returns an independent deep copy of the state.
func (s *GameState) Clone() GameState {
	return *s
}

// Reset empties the board, clears used flags, and zeroes score and combo.
// The bag is kept until the next SetPieces.
func (s *GameState) Reset() {
	s.grid.Clear()
	s.used = [PiecesPerTurn]bool{}
	s.score = 0
	s.combo = 0
}

// String returns a diagnostic rendering of the state.
func (s *GameState) String() string {
	return fmt.Sprintf("score %d | combo %d | pieces left %d\n%s",
		s.score, s.combo, s.RemainingPieces(), s.grid.String())
}
