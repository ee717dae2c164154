package board

import "errors"

// Error kinds reported by piece construction and move application. Callers
// classify failures with errors.Is.
var (
	// ErrInvalidPiece reports an empty or malformed cell-set.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrPieceIndexOutOfRange reports a move whose piece index is not 0-2.
	ErrPieceIndexOutOfRange = errors.New("piece index out of range")

	// ErrPieceAlreadyUsed reports a move referencing an already-placed piece.
	ErrPieceAlreadyUsed = errors.New("piece already used")

	// ErrIllegalPlacement reports a placement that is out of bounds or
	// collides with occupied cells.
	ErrIllegalPlacement = errors.New("illegal placement")
)
