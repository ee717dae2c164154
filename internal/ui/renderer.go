package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kiratopat/blockblast/internal/board"
)

// Layout constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640

	CellSize    = 64
	BoardPx     = CellSize * board.BoardSize
	BoardMargin = 48

	TrayX        = BoardMargin + BoardPx + 48
	TrayY        = BoardMargin
	TrayCellSize = 22
	TraySlotH    = 130
)

var (
	colorBackground = color.RGBA{0x1e, 0x1e, 0x2a, 0xff}
	colorGridLine   = color.RGBA{0x3a, 0x3a, 0x4c, 0xff}
	colorEmptyCell  = color.RGBA{0x2a, 0x2a, 0x38, 0xff}
	colorBlock      = color.RGBA{0x4f, 0x9d, 0xde, 0xff}
	colorLastMove   = color.RGBA{0xf0, 0xc0, 0x50, 0xff}
	colorTrayPiece  = color.RGBA{0x6f, 0xc2, 0x7a, 0xff}
	colorTrayUsed   = color.RGBA{0x4a, 0x4a, 0x58, 0xff}
)

// Renderer draws the board and the piece tray.
type Renderer struct {
	sprites *SpriteManager
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{sprites: NewSpriteManager()}
}

// DrawBoard renders the grid, highlighting the cells of the most recent
// placement.
func (r *Renderer) DrawBoard(screen *ebiten.Image, g *board.Grid, lastMove board.Bitboard) {
	vector.DrawFilledRect(screen,
		BoardMargin-4, BoardMargin-4, BoardPx+8, BoardPx+8,
		colorGridLine, false)

	for y := 0; y < board.BoardSize; y++ {
		for x := 0; x < board.BoardSize; x++ {
			px := float32(BoardMargin + x*CellSize)
			py := float32(BoardMargin + y*CellSize)
			idx := board.Cell{X: x, Y: y}.Index()

			switch {
			case lastMove.IsSet(idx):
				r.drawTile(screen, px, py, CellSize, colorLastMove)
			case g.Mask().IsSet(idx):
				r.drawTile(screen, px, py, CellSize, colorBlock)
			default:
				vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, colorEmptyCell, false)
			}
		}
	}
}

// drawTile draws one block cell, preferring the SVG sprite tinted to the
// given color and falling back to a flat rectangle.
func (r *Renderer) drawTile(screen *ebiten.Image, x, y float32, size int, tint color.RGBA) {
	tile := r.sprites.Tile(size)
	if tile == nil {
		vector.DrawFilledRect(screen, x+1, y+1, float32(size)-2, float32(size)-2, tint, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(tile, op)
}

// DrawTray renders the three bag pieces beside the board, graying out the
// ones already placed.
func (r *Renderer) DrawTray(screen *ebiten.Image, state *board.GameState) {
	for i := 0; i < board.PiecesPerTurn; i++ {
		piece := state.Piece(i)
		if piece.IsEmpty() {
			continue
		}

		tint := colorTrayPiece
		if state.PieceUsed(i) {
			tint = colorTrayUsed
		}

		originX := float32(TrayX)
		originY := float32(TrayY + i*TraySlotH)
		for _, c := range piece.Cells() {
			r.drawTile(screen,
				originX+float32(c.X*TrayCellSize),
				originY+float32(c.Y*TrayCellSize),
				TrayCellSize, tint)
		}
	}
}
