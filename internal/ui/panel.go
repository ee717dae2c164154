package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/kiratopat/blockblast/internal/engine"
)

// Panel layout
const (
	panelX     = TrayX + 140
	panelY     = BoardMargin
	panelLineH = 22
)

var colorPanelText = color.RGBA{0xd8, 0xd8, 0xe0, 0xff}

// drawText renders one line at the given position.
func drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorPanelText)
	text.Draw(screen, s, face, op)
}

// DrawPanel renders the score, solver statistics, and key help.
func (g *Game) DrawPanel(screen *ebiten.Image) {
	y := float64(panelY)

	drawText(screen, boldFace, "Block Blast Bot", panelX, y)
	y += 2 * panelLineH

	drawText(screen, regularFace, fmt.Sprintf("Score: %d", g.state.Score()), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Combo: %d", g.state.Combo()), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Turn: %d", g.turns), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Lines: %d", g.lines), panelX, y)
	y += 2 * panelLineH

	stats := g.stats
	drawText(screen, regularFace, fmt.Sprintf("Nodes: %d", stats.NodesEvaluated), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Search: %d ms", stats.Duration.Milliseconds()), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Eval: %.1f", stats.BestScore), panelX, y)
	y += 2 * panelLineH

	grid := g.state.Board()
	drawText(screen, regularFace, fmt.Sprintf("Holes: %d", grid.CountHoles()), panelX, y)
	y += panelLineH
	drawText(screen, regularFace, fmt.Sprintf("Near lines: %d", engine.PotentialClears(grid)), panelX, y)
	y += 2 * panelLineH

	if g.best > 0 {
		drawText(screen, regularFace, fmt.Sprintf("Best game: %d", g.best), panelX, y)
		y += 2 * panelLineH
	}

	if g.paused {
		drawText(screen, boldFace, "PAUSED", panelX, y)
		y += 2 * panelLineH
	}

	drawText(screen, regularFace, "space  pause/resume", panelX, y)
	y += panelLineH
	drawText(screen, regularFace, "s      single step", panelX, y)
	y += panelLineH
	drawText(screen, regularFace, "n      new game", panelX, y)
	y += panelLineH
	drawText(screen, regularFace, "+ / -  speed", panelX, y)
}
