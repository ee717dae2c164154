// Block Blast Bot viewer - watch the solver play, built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kiratopat/blockblast/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Block Blast Bot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
