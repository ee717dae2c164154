package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Speed bounds in ticks between bot moves (60 ticks per second).
const (
	minInterval = 5
	maxInterval = 120
)

// handleInput processes the keyboard controls.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.startNewGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.interval = max(minInterval, g.interval/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.interval = min(maxInterval, g.interval*2)
	}
}
