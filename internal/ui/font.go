// Package ui implements the Block Blast viewer using Ebitengine: it renders
// the board and the piece tray while the bot plays.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{
		Source: regularSource,
		Size:   defaultFontSize,
	}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{
		Source: boldSource,
		Size:   titleFontSize,
	}
}
