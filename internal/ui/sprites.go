package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/tiles/*.svg
var tileAssets embed.FS

// SpriteManager rasterizes the block tile sprite at the sizes the renderer
// needs. Rendering happens at a higher resolution so downscaling stays
// sharp.
type SpriteManager struct {
	tiles       map[int]*ebiten.Image // keyed by display size in pixels
	renderScale float64
}

// NewSpriteManager creates a sprite manager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		tiles:       make(map[int]*ebiten.Image),
		renderScale: 2.0,
	}
}

// Tile returns the block tile rendered at the given size, or nil when the
// asset could not be loaded (the renderer falls back to flat rectangles).
func (sm *SpriteManager) Tile(size int) *ebiten.Image {
	if img, ok := sm.tiles[size]; ok {
		return img
	}
	img := sm.renderTile(size)
	sm.tiles[size] = img
	return img
}

// renderTile rasterizes the embedded SVG tile at the requested size.
func (sm *SpriteManager) renderTile(size int) *ebiten.Image {
	data, err := tileAssets.ReadFile("assets/tiles/block.svg")
	if err != nil {
		log.Printf("Failed to read tile asset: %v", err)
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to parse tile SVG: %v", err)
		return nil
	}

	renderSize := int(float64(size) * sm.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	full := ebiten.NewImageFromImage(rgba)
	if renderSize == size {
		return full
	}

	// Downscale to the display size.
	scaled := ebiten.NewImage(size, size)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(1/sm.renderScale, 1/sm.renderScale)
	scaled.DrawImage(full, op)
	return scaled
}
