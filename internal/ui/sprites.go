// Package ui implements the chess board UI using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/tlemaire/gochess/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[board.Piece]string{
	board.WhitePawn:   "assets/pieces/wP.svg",
	board.WhiteKnight: "assets/pieces/wN.svg",
	board.WhiteBishop: "assets/pieces/wB.svg",
	board.WhiteRook:   "assets/pieces/wR.svg",
	board.WhiteQueen:  "assets/pieces/wQ.svg",
	board.WhiteKing:   "assets/pieces/wK.svg",
	board.BlackPawn:   "assets/pieces/bP.svg",
	board.BlackKnight: "assets/pieces/bN.svg",
	board.BlackBishop: "assets/pieces/bB.svg",
	board.BlackRook:   "assets/pieces/bR.svg",
	board.BlackQueen:  "assets/pieces/bQ.svg",
	board.BlackKing:   "assets/pieces/bK.svg",
}

// SpriteManager holds the rasterized piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Rasterized at this multiple for sharp scaling
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes every embedded SVG into an ebiten image.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1.0/sm.renderScale, 1.0/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
