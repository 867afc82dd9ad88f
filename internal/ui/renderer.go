package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tlemaire/gochess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	MoveDotColor   color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme, a green board in the
// spirit of a garden chess set.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{170, 215, 110, 255}, // Lime green
		DarkSquare:     color.RGBA{110, 165, 80, 255},  // Green
		SelectedSquare: color.RGBA{247, 247, 105, 190}, // Yellow highlight
		MoveDotColor:   color.RGBA{40, 70, 40, 150},    // Dark green dots
		LastMoveColor:  color.RGBA{235, 225, 95, 90},   // Soft yellow wash
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped flips the board so Black sits at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped returns whether the board is drawn from Black's side.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// DrawBoard draws the checkerboard tiles.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < board.BoardSize; rank++ {
		for file := 0; file < board.BoardSize; file++ {
			x, y := r.SquareToScreen(board.NewSquare(file, rank))

			c := r.theme.DarkSquare
			if (rank+file)%2 == 1 {
				c = r.theme.LightSquare
			}

			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the last move, the selected square, and the
// destination markers for the current selection.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, dests board.Bitboard, lastFrom, lastTo board.Square) {
	r.fillSquare(screen, lastFrom, r.theme.LastMoveColor)
	r.fillSquare(screen, lastTo, r.theme.LastMoveColor)
	r.fillSquare(screen, selected, r.theme.SelectedSquare)

	for _, sq := range dests.Squares() {
		r.drawMoveDot(screen, sq)
	}
}

// fillSquare draws a colored overlay on a square.
func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), c, false)
}

// drawMoveDot marks a destination square with a centered dot.
func (r *Renderer) drawMoveDot(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.MoveDotColor, false)
}

// DrawPieces draws all pieces, skipping the one being dragged.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, dragging bool, dragSquare board.Square) {
	for sq := board.A1; sq <= board.H8; sq++ {
		if dragging && sq == dragSquare {
			continue
		}

		p := b.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}

		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// DrawDraggedPiece draws the piece being dragged centered on the cursor.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}
	half := r.squareSize / 2
	r.sprites.DrawPieceAt(screen, piece, mouseX-half, mouseY-half)
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	file := sq.File()
	rank := sq.Rank()
	if r.flipped {
		file = board.BoardSize - 1 - file
		rank = board.BoardSize - 1 - rank
	}
	x := file * r.squareSize
	y := (board.BoardSize - 1 - rank) * r.squareSize // rank 1 at the bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
// Returns NoSquare for coordinates off the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := board.BoardSize - 1 - y/r.squareSize
	if r.flipped {
		file = board.BoardSize - 1 - file
		rank = board.BoardSize - 1 - rank
	}
	return board.NewSquare(file, rank)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
