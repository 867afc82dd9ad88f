package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tlemaire/gochess/internal/board"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20
	moveRowHeight  = 22
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	accentBorder    = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
)

// Panel is the side panel with game controls, the move log, and stats.
type Panel struct {
	game *Game

	newGameBtn *Button
	flipBtn    *Button
	soundBtn   *Button
}

// NewPanel creates the panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	y := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: y,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: g.NewGameAction,
	}

	y += ButtonHeight + 8
	half := (contentW - 8) / 2
	p.flipBtn = &Button{
		X: contentX, Y: y,
		W: half, H: ButtonHeight - 6,
		Label:   "Flip Board",
		OnClick: g.FlipBoardAction,
	}
	p.soundBtn = &Button{
		X: contentX + half + 8, Y: y,
		W: half, H: ButtonHeight - 6,
		OnClick: g.ToggleSoundAction,
	}

	return p
}

// buttons returns every panel button.
func (p *Panel) buttons() []*Button {
	return []*Button{p.newGameBtn, p.flipBtn, p.soundBtn}
}

// HandleInput processes panel input. Returns true if it consumed the input.
func (p *Panel) HandleInput(input *InputHandler) bool {
	p.soundBtn.Label = "Sound: Off"
	if p.game.SoundEnabled() {
		p.soundBtn.Label = "Sound: On"
	}

	for _, btn := range p.buttons() {
		btn.UpdateState(input)
	}
	for _, btn := range p.buttons() {
		if btn.HandleClick(input) {
			return true
		}
	}
	return false
}

// AnyButtonHovered returns true if the cursor is over any panel button.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons() {
		if btn.Hovered() {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	p.newGameBtn.Draw(screen, true)
	p.flipBtn.Draw(screen, false)
	p.soundBtn.Draw(screen, false)

	x := BoardSize + PanelPadding

	historyY := p.flipBtn.Y + p.flipBtn.H + SectionSpacing
	drawText(screen, "Moves", x, historyY, textMuted)
	p.drawMoveLog(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

// drawMoveLog renders the most recent moves, one full move per row.
func (p *Panel) drawMoveLog(screen *ebiten.Image, startY int) {
	moves := p.game.MoveHistory()
	if len(moves) == 0 {
		drawText(screen, "No moves yet", BoardSize+PanelPadding, startY+5, textMuted)
		return
	}

	x := BoardSize + PanelPadding
	maxY := ScreenHeight - 90
	visibleRows := (maxY - startY) / moveRowHeight

	// Show the tail of the log once it outgrows the panel.
	totalRows := (len(moves) + 1) / 2
	firstRow := 0
	if totalRows > visibleRows {
		firstRow = totalRows - visibleRows
	}

	y := startY
	for row := firstRow; row < totalRows; row++ {
		if row%2 == 1 {
			vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
				float32(PanelWidth-PanelPadding*2+8), float32(moveRowHeight), moveRowAlt, false)
		}

		drawText(screen, fmt.Sprintf("%d.", row+1), x, y, textMuted)
		drawText(screen, moves[row*2], x+34, y, textPrimary)
		if row*2+1 < len(moves) {
			drawText(screen, moves[row*2+1], x+110, y, textPrimary)
		}

		y += moveRowHeight
	}
}

// drawStatusBar renders the turn indicator and running tallies.
func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 70
	x := BoardSize + PanelPadding

	vector.DrawFilledRect(screen, float32(x), float32(statusY-10),
		float32(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	turn := "White to move"
	if p.game.Board().SideToMove == board.Black {
		turn = "Black to move"
	}
	drawText(screen, turn, x, statusY, textPrimary)

	tallies := fmt.Sprintf("Moves %d   Captures %d-%d",
		p.game.MoveCount(), p.game.CapturedByWhite(), p.game.CapturedByBlack())
	drawText(screen, tallies, x, statusY+22, textSecondary)

	if stats := p.game.Stats(); stats != nil {
		all := fmt.Sprintf("All time: %d games, %d moves", stats.GamesStarted, stats.MovesMade)
		drawText(screen, all, x, statusY+44, textMuted)
	}
}
