package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// UpdateState refreshes hover/pressed state from the input handler.
func (b *Button) UpdateState(input *InputHandler) {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	b.pressed = b.hovered && input.IsLeftPressed()
}

// HandleClick fires OnClick if the button was just clicked.
// Returns true if the click was consumed.
func (b *Button) HandleClick(input *InputHandler) bool {
	if b.hovered && input.IsLeftJustPressed() {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// Hovered returns whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Draw renders the button. accent selects the prominent green style.
func (b *Button) Draw(screen *ebiten.Image, accent bool) {
	bg := buttonBg
	border := buttonBorder
	label := textSecondary

	if accent {
		bg = accentColor
		border = accentBorder
		label = textPrimary
		if b.pressed {
			bg = accentPressed
		} else if b.hovered {
			bg = accentHover
		}
	} else {
		if b.pressed {
			bg = buttonPressedBg
		} else if b.hovered {
			bg = buttonHoverBg
			border = accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)

	drawTextCentered(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, label)
}

// drawText draws s with its top-left at (x, y).
func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centered on (centerX, centerY).
func drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(centerX)-w/2, float64(centerY)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
