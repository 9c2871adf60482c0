// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivors-night/pkg/render"
)

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       text,
		TextColor:  color.Black,
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{130, 130, 130, 255},
	}
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// IsClicked is true on the frame the left mouse button goes down over the button.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return b.Contains(float64(mx), float64(my))
}

// Draw renders the button, highlighted when hovered.
func (b *Button) Draw(s render.Surface, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	s.FillRect(b.X, b.Y, b.W, b.H, bg)
	s.Text(b.Text, b.X+(b.W-float64(len(b.Text))*7)/2, b.Y+b.H/2+5, b.TextColor)
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	mx, my := ebiten.CursorPosition()
	return b.Contains(float64(mx), float64(my))
}
