package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// EbitenSurface draws onto an ebiten image with the vector package.
type EbitenSurface struct {
	Image   *ebiten.Image
	Face    font.Face
	OffsetX float64 // screen shake
	OffsetY float64
}

var _ Surface = (*EbitenSurface)(nil)

// NewEbitenSurface wraps screen. face may be nil, in which case Text is a no-op.
func NewEbitenSurface(screen *ebiten.Image, face font.Face) *EbitenSurface {
	return &EbitenSurface{Image: screen, Face: face}
}

func (s *EbitenSurface) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.Image, float32(x+s.OffsetX), float32(y+s.OffsetY), float32(r), clr, true)
}

func (s *EbitenSurface) StrokeCircle(x, y, r, width float64, clr color.Color) {
	vector.StrokeCircle(s.Image, float32(x+s.OffsetX), float32(y+s.OffsetY), float32(r), float32(width), clr, true)
}

func (s *EbitenSurface) Line(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(s.Image,
		float32(x1+s.OffsetX), float32(y1+s.OffsetY),
		float32(x2+s.OffsetX), float32(y2+s.OffsetY),
		float32(width), clr, true)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.Image, float32(x+s.OffsetX), float32(y+s.OffsetY), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) Text(str string, x, y float64, clr color.Color) {
	if s.Face == nil {
		return
	}
	text.Draw(s.Image, str, s.Face, int(x+s.OffsetX), int(y+s.OffsetY), clr)
}
