package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const arenaGridStep = 50

// ArenaColors holds the colours of the static playfield background.
type ArenaColors struct {
	Background color.RGBA
	Grid       color.RGBA
	Border     color.RGBA
}

// ArenaRenderer draws the playfield background from a pre-rendered image.
type ArenaRenderer struct {
	width, height int
	colors        ArenaColors
	background    *ebiten.Image
}

// NewArenaRenderer pre-renders the background once.
func NewArenaRenderer(width, height int, colors ArenaColors) *ArenaRenderer {
	r := &ArenaRenderer{
		width:      width,
		height:     height,
		colors:     colors,
		background: ebiten.NewImage(width, height),
	}
	r.renderBackground()
	return r
}

func (r *ArenaRenderer) renderBackground() {
	r.background.Clear()
	r.background.Fill(r.colors.Background)

	for x := arenaGridStep; x < r.width; x += arenaGridStep {
		vector.StrokeLine(r.background, float32(x), 0, float32(x), float32(r.height), 1, r.colors.Grid, false)
	}
	for y := arenaGridStep; y < r.height; y += arenaGridStep {
		vector.StrokeLine(r.background, 0, float32(y), float32(r.width), float32(y), 1, r.colors.Grid, false)
	}
	vector.StrokeRect(r.background, 1, 1, float32(r.width-2), float32(r.height-2), 2, r.colors.Border, false)
}

// Draw blits the background, shifted by the current shake offset.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, offsetX, offsetY float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(r.background, op)
}

// LoadFace builds a text face of the given size from the embedded Go font.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// FallbackFace is the bitmap face used when LoadFace fails.
func FallbackFace() font.Face {
	return basicfont.Face7x13
}
