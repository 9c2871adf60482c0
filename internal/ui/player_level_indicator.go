// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"survivors-night/pkg/render"
)

const (
	barWidth    = 200
	barHeight   = 12
	barGap      = 8
	borderWidth = 1
)

var (
	healthFillColor = color.RGBA{200, 40, 40, 230}
	healthLowColor  = color.RGBA{255, 90, 0, 230}
	xpFillColor     = color.RGBA{70, 100, 120, 220}
	barBackColor    = color.RGBA{0, 0, 0, 160}
	borderColor     = color.RGBA{255, 255, 255, 255}
)

// PlayerStatusIndicator draws the health bar, the experience bar and the level.
type PlayerStatusIndicator struct {
	X, Y float64
}

func NewPlayerStatusIndicator(x, y float64) *PlayerStatusIndicator {
	return &PlayerStatusIndicator{X: x, Y: y}
}

// Draw renders both bars. Ratios are clamped to [0,1].
func (i *PlayerStatusIndicator) Draw(s render.Surface, health, maxHealth float64, level, xp, xpToNext int, textColor color.Color) {
	healthRatio := ratio(health, maxHealth)
	fill := healthFillColor
	if healthRatio <= 0.25 {
		fill = healthLowColor
	}
	drawBar(s, i.X, i.Y, healthRatio, fill)
	s.Text(fmt.Sprintf("%.0f/%.0f", max(health, 0), maxHealth), i.X+barWidth+barGap, i.Y+barHeight-1, textColor)

	xpY := i.Y + barHeight + barGap
	drawBar(s, i.X, xpY, ratio(float64(xp), float64(xpToNext)), xpFillColor)
	s.Text(fmt.Sprintf("Lv %d", level), i.X+barWidth+barGap, xpY+barHeight-1, textColor)
}

// Height is the vertical space the indicator takes.
func (i *PlayerStatusIndicator) Height() float64 {
	return barHeight*2 + barGap
}

func drawBar(s render.Surface, x, y, r float64, fill color.Color) {
	s.FillRect(x, y, barWidth, barHeight, barBackColor)
	if w := (barWidth - borderWidth*2) * r; w > 0 {
		s.FillRect(x+borderWidth, y+borderWidth, w, barHeight-borderWidth*2, fill)
	}
	s.Line(x, y, x+barWidth, y, borderWidth, borderColor)
	s.Line(x, y+barHeight, x+barWidth, y+barHeight, borderWidth, borderColor)
	s.Line(x, y, x, y+barHeight, borderWidth, borderColor)
	s.Line(x+barWidth, y, x+barWidth, y+barHeight, borderWidth, borderColor)
}

func ratio(v, limit float64) float64 {
	if limit <= 0 || v <= 0 {
		return 0
	}
	if v >= limit {
		return 1
	}
	return v / limit
}
