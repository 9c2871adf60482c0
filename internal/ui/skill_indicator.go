// internal/ui/skill_indicator.go
package ui

import (
	"image/color"
	"math"

	"survivors-night/internal/defs"
	"survivors-night/pkg/render"
)

const (
	skillRadius  = 14
	skillSpacing = 38
	skillSegs    = 24
)

var (
	skillLockedColor = color.RGBA{60, 60, 60, 200}
	skillReadyColor  = color.RGBA{90, 200, 120, 230}
	skillCoolColor   = color.RGBA{40, 40, 40, 220}
)

var skillColors = map[defs.SkillID]color.RGBA{
	defs.SkillMagicArrow:     {0, 255, 255, 255},
	defs.SkillFireball:       {255, 102, 0, 255},
	defs.SkillChainLightning: {180, 200, 255, 255},
}

var skillKeys = map[defs.SkillID]string{
	defs.SkillMagicArrow:     "Q",
	defs.SkillFireball:       "E",
	defs.SkillChainLightning: "R",
}

// SkillView is what the indicator needs to know about one skill.
type SkillView struct {
	ID          defs.SkillID
	Unlocked    bool
	Cooldown    float64
	MaxCooldown float64
}

// SkillIndicator draws one circle per skill with a cooldown sweep. A skill
// pulses briefly when it becomes unlocked.
type SkillIndicator struct {
	X, Y   float64
	pulses map[defs.SkillID]float64
}

func NewSkillIndicator(x, y float64) *SkillIndicator {
	return &SkillIndicator{X: x, Y: y, pulses: make(map[defs.SkillID]float64)}
}

// Pulse starts the unlock animation of id.
func (i *SkillIndicator) Pulse(id defs.SkillID) {
	i.pulses[id] = 0
}

// Update advances the unlock animations.
func (i *SkillIndicator) Update(deltaTime float64) {
	for id, t := range i.pulses {
		t += deltaTime
		if t > 1 {
			delete(i.pulses, id)
			continue
		}
		i.pulses[id] = t
	}
}

func (i *SkillIndicator) Draw(s render.Surface, skills []SkillView, textColor color.Color) {
	for n, sk := range skills {
		cx := i.X + float64(n)*skillSpacing
		cy := i.Y
		radius := float64(skillRadius)
		if t, ok := i.pulses[sk.ID]; ok {
			radius *= 1 + 0.3*math.Exp(-t*8)
		}

		switch {
		case !sk.Unlocked:
			s.FillCircle(cx, cy, radius, skillLockedColor)
		case sk.Cooldown <= 0:
			s.FillCircle(cx, cy, radius, skillReadyColor)
		default:
			s.FillCircle(cx, cy, radius, skillCoolColor)
			drawSweep(s, cx, cy, radius, 1-ratio(sk.Cooldown, sk.MaxCooldown), skillColors[sk.ID])
		}
		s.StrokeCircle(cx, cy, radius, 1, skillColors[sk.ID])
		s.Text(skillKeys[sk.ID], cx-4, cy+5, textColor)
	}
}

// drawSweep fills the recovered share of the circle as radial spokes.
func drawSweep(s render.Surface, cx, cy, radius, progress float64, clr color.Color) {
	n := int(progress * skillSegs)
	for k := 0; k < n; k++ {
		a := -math.Pi/2 + 2*math.Pi*float64(k)/skillSegs
		s.Line(cx, cy, cx+math.Cos(a)*radius, cy+math.Sin(a)*radius, 2, clr)
	}
}
