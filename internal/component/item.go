package component

import (
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/types"
	"survivors-night/pkg/render"
)

// Item is a pickup lying on the playfield.
type Item struct {
	ID       types.EntityID
	X, Y     float64
	Radius   float64
	Lifetime float64
	Type     defs.ItemType
	Rarity   defs.Rarity
	Value    float64 // base effect times rarity multiplier
	Duration float64
	Visuals  defs.Visuals
	Removed  bool
}

func (i *Item) Pos() (float64, float64) { return i.X, i.Y }

func (i *Item) IsRemoved() bool { return i == nil || i.Removed }

func (i *Item) MarkRemoved() { i.Removed = true }

// Render draws the item. It blinks during its last three seconds.
func (i *Item) Render(s render.Surface) {
	if i.Lifetime < 3 && int(i.Lifetime*6)%2 == 1 {
		return
	}
	s.FillCircle(i.X, i.Y, i.Radius, i.Visuals.Color)
	ring := 1.0
	switch i.Rarity {
	case defs.RarityUncommon:
		ring = 2
	case defs.RarityRare:
		ring = 3
	case defs.RarityEpic:
		ring = 4
	}
	s.StrokeCircle(i.X, i.Y, i.Radius+ring, ring, config.TextLightColor)
}
