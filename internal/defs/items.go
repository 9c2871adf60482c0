// internal/defs/items.go
package defs

import "image/color"

// ItemDefinition describes the base effect of one item type.
type ItemDefinition struct {
	Type       ItemType `json:"type"`
	Name       string   `json:"name"`
	BaseEffect float64  `json:"base_effect"`
	Visuals    Visuals  `json:"visuals"`
}

const (
	ItemRadius         = 8.0
	ItemLifetime       = 15.0 // seconds on the ground
	ItemEffectDuration = 10.0 // seconds a picked-up effect lasts
	ItemDropJitter     = 10.0
	// DefaultEffectDuration applies when an effect arrives without a duration.
	DefaultEffectDuration = 30.0
)

// DefaultItems returns the built-in item table.
func DefaultItems() map[ItemType]ItemDefinition {
	return map[ItemType]ItemDefinition{
		ItemAttackDamage:  {Type: ItemAttackDamage, Name: "Power Up", BaseEffect: 0.1, Visuals: Visuals{Color: color.RGBA{0xff, 0x47, 0x57, 255}}},
		ItemAttackSpeed:   {Type: ItemAttackSpeed, Name: "Haste", BaseEffect: 0.1, Visuals: Visuals{Color: color.RGBA{0xff, 0xa5, 0x02, 255}}},
		ItemAttackRange:   {Type: ItemAttackRange, Name: "Reach", BaseEffect: 0.1, Visuals: Visuals{Color: color.RGBA{0x2e, 0xd5, 0x73, 255}}},
		ItemMovementSpeed: {Type: ItemMovementSpeed, Name: "Swift Boots", BaseEffect: 0.1, Visuals: Visuals{Color: color.RGBA{0x1e, 0x90, 0xff, 255}}},
		ItemMaxHealth:     {Type: ItemMaxHealth, Name: "Vitality", BaseEffect: 0.1, Visuals: Visuals{Color: color.RGBA{0xff, 0x6b, 0x81, 255}}},
		ItemHealthRegen:   {Type: ItemHealthRegen, Name: "Regeneration", BaseEffect: 5, Visuals: Visuals{Color: color.RGBA{0x2e, 0xd5, 0x73, 255}}},
	}
}
