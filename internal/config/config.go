// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// Frame step guard. Non-finite or non-positive steps fall back to DefaultDeltaTime,
	// long stalls are clamped to MaxDeltaTime.
	DefaultDeltaTime = 1.0 / 60.0
	MaxDeltaTime     = 0.06

	PlayerRadius          = 16.0
	PlayerMaxHealth       = 100.0
	PlayerBaseAttackSpeed = 1.0
	PlayerDashCooldown    = 1.0
	PlayerDashDuration    = 0.2
	PlayerDashMultiplier  = 2.0
	PlayerHitFlash        = 0.1

	// EnemyBoundsMargin is how far outside the playfield an enemy may wander before it is dropped.
	EnemyBoundsMargin = 50.0

	HUDMessageDuration = 2.0
	ShakeOnHitStrength = 5.0
	ShakeOnHitDuration = 0.2
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	GridColor           = color.RGBA{40, 40, 55, 255}
	BorderColor         = color.RGBA{70, 100, 120, 220}
	PlayerColor         = color.RGBA{74, 144, 226, 255}
	PlayerDashColor     = color.RGBA{160, 210, 255, 255}
	PlayerStrokeColor   = color.RGBA{240, 240, 240, 255}
	AttackLineColor     = color.RGBA{255, 255, 0, 200}
	HitFlashColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	XPBarColor          = color.RGBA{70, 100, 120, 220}
	FireballColor       = color.RGBA{255, 102, 0, 255}
	ExplosionColor      = color.RGBA{255, 0, 0, 255}
	MagicArrowColor     = color.RGBA{0, 255, 255, 255}
	ChainLightningColor = color.RGBA{180, 200, 255, 255}
	BurnColor           = color.RGBA{255, 136, 0, 255}
)
