// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"survivors-night/internal/app"
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/event"
	"survivors-night/internal/system"
	"survivors-night/pkg/render"
)

const (
	floatTextDuration = 0.6
	floatTextRise     = 30.0
	maxFloatTexts     = 64
)

// Message is a timed banner line.
type Message struct {
	Text      string
	Color     color.RGBA
	Remaining float64
}

// FloatText is a damage number drifting up from where it was dealt.
type FloatText struct {
	Text string
	X, Y float64
	Age  float64
}

var itemLabels = map[defs.ItemType]string{
	defs.ItemAttackDamage:  "Attack Damage",
	defs.ItemAttackSpeed:   "Attack Speed",
	defs.ItemAttackRange:   "Attack Range",
	defs.ItemMovementSpeed: "Movement Speed",
	defs.ItemMaxHealth:     "Max Health",
	defs.ItemHealthRegen:   "Health Regen",
}

var skillLabels = map[defs.SkillID]string{
	defs.SkillMagicArrow:     "Magic Arrow",
	defs.SkillFireball:       "Fireball",
	defs.SkillChainLightning: "Chain Lightning",
}

var (
	levelUpColor  = color.RGBA{255, 215, 0, 255}
	itemColor     = color.RGBA{46, 213, 115, 255}
	skillColor    = color.RGBA{0, 255, 255, 255}
	bossColor     = color.RGBA{255, 69, 0, 255}
	gameOverColor = color.RGBA{255, 60, 60, 255}
	damageColor   = color.RGBA{255, 255, 255, 230}
)

// HUD keeps the latest snapshot and the transient messages raised by game events.
type HUD struct {
	snap       app.Snapshot
	elapsed    float64
	enemyCount int
	messages   []Message
	floatTexts []FloatText
	status     *PlayerStatusIndicator
	skills     *SkillIndicator
	width      float64
	showDamage bool
}

var (
	_ app.HUD        = (*HUD)(nil)
	_ event.Listener = (*HUD)(nil)
)

// NewHUD builds a HUD for a screen width wide and subscribes it to d.
func NewHUD(d *event.Dispatcher, width float64) *HUD {
	h := &HUD{
		status:     NewPlayerStatusIndicator(10, 10),
		skills:     NewSkillIndicator(width-3*skillSpacing, 26),
		width:      width,
		showDamage: true,
	}
	if d != nil {
		d.SubscribeAll(h,
			event.PlayerLeveledUp,
			event.ItemEffectApplied,
			event.SkillUnlocked,
			event.DamageDealt,
			event.EnemyKilled,
			event.BossSpawned,
			event.GameOver,
		)
	}
	return h
}

// Update takes the snapshot of the tick that just ran and ages messages by the
// game time that passed since the previous call.
func (h *HUD) Update(snap app.Snapshot, elapsed float64, enemyCount int) {
	dt := elapsed - h.elapsed
	if dt < 0 {
		dt = 0
	}
	h.snap = snap
	h.elapsed = elapsed
	h.enemyCount = enemyCount
	h.skills.Update(dt)

	kept := h.messages[:0]
	for _, m := range h.messages {
		m.Remaining -= dt
		if m.Remaining > 0 {
			kept = append(kept, m)
		}
	}
	h.messages = kept

	texts := h.floatTexts[:0]
	for _, f := range h.floatTexts {
		f.Age += dt
		if f.Age < floatTextDuration {
			texts = append(texts, f)
		}
	}
	h.floatTexts = texts
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerLeveledUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			h.push(fmt.Sprintf("LEVEL UP! %d", data.Level), levelUpColor)
		}
	case event.ItemEffectApplied:
		if data, ok := e.Data.(event.ItemData); ok {
			h.push(fmt.Sprintf("+%.0f%% %s (%s)", data.Value*100, itemLabels[data.ItemType], data.Rarity), itemColor)
		}
	case event.SkillUnlocked:
		if data, ok := e.Data.(event.SkillUnlockedData); ok {
			h.push(skillLabels[data.Skill]+" unlocked", skillColor)
			h.skills.Pulse(data.Skill)
		}
	case event.BossSpawned:
		h.push("A boss approaches!", bossColor)
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.EnemyType == defs.EnemyBoss {
			h.push(fmt.Sprintf("Boss defeated! +%d XP", data.Experience), bossColor)
		}
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			h.push(fmt.Sprintf("GAME OVER  %s", system.FormatSurvivalTime(data.SurvivalTime)), gameOverColor)
		}
	case event.DamageDealt:
		if !h.showDamage {
			return
		}
		if data, ok := e.Data.(event.DamageDealtData); ok && len(h.floatTexts) < maxFloatTexts {
			h.floatTexts = append(h.floatTexts, FloatText{Text: fmt.Sprintf("%.0f", data.Amount), X: data.X, Y: data.Y})
		}
	}
}

func (h *HUD) push(text string, clr color.RGBA) {
	h.messages = append(h.messages, Message{Text: text, Color: clr, Remaining: config.HUDMessageDuration})
}

// Messages returns the live banner lines, oldest first.
func (h *HUD) Messages() []Message {
	return h.messages
}

// SetShowDamage toggles floating damage numbers.
func (h *HUD) SetShowDamage(show bool) {
	h.showDamage = show
	if !show {
		h.floatTexts = h.floatTexts[:0]
	}
}

// ShowDamage reports whether floating damage numbers are drawn.
func (h *HUD) ShowDamage() bool {
	return h.showDamage
}

// Draw renders the HUD on top of the world.
func (h *HUD) Draw(s render.Surface) {
	snap := h.snap
	h.status.Draw(s, snap.Health, snap.MaxHealth, snap.Level, snap.Experience, snap.ExperienceToNext, config.TextLightColor)

	y := 10 + h.status.Height() + 18
	s.Text(fmt.Sprintf("Time %s", system.FormatSurvivalTime(snap.SurvivalTime)), 10, y, config.TextLightColor)
	s.Text(fmt.Sprintf("Kills %d", snap.EnemiesKilled), 10, y+16, config.TextLightColor)
	s.Text(fmt.Sprintf("Enemies %d", h.enemyCount), 10, y+32, config.TextLightColor)

	views := make([]SkillView, 0, len(snap.Skills))
	for _, sk := range snap.Skills {
		views = append(views, SkillView{ID: sk.ID, Unlocked: sk.Unlocked, Cooldown: sk.Cooldown, MaxCooldown: sk.MaxCooldown})
	}
	h.skills.Draw(s, views, config.TextLightColor)

	for n, m := range h.messages {
		alpha := ratio(m.Remaining, config.HUDMessageDuration)
		clr := m.Color
		clr.A = uint8(float64(clr.A) * alpha)
		s.Text(m.Text, h.width/2-float64(len(m.Text))*4, 120+float64(n)*22, clr)
	}

	for _, f := range h.floatTexts {
		clr := damageColor
		clr.A = uint8(float64(clr.A) * (1 - f.Age/floatTextDuration))
		s.Text(f.Text, f.X, f.Y-floatTextRise*f.Age/floatTextDuration, clr)
	}
}
