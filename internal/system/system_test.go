package system

import (
	"testing"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

type harness struct {
	world       *entity.World
	dispatcher  *event.Dispatcher
	library     *defs.Library
	effects     *VisualEffectSystem
	combat      *CombatSystem
	progression *ProgressionSystem
	items       *ItemSystem
	enemies     *EnemySystem
	burns       *StatusEffectSystem
	projectiles *ProjectileSystem
	skills      *SkillSystem
	player      *PlayerSystem
	collisions  *CollisionSystem
	spawner     *SpawnSystem
	state       *StateSystem
	events      []event.Event
}

var allEvents = []event.EventType{
	event.EnemyKilled, event.EnemySpawned, event.BossSpawned, event.DamageDealt,
	event.PlayerDamaged, event.PlayerLeveledUp, event.SkillUnlocked,
	event.ItemDropped, event.ItemEffectApplied, event.GameOver,
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	h := &harness{
		world:      entity.NewWorld(utils.Bounds{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height}),
		dispatcher: event.NewDispatcher(),
		library:    defs.NewLibrary(),
	}
	h.world.Player = component.NewPlayer(400, 300, cfg.Player)
	h.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { h.events = append(h.events, e) }), allEvents...)

	rng := utils.NewPRNGService(7)
	h.effects = NewVisualEffectSystem(h.world, utils.NewPRNGService(11), nil)
	h.combat = NewCombatSystem(h.world, h.dispatcher, h.effects)
	h.progression = NewProgressionSystem(h.world, h.dispatcher, nil)
	h.items = NewItemSystem(h.world, h.library, rng, h.dispatcher, h.effects, nil, cfg.MaxItems)
	h.enemies = NewEnemySystem(h.world, h.dispatcher, h.effects, nil)
	h.burns = NewStatusEffectSystem(h.world, h.combat, nil)
	h.projectiles = NewProjectileSystem(h.world, h.combat, h.burns, h.effects, nil)
	h.skills = NewSkillSystem(h.world, h.projectiles, rng, nil)
	h.player = NewPlayerSystem(h.world, h.combat, h.skills)
	h.collisions = NewCollisionSystem(h.world, h.combat, h.items, h.dispatcher, h.effects, cfg.ContactDestroysEnemy)
	h.spawner = NewSpawnSystem(h.world, h.library, rng, h.dispatcher, nil, cfg.MaxEnemies)
	h.state = NewStateSystem(h.world, h.dispatcher)
	return h
}

func (h *harness) addEnemy(t defs.EnemyType, x, y float64) *component.Enemy {
	def, _ := h.library.Enemy(t)
	e := component.NewEnemy(h.world.NewEntity(), def, x, y)
	h.world.Enemies = append(h.world.Enemies, e)
	return e
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, e := range h.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) eventsOf(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range h.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
