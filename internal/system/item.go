// internal/system/item.go
package system

import (
	"log/slog"
	"maps"

	"survivors-night/internal/component"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/utils"
)

// DropStats counts the items dropped in a run.
type DropStats struct {
	Total    int                   `json:"total" msgpack:"total"`
	ByType   map[defs.ItemType]int `json:"by_type" msgpack:"by_type"`
	ByRarity map[defs.Rarity]int   `json:"by_rarity" msgpack:"by_rarity"`
	PickedUp int                   `json:"picked_up" msgpack:"picked_up"`
}

// ItemSystem rolls drops on kills, ages items on the ground and applies pickups.
type ItemSystem struct {
	world           *entity.World
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	logger          *slog.Logger
	maxItems        int
	stats           DropStats
}

func NewItemSystem(world *entity.World, library *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem, logger *slog.Logger, maxItems int) *ItemSystem {
	if logger == nil {
		logger = discardLogger()
	}
	is := &ItemSystem{
		world:           world,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		logger:          logger.With("system", "item"),
		maxItems:        maxItems,
		stats: DropStats{
			ByType:   make(map[defs.ItemType]int),
			ByRarity: make(map[defs.Rarity]int),
		},
	}
	eventDispatcher.Subscribe(event.EnemyKilled, is)
	return is
}

func (s *ItemSystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		s.TryDrop(data.X, data.Y, data.Experience)
	}
}

// Update counts down item lifetimes and retires expired items.
func (s *ItemSystem) Update(deltaTime float64) {
	for _, it := range s.world.Items {
		if it.IsRemoved() {
			continue
		}
		ok := SafeUpdate(s.logger, "item", it.ID, func() {
			it.Lifetime -= deltaTime
			if it.Lifetime <= 0 {
				it.MarkRemoved()
			}
		})
		if !ok {
			it.MarkRemoved()
		}
	}
}

// TryDrop rolls the drop chance for an enemy worth exp experience.
func (s *ItemSystem) TryDrop(x, y float64, exp int) *component.Item {
	if s.rng.Float64() >= defs.DropChance(exp) {
		return nil
	}
	return s.Drop(x, y)
}

// Drop places a random item near (x, y). It returns nil when the field is full.
func (s *ItemSystem) Drop(x, y float64) *component.Item {
	if s.maxItems > 0 && s.world.LiveItems() >= s.maxItems {
		return nil
	}
	itemType := defs.ItemTypes[s.rng.Intn(len(defs.ItemTypes))]
	rarity := defs.RollRarity(s.rng.Float64())
	def, ok := s.library.Item(itemType)
	if !ok {
		s.logger.Warn("no definition for item type", "type", itemType)
		return nil
	}

	item := &component.Item{
		ID:       s.world.NewEntity(),
		X:        x + s.rng.Range(-defs.ItemDropJitter, defs.ItemDropJitter),
		Y:        y + s.rng.Range(-defs.ItemDropJitter, defs.ItemDropJitter),
		Radius:   defs.ItemRadius,
		Lifetime: defs.ItemLifetime,
		Type:     itemType,
		Rarity:   rarity,
		Value:    def.BaseEffect * defs.RarityMultiplier(rarity),
		Duration: defs.ItemEffectDuration,
		Visuals:  def.Visuals,
	}
	s.world.Items = append(s.world.Items, item)

	s.stats.Total++
	s.stats.ByType[itemType]++
	s.stats.ByRarity[rarity]++
	s.logger.Debug("item dropped", "type", itemType, "rarity", rarity, "value", item.Value)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ItemDropped, Data: event.ItemData{
		ItemType: itemType,
		Rarity:   rarity,
		Value:    item.Value,
		Duration: item.Duration,
	}})
	return item
}

// Pickup applies item to the player and removes it. A malformed item is removed
// without effect and its error returned.
func (s *ItemSystem) Pickup(item *component.Item) error {
	p := s.world.Player
	if p == nil || item.Removed {
		return nil
	}
	item.MarkRemoved()
	if err := p.ApplyItemEffect(item.Type, item.Value, item.Duration); err != nil {
		s.logger.Warn("dropping malformed item", "id", item.ID, "type", item.Type, "error", err)
		return err
	}
	s.stats.PickedUp++
	if s.effects != nil {
		s.effects.EmitBurst(item.X, item.Y, 6, 60, item.Visuals.Color)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ItemEffectApplied, Data: event.ItemData{
		ItemType: item.Type,
		Rarity:   item.Rarity,
		Value:    item.Value,
		Duration: item.Duration,
	}})
	return nil
}

// Stats returns a copy of the drop counters.
func (s *ItemSystem) Stats() DropStats {
	out := s.stats
	out.ByType = maps.Clone(s.stats.ByType)
	out.ByRarity = maps.Clone(s.stats.ByRarity)
	return out
}
