// internal/entity/world.go
package entity

import (
	"survivors-night/internal/component"
	"survivors-night/internal/projectile"
	"survivors-night/internal/types"
	"survivors-night/internal/utils"
)

// World owns every collection the simulation mutates during a tick.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	Bounds      utils.Bounds
	Player      *component.Player
	Enemies     []*component.Enemy
	Items       []*component.Item
	Particles   []*component.Particle
	Burns       []*component.BurnEffect
	Projectiles []projectile.Projectile
}

// NewWorld creates an empty world of the given size.
func NewWorld(bounds utils.Bounds) *World {
	return &World{
		NextID: 1,
		Bounds: bounds,
	}
}

// NewEntity issues the next entity id.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// LiveEnemies counts enemies not yet marked for removal.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.IsRemoved() {
			n++
		}
	}
	return n
}

// LiveItems counts items not yet marked for removal.
func (w *World) LiveItems() int {
	n := 0
	for _, it := range w.Items {
		if !it.IsRemoved() {
			n++
		}
	}
	return n
}

// Compact drops every entity marked for removal. Call once per tick, after all updates.
func (w *World) Compact() {
	w.Enemies = Compact(w.Enemies)
	w.Items = Compact(w.Items)
	w.Particles = Compact(w.Particles)
	w.Burns = Compact(w.Burns)
}

// Removable is an entity that can be marked and compacted away.
type Removable interface {
	IsRemoved() bool
}

// Compact keeps the unmarked elements of s in order, reusing its backing array.
// The freed tail is cleared so removed entities can be collected.
func Compact[T Removable](s []T) []T {
	kept := s[:0]
	for _, v := range s {
		if !v.IsRemoved() {
			kept = append(kept, v)
		}
	}
	var zero T
	for i := len(kept); i < len(s); i++ {
		s[i] = zero
	}
	return kept
}
