// internal/system/render.go
package system

import (
	"log/slog"

	"survivors-night/internal/entity"
	"survivors-night/internal/projectile"
	"survivors-night/pkg/render"
)

// ProjectileDiscarder drops a projectile whose drawing failed.
type ProjectileDiscarder interface {
	Discard(p projectile.Projectile)
	Discarded(p projectile.Projectile) bool
}

// RenderSystem draws the world back to front. Drawing never changes simulation
// state, except that an entity whose Render panics is logged and marked for removal.
type RenderSystem struct {
	world       *entity.World
	projectiles ProjectileDiscarder
	logger      *slog.Logger
}

func NewRenderSystem(world *entity.World, projectiles ProjectileDiscarder, logger *slog.Logger) *RenderSystem {
	if logger == nil {
		logger = discardLogger()
	}
	return &RenderSystem{world: world, projectiles: projectiles, logger: logger.With("system", "render")}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	for _, it := range s.world.Items {
		if it.IsRemoved() {
			continue
		}
		if !SafeRender(s.logger, "item", it.ID, func() { it.Render(surface) }) {
			it.MarkRemoved()
		}
	}
	for _, e := range s.world.Enemies {
		if e.IsRemoved() {
			continue
		}
		if !SafeRender(s.logger, "enemy", e.ID, func() { e.Render(surface) }) {
			e.MarkRemoved()
		}
	}
	for _, b := range s.world.Burns {
		if b.IsRemoved() {
			continue
		}
		if !SafeRender(s.logger, "burn", 0, func() { b.Render(surface) }) {
			b.MarkRemoved()
		}
	}
	for _, p := range s.world.Projectiles {
		if p == nil || (s.projectiles != nil && s.projectiles.Discarded(p)) {
			continue
		}
		if !SafeRender(s.logger, "projectile", 0, func() { p.Render(surface) }) && s.projectiles != nil {
			s.projectiles.Discard(p)
		}
	}
	if p := s.world.Player; p != nil {
		p.Render(surface)
	}
	for _, p := range s.world.Particles {
		if p.IsRemoved() {
			continue
		}
		if !SafeRender(s.logger, "particle", 0, func() { p.Render(surface) }) {
			p.MarkRemoved()
		}
	}
}
