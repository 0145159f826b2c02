package system

import (
	"log/slog"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// ProjectileSystem keeps arrows flying straight along their facing and
// resolves the impacts reported by physics. Destructible hazards that are
// hit are removed together with the arrow.
type ProjectileSystem struct {
	log *slog.Logger
}

func NewProjectileSystem(logger *slog.Logger) *ProjectileSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectileSystem{log: logger}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, p *component.Projectile, vel *component.Velocity) {
		v := p.Facing.Unit().Scale(p.Speed)
		vel.X = v.X
		vel.Y = v.Y
	})

	ecs.ForEach(w, component.ProjectileImpactComponent.Kind(), func(e ecs.Entity, impact *component.ProjectileImpact) {
		target := ecs.Entity(impact.Target)
		if target.Valid() {
			if h, ok := ecs.Get(w, target, component.HazardComponent.Kind()); ok && h.Destructible {
				ecs.DestroyEntity(w, target)
				s.log.Debug("projectile: hazard destroyed", "projectile", e.String(), "hazard", target.String())
				w.Events().Push(ecs.Event{Kind: ecs.EventHazardDestroyed, Entity: target})
			}
		}
		ecs.DestroyEntity(w, e)
	})

	arenaEntity, ok := w.First(component.ArenaComponent.Kind())
	if !ok {
		return
	}
	arena, ok := ecs.Get(w, arenaEntity, component.ArenaComponent.Kind())
	if !ok {
		return
	}
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Projectile, t *component.Transform) {
		if t.X < 0 || t.Y < 0 || t.X > arena.Width || t.Y > arena.Height {
			ecs.DestroyEntity(w, e)
		}
	})
}
