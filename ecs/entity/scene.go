package entity

import (
	"log/slog"
	"math"

	"github.com/milk9111/topdown/actor"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	heartPrefab = "heart.yaml"
	tombPrefab  = "tomb.yaml"
)

// Scene builds the entities a hero hands to the world: life indicators,
// projectiles and the tomb.
type Scene struct {
	w   *ecs.World
	log *slog.Logger
}

func NewScene(w *ecs.World, logger *slog.Logger) *Scene {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scene{w: w, log: logger}
}

func (s *Scene) NewIndicator(slot int, pos actor.Vec) actor.Indicator {
	e, err := BuildEntity(s.w, heartPrefab)
	if err != nil {
		s.log.Warn("scene: build indicator", "slot", slot, "err", err)
		return nil
	}
	if err := SetEntityTransform(s.w, e, pos.X, pos.Y, 0); err != nil {
		s.log.Warn("scene: place indicator", "slot", slot, "err", err)
	}
	if err := ecs.Add(s.w, e, component.HealthIndicatorComponent.Kind(), &component.HealthIndicator{Slot: slot, Visible: true}); err != nil {
		s.log.Warn("scene: add indicator", "slot", slot, "err", err)
		ecs.DestroyEntity(s.w, e)
		return nil
	}
	return &indicator{w: s.w, e: e}
}

func (s *Scene) AddProjectile(p actor.Projectile) {
	owner, hero, ok := heroFor(s.w, p.Originator)
	if !ok {
		s.log.Warn("scene: projectile without a hero")
		return
	}
	e, err := BuildEntity(s.w, hero.ProjectilePrefab)
	if err != nil {
		s.log.Warn("scene: build projectile", "prefab", hero.ProjectilePrefab, "err", err)
		return
	}
	if err := SetEntityTransform(s.w, e, p.Origin.X, p.Origin.Y, FacingAngle(p.Facing)); err != nil {
		s.log.Warn("scene: place projectile", "err", err)
	}
	_ = ecs.Add(s.w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Owner:  uint64(owner),
		Facing: p.Facing,
		Speed:  hero.ProjectileSpeed,
	})
	dir := p.Facing.Unit().Scale(hero.ProjectileSpeed)
	_ = ecs.Add(s.w, e, component.VelocityComponent.Kind(), &component.Velocity{X: dir.X, Y: dir.Y})
	if hero.ProjectileTTL > 0 {
		_ = ecs.Add(s.w, e, component.TTLComponent.Kind(), &component.TTL{Frames: hero.ProjectileTTL})
	}
	s.log.Debug("scene: projectile spawned", "entity", e.String(), "facing", p.Facing)
}

func (s *Scene) NewDeathMarker(pos actor.Vec) {
	e, err := BuildEntity(s.w, tombPrefab)
	if err != nil {
		s.log.Warn("scene: build tomb", "err", err)
		return
	}
	if err := SetEntityTransform(s.w, e, pos.X, pos.Y, 0); err != nil {
		s.log.Warn("scene: place tomb", "err", err)
	}
}

// FacingAngle is the sprite rotation for something pointing along f.
// Sprites are drawn pointing right.
func FacingAngle(f actor.Facing) float64 {
	switch f {
	case actor.FacingDown:
		return math.Pi / 2
	case actor.FacingLeft:
		return math.Pi
	case actor.FacingUp:
		return -math.Pi / 2
	default:
		return 0
	}
}

func heroFor(w *ecs.World, a *actor.Actor) (ecs.Entity, *component.Hero, bool) {
	if a == nil {
		return 0, nil, false
	}
	var (
		owner ecs.Entity
		found *component.Hero
	)
	ecs.ForEach(w, component.HeroComponent.Kind(), func(e ecs.Entity, h *component.Hero) {
		if found == nil && h.Actor == a {
			owner, found = e, h
		}
	})
	return owner, found, found != nil
}

type indicator struct {
	w *ecs.World
	e ecs.Entity
}

func (i *indicator) SetVisible(visible bool) {
	if hi, ok := ecs.Get(i.w, i.e, component.HealthIndicatorComponent.Kind()); ok {
		hi.Visible = visible
	}
}
