package entity

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/milk9111/topdown/actor"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// HeroDeps are the collaborators a hero actor is built with.
type HeroDeps struct {
	Clock  actor.Clock
	Logger *slog.Logger
}

// NewHeroAt builds the hero prefab and places it at (x, y).
func NewHeroAt(w *ecs.World, prefab string, x, y float64, deps HeroDeps) (ecs.Entity, *actor.Actor, error) {
	e, err := buildEntity(w, prefab, &buildContext{Clock: deps.Clock, Logger: deps.Logger})
	if err != nil {
		return 0, nil, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		return 0, nil, fmt.Errorf("hero: override transform: %w", err)
	}
	hero, ok := ecs.Get(w, e, component.HeroComponent.Kind())
	if !ok || hero.Actor == nil {
		ecs.DestroyEntity(w, e)
		return 0, nil, fmt.Errorf("hero: prefab %q has no hero component", prefab)
	}
	return e, hero.Actor, nil
}

// HeroConfig turns a hero prefab block into actor settings. Zero fields
// keep the defaults.
func HeroConfig(spec prefabs.HeroComponentSpec) (actor.Config, error) {
	cfg := actor.DefaultConfig()
	if spec.Speed > 0 {
		cfg.Speed = spec.Speed
	}
	if spec.MaxHitPoints != 0 {
		cfg.MaxHitPoints = spec.MaxHitPoints
	}
	if spec.InvulnerabilityMS > 0 {
		cfg.InvulnerabilityWindow = time.Duration(spec.InvulnerabilityMS) * time.Millisecond
	}
	if spec.SpawnProtection != nil {
		cfg.SpawnProtection = *spec.SpawnProtection
	}
	if spec.Facing != "" {
		f, ok := actor.ParseFacing(spec.Facing)
		if !ok {
			return cfg, fmt.Errorf("%w: %q", actor.ErrInvalidFacing, spec.Facing)
		}
		cfg.Facing = f
	}
	if spec.HUDOriginX != 0 || spec.HUDOriginY != 0 {
		cfg.HUDOrigin = actor.Vec{X: spec.HUDOriginX, Y: spec.HUDOriginY}
	}
	if spec.HUDSpacing > 0 {
		cfg.HUDSpacing = spec.HUDSpacing
	}
	return cfg, nil
}

// ApplyHeroTuning re-applies the live-tweakable parts of a hero prefab:
// movement speed and the ranged attack. Hit points are left alone.
func ApplyHeroTuning(hero *component.Hero, spec prefabs.HeroComponentSpec) {
	if hero == nil {
		return
	}
	if hero.Actor != nil && spec.Speed > 0 {
		hero.Actor.SetSpeed(spec.Speed)
	}
	if spec.ProjectilePrefab != "" {
		hero.ProjectilePrefab = spec.ProjectilePrefab
	}
	if spec.ProjectileSpeed > 0 {
		hero.ProjectileSpeed = spec.ProjectileSpeed
	}
	if spec.ProjectileTTL > 0 {
		hero.ProjectileTTL = spec.ProjectileTTL
	}
	if spec.ReloadFrames > 0 {
		hero.ReloadFrames = spec.ReloadFrames
	}
}

type heroSpec = prefabs.HeroComponentSpec

func addHero(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[heroSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hero spec: %w", err)
	}
	cfg, err := HeroConfig(spec)
	if err != nil {
		return err
	}
	if !ecs.Has(w, e, component.AnimationComponent.Kind()) {
		return fmt.Errorf("hero requires an animation")
	}

	logger := ctx.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("entity", e.String())

	a, err := actor.New(cfg, actor.Deps{
		Body:     newBody(w, e),
		Animator: &animator{w: w, e: e},
		Scene:    NewScene(w, logger),
		Clock:    ctx.Clock,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("new actor: %w", err)
	}

	hero := &component.Hero{
		Actor:            a,
		ProjectilePrefab: "arrow.yaml",
		ProjectileSpeed:  200,
		ReloadFrames:     30,
	}
	ApplyHeroTuning(hero, spec)
	return ecs.Add(w, e, component.HeroComponent.Kind(), hero)
}

// body exposes an entity's transform and velocity as an actor.Body.
type body struct {
	w    *ecs.World
	e    ecs.Entity
	last actor.Vec
}

func newBody(w *ecs.World, e ecs.Entity) *body {
	b := &body{w: w, e: e}
	b.Position()
	return b
}

// Position returns the last known centre once the entity is gone.
func (b *body) Position() actor.Vec {
	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		b.last = actor.Vec{X: t.X, Y: t.Y}
	}
	return b.last
}

func (b *body) SetVelocity(v actor.Vec) {
	if vel, ok := ecs.Get(b.w, b.e, component.VelocityComponent.Kind()); ok {
		vel.X, vel.Y = v.X, v.Y
		return
	}
	_ = ecs.Add(b.w, b.e, component.VelocityComponent.Kind(), &component.Velocity{X: v.X, Y: v.Y})
}

func (b *body) Active() bool {
	return ecs.IsAlive(b.w, b.e)
}

func (b *body) Destroy() {
	b.Position()
	ecs.DestroyEntity(b.w, b.e)
}

type animator struct {
	w *ecs.World
	e ecs.Entity
}

func (a *animator) Play(name string, ignoreIfPlaying bool) {
	if anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent.Kind()); ok {
		anim.Play(name, ignoreIfPlaying)
	}
}

func (a *animator) SetFlipX(flip bool) {
	if s, ok := ecs.Get(a.w, a.e, component.SpriteComponent.Kind()); ok {
		s.FlipX = flip
	}
}
