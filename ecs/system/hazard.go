package system

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// HazardSystem damages heroes that overlap a hazard. With Precheck set the
// system asks CanTakeDamage before applying damage; otherwise it calls
// ApplyDamage unconditionally and relies on the actor's own window. Both
// produce the same hit point history.
type HazardSystem struct {
	Precheck bool

	log *slog.Logger
}

func NewHazardSystem(logger *slog.Logger) *HazardSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &HazardSystem{Precheck: true, log: logger}
}

type hazardAABB struct {
	x float64
	y float64
	w float64
	h float64
}

type hazardHitSource struct {
	bounds hazardAABB
	entity ecs.Entity
}

func overlapsAABB(a, b hazardAABB) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
}

func physicsBodyAABB(t *component.Transform, b *component.PhysicsBody) (hazardAABB, bool) {
	if t == nil || b == nil {
		return hazardAABB{}, false
	}
	width, height := b.Width, b.Height
	if b.Radius > 0 {
		width, height = b.Radius*2, b.Radius*2
	}
	if width <= 0 || height <= 0 {
		return hazardAABB{}, false
	}
	return hazardAABB{x: t.X - width/2, y: t.Y - height/2, w: width, h: height}, true
}

func hazardBounds(h *component.Hazard, t *component.Transform) (hazardAABB, bool) {
	if h == nil || t == nil || h.Width <= 0 || h.Height <= 0 {
		return hazardAABB{}, false
	}
	cx := t.X + h.OffsetX
	cy := t.Y + h.OffsetY
	return hazardAABB{x: cx - h.Width/2, y: cy - h.Height/2, w: h.Width, h: h.Height}, true
}

// DrawHazardDebug renders hazard bounds for debug visualization.
func DrawHazardDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		b, ok := hazardBounds(h, t)
		if !ok {
			return
		}
		// semi-transparent fill + outline
		vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), color.RGBA{R: 255, A: 48}, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1.0, color.RGBA{R: 255, A: 200}, false)
	})
}

func (s *HazardSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	hazards := make([]hazardHitSource, 0, 16)
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		if b, ok := hazardBounds(h, t); ok {
			hazards = append(hazards, hazardHitSource{bounds: b, entity: e})
		}
	})
	if len(hazards) == 0 {
		return
	}

	ecs.ForEach3(w, component.HeroComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, hero *component.Hero, t *component.Transform, body *component.PhysicsBody) {
		if hero.Actor == nil || hero.Actor.IsDefeated() {
			return
		}
		box, ok := physicsBodyAABB(t, body)
		if !ok {
			return
		}
		for _, hz := range hazards {
			if hz.entity == e || !overlapsAABB(box, hz.bounds) {
				continue
			}
			s.hit(w, e, hero, hz.entity)
			// one hit per tick at most
			break
		}
	})
}

func (s *HazardSystem) hit(w *ecs.World, e ecs.Entity, hero *component.Hero, source ecs.Entity) {
	a := hero.Actor
	if s.Precheck && !a.CanTakeDamage() {
		return
	}
	if !a.ApplyDamage() {
		return
	}

	hp := a.HitPoints()
	s.log.Debug("hazard: hero damaged", "entity", e.String(), "hazard", source.String(), "hp", hp)
	w.Events().Push(ecs.Event{Kind: ecs.EventHeroDamaged, Entity: e, Data: hp})

	if a.IsDefeated() {
		s.log.Debug("hazard: hero defeated", "entity", e.String())
		w.Events().Push(ecs.Event{Kind: ecs.EventHeroDefeated, Entity: e})
	}
}
