package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/topdown/actor"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

var defaultBackground = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

// Arena is what BuildArena placed in the world.
type Arena struct {
	Entity  ecs.Entity
	Hero    ecs.Entity
	Actor   *actor.Actor
	Hazards []ecs.Entity
}

// BuildArena walls in the play field and places the hero and hazards.
func BuildArena(w *ecs.World, spec prefabs.ArenaSpec, deps HeroDeps) (Arena, error) {
	var out Arena

	thickness := spec.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	var bg color.Color = defaultBackground
	if spec.Background != nil && spec.Background.Color != nil {
		bg = spec.Background.Color
	}

	out.Entity = ecs.CreateEntity(w)
	if err := ecs.Add(w, out.Entity, component.ArenaComponent.Kind(), &component.Arena{
		Width:      spec.Width,
		Height:     spec.Height,
		Thickness:  thickness,
		Background: bg,
	}); err != nil {
		return out, fmt.Errorf("arena: add bounds: %w", err)
	}
	if err := ecs.Add(w, out.Entity, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return out, fmt.Errorf("arena: add wall tag: %w", err)
	}

	for i, hz := range spec.Hazards {
		e, err := NewHazardAt(w, hz)
		if err != nil {
			return out, fmt.Errorf("arena: hazard %d: %w", i, err)
		}
		out.Hazards = append(out.Hazards, e)
	}

	hero, a, err := NewHeroAt(w, spec.Hero.Prefab, spec.Hero.X, spec.Hero.Y, deps)
	if err != nil {
		return out, fmt.Errorf("arena: hero: %w", err)
	}
	out.Hero = hero
	out.Actor = a
	return out, nil
}

// NewHazardAt builds a hazard prefab at the placement. Placement params are
// merged over the prefab's script params.
func NewHazardAt(w *ecs.World, p prefabs.PlacementSpec) (ecs.Entity, error) {
	e, err := BuildEntity(w, p.Prefab)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.HazardComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("hazard: prefab %q has no hazard component", p.Prefab)
	}
	if err := SetEntityTransform(w, e, p.X, p.Y, 0); err != nil {
		return 0, fmt.Errorf("hazard: override transform: %w", err)
	}
	if len(p.Params) > 0 {
		if s, ok := ecs.Get(w, e, component.ScriptComponent.Kind()); ok {
			if s.Params == nil {
				s.Params = map[string]any{}
			}
			for k, v := range p.Params {
				s.Params[k] = v
			}
		}
	}
	return e, nil
}
