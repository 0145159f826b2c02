package system

import (
	"log/slog"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// HeroSystem feeds each hero its input snapshot and starts the reload
// cooldown when a shot is fired.
type HeroSystem struct {
	log *slog.Logger
}

func NewHeroSystem(logger *slog.Logger) *HeroSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeroSystem{log: logger}
}

func (s *HeroSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.HeroComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, hero *component.Hero, input *component.Input) {
		if hero.Actor == nil {
			return
		}
		if _, fired := hero.Actor.Update(input.State); !fired {
			return
		}
		if err := ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: hero.ReloadFrames}); err != nil {
			s.log.Warn("hero: start reload", "entity", e.String(), "err", err)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventProjectileFired, Entity: e})
	})
}
