package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// CooldownSystem counts cooldowns down. When a hero's reload runs out the
// hero is told it may fire again.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		cd.Frames--
		if cd.Frames > 0 {
			return
		}

		ecs.Remove(w, e, component.CooldownComponent.Kind())

		if hero, ok := ecs.Get(w, e, component.HeroComponent.Kind()); ok && hero.Actor != nil {
			hero.Actor.ReadyToFire()
			w.Events().Push(ecs.Event{Kind: ecs.EventHeroReady, Entity: e})
		}
	})
}
