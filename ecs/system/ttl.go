package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// TTLSystem expires short-lived entities. An arrow that runs out of frames
// before hitting anything is reported as faded.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames--; ttl.Frames <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			w.Events().Push(ecs.Event{Kind: ecs.EventProjectileFaded, Entity: e})
		}
		ecs.DestroyEntity(w, e)
	}
}
