package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// HealthBarSystem hides hearts whose indicator was switched off by the
// hero's health display. Hidden hearts stay alive.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem { return &HealthBarSystem{} }

func (s *HealthBarSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthIndicatorComponent.Kind(), func(e ecs.Entity, heart *component.HealthIndicator) {
		hidden := ecs.Has(w, e, component.HiddenComponent.Kind())

		switch {
		case !heart.Visible && !hidden:
			_ = ecs.Add(w, e, component.HiddenComponent.Kind(), &component.Hidden{})
		case heart.Visible && hidden:
			ecs.Remove(w, e, component.HiddenComponent.Kind())
		}
	})
}
