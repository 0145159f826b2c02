package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestSortByLayer(t *testing.T) {
	w := ecs.NewWorld()
	layered := func(index int, withLayer bool) ecs.Entity {
		e := ecs.CreateEntity(w)
		if withLayer {
			_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: index})
		}
		return e
	}

	heart := layered(1000, true)
	hero := layered(20, true)
	bare := layered(0, false)
	tomb := layered(5, true)
	arrow := layered(15, true)
	slime := layered(10, true)

	entities := []ecs.Entity{heart, hero, bare, tomb, arrow, slime}
	sortByLayer(w, entities)

	want := []ecs.Entity{bare, tomb, slime, arrow, hero, heart}
	for i := range want {
		if entities[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], entities[i])
		}
	}
}
