package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/topdown/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second destroy should report false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", fresh, old)
	}
	if fresh == old || fresh.generation() == old.generation() {
		t.Fatalf("expected a new generation, got %s", fresh)
	}
	if Has(w, fresh, kind) {
		t.Fatalf("recycled slot must not inherit components")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not resolve")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
		},
		{
			name:  "pointer_is_shared",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 7
				again, _ := Get(w, e2, h1.Kind())
				if *again != 7 {
					t.Fatalf("expected in-place mutation, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, kind, func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[3])
		}
	})
	if visited != 3 {
		t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
	}
}

func TestIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	dead := CreateEntity(w)

	layout := map[Entity][]component.ComponentKind[int]{
		e1:   {ka},
		e2:   {ka, kb, kc, kd},
		e3:   {ka, kb},
		dead: {ka, kb, kc, kd},
	}
	for e, kinds := range layout {
		for i, k := range kinds {
			if err := Add(w, e, k, intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}
	}
	DestroyEntity(w, dead)

	collect2 := func() []Entity {
		var res []Entity
		ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
		return res
	}
	collect3 := func() []Entity {
		var res []Entity
		ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
		return res
	}
	collect4 := func() []Entity {
		var res []Entity
		ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
		return res
	}

	cases := []struct {
		name string
		got  []Entity
		want []Entity
	}{
		{"two", collect2(), []Entity{e2, e3}},
		{"three", collect3(), []Entity{e2}},
		{"four", collect4(), []Entity{e2}},
		{"query", w.Query(kc, ka), []Entity{e2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toSet(c.got)
			if len(got) != len(c.want) {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
			for _, e := range c.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("expected %s in %v", e, c.got)
				}
			}
		})
	}

	if _, ok := First(w, component.NewComponentKind[string]()); ok {
		t.Fatalf("expected no match for an unused kind")
	}
	if e, ok := First(w, kd); !ok || e != e2 {
		t.Fatalf("expected First to find e2, got %s ok=%v", e, ok)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (s recordingSystem) Update(w *World) { *s.log = append(*s.log, s.name) }

func TestSchedulerOrderAndEvents(t *testing.T) {
	var log []string
	s := NewScheduler(recordingSystem{"input", &log}, nil, recordingSystem{"physics", &log})
	s.Add(recordingSystem{"render", &log})

	w := NewWorld()
	s.Update(w)
	if len(log) != 3 || log[0] != "input" || log[1] != "physics" || log[2] != "render" {
		t.Fatalf("unexpected order %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected nil system to be skipped")
	}

	w.Events().Push(Event{Kind: EventHeroDamaged})
	w.Events().Push(Event{Kind: EventHeroDefeated})
	evts := w.Events().Drain()
	if len(evts) != 2 || evts[1].Kind != EventHeroDefeated || w.Events().Len() != 0 {
		t.Fatalf("unexpected drain %v", evts)
	}
}
