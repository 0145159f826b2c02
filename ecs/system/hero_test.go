package system

import (
	"testing"
	"time"

	"github.com/milk9111/topdown/actor"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func spawnHero(t *testing.T, w *ecs.World, clock actor.Clock) (ecs.Entity, *actor.Actor) {
	t.Helper()
	e, a, err := entity.NewHeroAt(w, "hero.yaml", 50, 200, entity.HeroDeps{Clock: clock})
	if err != nil {
		t.Fatalf("NewHeroAt: %v", err)
	}
	return e, a
}

func countEvents(events []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func TestInputSystemCopiesSnapshot(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.CreateEntity(w)
	b := ecs.CreateEntity(w)
	_ = ecs.Add(w, a, component.InputComponent.Kind(), &component.Input{})
	_ = ecs.Add(w, b, component.InputComponent.Kind(), &component.Input{State: actor.Input{Primary: true}})

	want := actor.Input{Left: true, Up: true, Secondary: true}
	NewInputSystemFrom(func() actor.Input { return want }).Update(w)

	for _, e := range []ecs.Entity{a, b} {
		in, _ := ecs.Get(w, e, component.InputComponent.Kind())
		if in.State != want {
			t.Fatalf("entity %s: expected %+v, got %+v", e, want, in.State)
		}
	}

	// a nil reader is a no-op
	(&InputSystem{}).Update(w)
}

func TestHeroSystemFiresAndReloads(t *testing.T) {
	w := ecs.NewWorld()
	e, a := spawnHero(t, w, newClock())
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	hero, _ := ecs.Get(w, e, component.HeroComponent.Kind())

	heroes := NewHeroSystem(nil)
	cooldowns := NewCooldownSystem()

	in.State = actor.Input{Secondary: true}
	heroes.Update(w)

	if a.State() != actor.StateLoadingRanged {
		t.Fatalf("expected loading state, got %s", a.State())
	}
	cd, ok := ecs.Get(w, e, component.CooldownComponent.Kind())
	if !ok || cd.Frames != hero.ReloadFrames {
		t.Fatalf("expected reload cooldown of %d frames, got %+v ok=%v", hero.ReloadFrames, cd, ok)
	}
	if got := len(w.Query(component.ProjectileComponent.Kind())); got != 1 {
		t.Fatalf("expected one projectile, got %d", got)
	}
	if got := countEvents(w.Events().Drain(), ecs.EventProjectileFired); got != 1 {
		t.Fatalf("expected one fired event, got %d", got)
	}

	// holding the button while loading does not fire again
	for i := 1; i < hero.ReloadFrames; i++ {
		heroes.Update(w)
		cooldowns.Update(w)
		if a.State() != actor.StateLoadingRanged {
			t.Fatalf("tick %d: expected still loading, got %s", i, a.State())
		}
	}
	if got := len(w.Query(component.ProjectileComponent.Kind())); got != 1 {
		t.Fatalf("expected a single projectile while loading, got %d", got)
	}
	if countEvents(w.Events().Drain(), ecs.EventHeroReady) != 0 {
		t.Fatalf("ready raised too early")
	}

	cooldowns.Update(w)
	if a.State() != actor.StateIdle {
		t.Fatalf("expected idle after reload, got %s", a.State())
	}
	if ecs.Has(w, e, component.CooldownComponent.Kind()) {
		t.Fatalf("expected cooldown removed")
	}
	if got := countEvents(w.Events().Drain(), ecs.EventHeroReady); got != 1 {
		t.Fatalf("expected one ready event, got %d", got)
	}

	heroes.Update(w)
	if got := len(w.Query(component.ProjectileComponent.Kind())); got != 2 {
		t.Fatalf("expected a second projectile after reload, got %d", got)
	}
}

func TestCooldownWithoutHero(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: 2})

	s := NewCooldownSystem()
	s.Update(w)
	if !ecs.Has(w, e, component.CooldownComponent.Kind()) {
		t.Fatalf("cooldown removed early")
	}
	s.Update(w)
	if ecs.Has(w, e, component.CooldownComponent.Kind()) {
		t.Fatalf("expected cooldown removed")
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected no events for a plain cooldown")
	}
}

func TestHazardContact(t *testing.T) {
	tests := []struct {
		name     string
		precheck bool
	}{
		{name: "query then apply", precheck: true},
		{name: "apply only", precheck: false},
	}

	// hp observed after each step
	steps := []struct {
		advance time.Duration
		wantHP  int
	}{
		{advance: 0, wantHP: 3},
		{advance: 501 * time.Millisecond, wantHP: 2},
		{advance: 0, wantHP: 2},
		{advance: 500 * time.Millisecond, wantHP: 2},
		{advance: 1 * time.Millisecond, wantHP: 1},
		{advance: 600 * time.Millisecond, wantHP: 0},
		{advance: 600 * time.Millisecond, wantHP: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			clock := newClock()
			e, a := spawnHero(t, w, clock)

			spike := ecs.CreateEntity(w)
			_ = ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: 55, Y: 205})
			_ = ecs.Add(w, spike, component.HazardComponent.Kind(), &component.Hazard{Width: 14, Height: 14})

			s := NewHazardSystem(nil)
			s.Precheck = tc.precheck

			damaged, defeated := 0, 0
			for i, step := range steps {
				clock.Advance(step.advance)
				s.Update(w)
				if got := a.HitPoints(); got != step.wantHP {
					t.Fatalf("step %d: expected hp %d, got %d", i, step.wantHP, got)
				}
				events := w.Events().Drain()
				damaged += countEvents(events, ecs.EventHeroDamaged)
				defeated += countEvents(events, ecs.EventHeroDefeated)
			}

			if damaged != 3 || defeated != 1 {
				t.Fatalf("expected 3 damage and 1 defeat events, got %d and %d", damaged, defeated)
			}
			if ecs.IsAlive(w, e) {
				t.Fatalf("expected hero entity destroyed")
			}
			if got := len(w.Query(component.TombTagComponent.Kind())); got != 1 {
				t.Fatalf("expected one tomb, got %d", got)
			}
		})
	}
}

func TestHazardIgnoresDistantHero(t *testing.T) {
	w := ecs.NewWorld()
	clock := newClock()
	_, a := spawnHero(t, w, clock)

	spike := ecs.CreateEntity(w)
	_ = ecs.Add(w, spike, component.TransformComponent.Kind(), &component.Transform{X: 200, Y: 200})
	_ = ecs.Add(w, spike, component.HazardComponent.Kind(), &component.Hazard{Width: 14, Height: 14})

	clock.Advance(time.Second)
	NewHazardSystem(nil).Update(w)
	if a.HitPoints() != 3 {
		t.Fatalf("expected no damage, got hp %d", a.HitPoints())
	}
}

func TestHealthBarSync(t *testing.T) {
	w := ecs.NewWorld()
	clock := newClock()
	_, a := spawnHero(t, w, clock)
	bar := NewHealthBarSystem()

	hidden := func() int {
		return len(w.Query(component.HealthIndicatorComponent.Kind(), component.HiddenComponent.Kind()))
	}

	bar.Update(w)
	if hidden() != 0 {
		t.Fatalf("expected every heart shown")
	}

	for want := 1; want <= 3; want++ {
		clock.Advance(time.Second)
		if !a.ApplyDamage() {
			t.Fatalf("expected damage %d to land", want)
		}
		bar.Update(w)
		if got := hidden(); got != want {
			t.Fatalf("expected %d hidden hearts, got %d", want, got)
		}
	}

	if got := len(w.Query(component.HealthIndicatorComponent.Kind())); got != 3 {
		t.Fatalf("hearts must stay alive, got %d", got)
	}

	// indicators turned back on are shown again
	ecs.ForEach(w, component.HealthIndicatorComponent.Kind(), func(e ecs.Entity, hi *component.HealthIndicator) {
		hi.Visible = true
	})
	bar.Update(w)
	if hidden() != 0 {
		t.Fatalf("expected hearts shown again")
	}
}
