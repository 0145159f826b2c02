package actor_test

import (
	"testing"
	"time"

	"github.com/milk9111/topdown/actor"
	"pgregory.net/rapid"
)

func noSpawnProtection(cfg *actor.Config) { cfg.SpawnProtection = false }

func TestDamageScenarioWindow(t *testing.T) {
	r := newRig(t, noSpawnProtection)

	steps := []struct {
		name    string
		advance time.Duration
		landed  bool
		hp      int
	}{
		{"t0", 0, true, 2},
		{"t400", 400 * time.Millisecond, false, 2},
		{"t600", 200 * time.Millisecond, true, 1},
	}

	for _, s := range steps {
		r.clock.Advance(s.advance)
		if got := r.actor.ApplyDamage(); got != s.landed {
			t.Fatalf("%s: expected landed=%v, got %v", s.name, s.landed, got)
		}
		if r.actor.HitPoints() != s.hp {
			t.Fatalf("%s: expected hp %d, got %d", s.name, s.hp, r.actor.HitPoints())
		}
	}
}

func TestSpawnProtection(t *testing.T) {
	r := newRig(t, nil)
	if r.actor.CanTakeDamage() {
		t.Fatalf("expected spawn protection right after construction")
	}
	if r.actor.ApplyDamage() {
		t.Fatalf("expected damage to be ignored during spawn protection")
	}
	r.clock.Advance(actor.DefaultInvulnerabilityWindow)
	if r.actor.CanTakeDamage() {
		t.Fatalf("window boundary is inclusive; expected still protected")
	}
	r.clock.Advance(time.Millisecond)
	if !r.actor.ApplyDamage() {
		t.Fatalf("expected damage to land after the window")
	}
	if r.actor.HitPoints() != 2 {
		t.Fatalf("expected hp 2, got %d", r.actor.HitPoints())
	}
}

func TestDamageTwiceWithinWindow(t *testing.T) {
	r := newRig(t, noSpawnProtection)
	r.actor.ApplyDamage()
	r.clock.Advance(actor.DefaultInvulnerabilityWindow / 2)
	r.actor.ApplyDamage()
	if r.actor.HitPoints() != 2 {
		t.Fatalf("expected exactly one hit to land, hp=%d", r.actor.HitPoints())
	}
}

func TestDamageToDefeat(t *testing.T) {
	r := newRig(t, noSpawnProtection)
	r.body.pos = actor.Vec{X: 80, Y: 120}
	step := actor.DefaultInvulnerabilityWindow + time.Millisecond

	for i, want := range []int{2, 1, 0} {
		if !r.actor.ApplyDamage() {
			t.Fatalf("hit %d: expected to land", i+1)
		}
		if r.actor.HitPoints() != want {
			t.Fatalf("hit %d: expected hp %d, got %d", i+1, want, r.actor.HitPoints())
		}
		if want > 0 && (r.actor.IsDefeated() || len(r.scene.markers) != 0) {
			t.Fatalf("hit %d: defeated too early", i+1)
		}
		r.clock.Advance(step)
	}

	if !r.actor.IsDefeated() {
		t.Fatalf("expected defeat after third hit")
	}
	if len(r.scene.markers) != 1 || r.scene.markers[0] != (actor.Vec{X: 80, Y: 120}) {
		t.Fatalf("expected one marker at last position, got %+v", r.scene.markers)
	}
	if r.body.destroyed != 1 {
		t.Fatalf("expected body destroyed once, got %d", r.body.destroyed)
	}

	if r.actor.ApplyDamage() {
		t.Fatalf("expected damage after defeat to be a no-op")
	}
	if r.actor.CanTakeDamage() {
		t.Fatalf("expected CanTakeDamage false after defeat")
	}
	if r.actor.HitPoints() != 0 || len(r.scene.markers) != 1 || r.body.destroyed != 1 {
		t.Fatalf("state changed after defeat: hp=%d markers=%d destroyed=%d", r.actor.HitPoints(), len(r.scene.markers), r.body.destroyed)
	}
}

func TestHealthDisplay(t *testing.T) {
	r := newRig(t, noSpawnProtection)
	if len(r.scene.indicators) != 3 || r.scene.visibleIndicators() != 3 {
		t.Fatalf("expected 3 visible indicators, got %d/%d", r.scene.visibleIndicators(), len(r.scene.indicators))
	}
	for i, ind := range r.scene.indicators {
		want := actor.Vec{X: float64(i+1) * 15, Y: 15}
		if ind.slot != i || ind.pos != want {
			t.Fatalf("indicator %d at slot %d pos %+v, want %+v", i, ind.slot, ind.pos, want)
		}
	}

	r.actor.ApplyDamage()
	if r.scene.visibleIndicators() != 2 || r.scene.indicators[2].visible {
		t.Fatalf("expected last indicator hidden and 2 visible")
	}
	if d := r.actor.HealthDisplay(); d.Len() != 3 || d.Visible() != 2 {
		t.Fatalf("expected display 2/3, got %d/%d", d.Visible(), d.Len())
	}

	for i := 0; i < 2; i++ {
		r.clock.Advance(time.Second)
		r.actor.ApplyDamage()
	}
	if r.scene.visibleIndicators() != 0 || len(r.scene.indicators) != 3 {
		t.Fatalf("expected all 3 indicators hidden but present")
	}
}

func TestCanTakeDamageMatchesApplyDamage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		guarded := newRig(t, noSpawnProtection)
		blind := newRig(t, noSpawnProtection)

		steps := rapid.SliceOfN(rapid.IntRange(0, 1200), 1, 20).Draw(t, "gaps_ms")
		prev := guarded.actor.HitPoints()
		for _, ms := range steps {
			d := time.Duration(ms) * time.Millisecond
			guarded.clock.Advance(d)
			blind.clock.Advance(d)

			if guarded.actor.CanTakeDamage() {
				guarded.actor.ApplyDamage()
			}
			blind.actor.ApplyDamage()

			if guarded.actor.HitPoints() != blind.actor.HitPoints() {
				t.Fatalf("call patterns diverged: %d vs %d", guarded.actor.HitPoints(), blind.actor.HitPoints())
			}
			hp := blind.actor.HitPoints()
			if hp > prev || hp < 0 {
				t.Fatalf("hp went from %d to %d", prev, hp)
			}
			if prev == 0 && !blind.actor.IsDefeated() {
				t.Fatalf("defeat did not stick")
			}
			prev = hp
		}
		if len(blind.scene.markers) > 1 {
			t.Fatalf("expected at most one marker, got %d", len(blind.scene.markers))
		}
		if blind.actor.IsDefeated() != (len(blind.scene.markers) == 1) {
			t.Fatalf("marker presence disagrees with defeat")
		}
	})
}
