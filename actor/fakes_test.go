package actor_test

import (
	"time"

	"github.com/milk9111/topdown/actor"
)

type fakeBody struct {
	pos       actor.Vec
	vel       actor.Vec
	setCalls  int
	destroyed int
}

func (b *fakeBody) Position() actor.Vec { return b.pos }
func (b *fakeBody) SetVelocity(v actor.Vec) {
	b.vel = v
	b.setCalls++
}
func (b *fakeBody) Active() bool { return b.destroyed == 0 }
func (b *fakeBody) Destroy() { b.destroyed++ }

type playCall struct {
	name string
	flip bool
}

type fakeAnimator struct {
	flip  bool
	plays []playCall
}

func (a *fakeAnimator) Play(name string, _ bool) {
	a.plays = append(a.plays, playCall{name: name, flip: a.flip})
}
func (a *fakeAnimator) SetFlipX(flip bool) { a.flip = flip }

func (a *fakeAnimator) last() (playCall, bool) {
	if len(a.plays) == 0 {
		return playCall{}, false
	}
	return a.plays[len(a.plays)-1], true
}

func (a *fakeAnimator) reset() { a.plays = nil }

type fakeIndicator struct {
	slot    int
	pos     actor.Vec
	visible bool
}

func (i *fakeIndicator) SetVisible(v bool) { i.visible = v }

type fakeScene struct {
	indicators  []*fakeIndicator
	projectiles []actor.Projectile
	markers     []actor.Vec
}

func (s *fakeScene) NewIndicator(slot int, pos actor.Vec) actor.Indicator {
	ind := &fakeIndicator{slot: slot, pos: pos}
	s.indicators = append(s.indicators, ind)
	return ind
}
func (s *fakeScene) AddProjectile(p actor.Projectile) { s.projectiles = append(s.projectiles, p) }
func (s *fakeScene) NewDeathMarker(pos actor.Vec) { s.markers = append(s.markers, pos) }

func (s *fakeScene) visibleIndicators() int {
	n := 0
	for _, ind := range s.indicators {
		if ind.visible {
			n++
		}
	}
	return n
}

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type rig struct {
	actor *actor.Actor
	body  *fakeBody
	anim  *fakeAnimator
	scene *fakeScene
	clock *manualClock
}

type tester interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newRig(t tester, mutate func(*actor.Config)) *rig {
	t.Helper()
	cfg := actor.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	r := &rig{
		body:  &fakeBody{pos: actor.Vec{X: 50, Y: 200}},
		anim:  &fakeAnimator{},
		scene: &fakeScene{},
		clock: newManualClock(),
	}
	a, err := actor.New(cfg, actor.Deps{Body: r.body, Animator: r.anim, Scene: r.scene, Clock: r.clock})
	if err != nil {
		t.Fatalf("new actor: %v", err)
	}
	r.actor = a
	return r
}
