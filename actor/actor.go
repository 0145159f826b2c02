package actor

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultSpeed                 = 100.0
	DefaultMaxHitPoints          = 3
	DefaultInvulnerabilityWindow = 500 * time.Millisecond
)

// Config holds the actor's tunables.
type Config struct {
	Speed                 float64
	MaxHitPoints          int
	InvulnerabilityWindow time.Duration
	// SpawnProtection starts the invulnerability window at construction.
	SpawnProtection bool
	Facing          Facing
	HUDOrigin       Vec
	HUDSpacing      float64
}

func DefaultConfig() Config {
	return Config{
		Speed:                 DefaultSpeed,
		MaxHitPoints:          DefaultMaxHitPoints,
		InvulnerabilityWindow: DefaultInvulnerabilityWindow,
		SpawnProtection:       true,
		Facing:                FacingDown,
		HUDOrigin:             Vec{X: 15, Y: 15},
		HUDSpacing:            15,
	}
}

// Deps are the collaborators the actor drives.
type Deps struct {
	Body     Body
	Animator Animator
	Scene    Scene
	Clock    Clock
	Logger   *slog.Logger
}

// Actor is the player-controlled entity: movement, facing, melee and
// ranged attacks, hit points and defeat.
type Actor struct {
	body     Body
	anim     Animator
	scene    Scene
	spawner  *Spawner
	log      *slog.Logger
	speed    float64
	facing   Facing
	state    ActionState
	velocity Vec
	vitality Vitality
	display  *HealthDisplay
	active   bool
	marker   bool
}

func New(cfg Config, deps Deps) (*Actor, error) {
	if deps.Body == nil {
		return nil, ErrNilBody
	}
	if deps.Animator == nil {
		return nil, ErrNilAnimator
	}
	if deps.Scene == nil {
		return nil, ErrNilScene
	}
	if cfg.MaxHitPoints <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxHitPoints, cfg.MaxHitPoints)
	}
	if !cfg.Facing.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFacing, cfg.Facing)
	}
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var lastHit time.Time
	if cfg.SpawnProtection {
		lastHit = clock.Now()
	}

	a := &Actor{
		body:     deps.Body,
		anim:     deps.Animator,
		scene:    deps.Scene,
		spawner:  NewSpawner(deps.Scene),
		log:      logger,
		speed:    cfg.Speed,
		facing:   cfg.Facing,
		vitality: newVitality(cfg.MaxHitPoints, cfg.InvulnerabilityWindow, clock, lastHit),
		active:   true,
	}
	a.display = newHealthDisplay(deps.Scene, cfg.MaxHitPoints, cfg.HUDOrigin, cfg.HUDSpacing)
	return a, nil
}

// Update advances the actor by one frame. When the frame fires a ranged
// attack the spawned projectile is returned with ok set.
func (a *Actor) Update(in Input) (p Projectile, ok bool) {
	if !a.Active() {
		return Projectile{}, false
	}

	m := resolveMovement(in, a.speed, a.facing)
	a.velocity = m.velocity
	a.body.SetVelocity(m.velocity)
	if m.turn {
		a.facing = m.facing
		a.play(AnimMove)
	}

	next := Next(a.state, in)
	if in.Secondary && !a.state.Loading() {
		a.play(AnimRanged)
		p, ok = a.spawner.Spawn(a, a.facing), true
		a.log.Debug("actor: ranged attack", "facing", a.facing, "x", p.Origin.X, "y", p.Origin.Y)
	}
	if in.Primary {
		a.play(AnimMelee)
	}
	if in.Empty() && next == StateIdle {
		a.play(AnimIdle)
	}
	a.state = next
	return p, ok
}

func (a *Actor) play(kind AnimKind) {
	name, flip := AnimationFor(kind, a.facing)
	a.anim.SetFlipX(flip)
	a.anim.Play(name, true)
}

// ReadyToFire clears the ranged reload latch.
func (a *Actor) ReadyToFire() {
	if a.state.Loading() {
		a.log.Debug("actor: ready to fire")
	}
	a.state = Ready(a.state)
}

// CanTakeDamage reports whether ApplyDamage would land right now.
func (a *Actor) CanTakeDamage() bool {
	return a.active && a.vitality.CanTakeDamage()
}

// ApplyDamage removes one hit point unless the actor is inside its
// invulnerability window or already defeated, in which case it does
// nothing. It reports whether the hit landed.
func (a *Actor) ApplyDamage() bool {
	if !a.active || !a.vitality.damage() {
		return false
	}
	hp := a.vitality.HitPoints()
	a.display.Show(hp)
	a.log.Debug("actor: damaged", "hp", hp)
	if a.vitality.Defeated() {
		a.defeat()
	}
	return true
}

func (a *Actor) defeat() {
	pos := a.body.Position()
	if !a.marker {
		a.scene.NewDeathMarker(pos)
		a.marker = true
	}
	a.velocity = Vec{}
	a.body.Destroy()
	a.active = false
	a.log.Info("actor: defeated", "x", pos.X, "y", pos.Y)
}

// SetSpeed changes the movement speed used from the next frame on.
func (a *Actor) SetSpeed(speed float64) { a.speed = speed }

func (a *Actor) Speed() float64 { return a.speed }

func (a *Actor) Active() bool { return a.active && a.body.Active() }

func (a *Actor) HitPoints() int { return a.vitality.HitPoints() }

func (a *Actor) MaxHitPoints() int { return a.vitality.Max() }

func (a *Actor) IsDefeated() bool { return a.vitality.Defeated() }

func (a *Actor) Facing() Facing { return a.facing }

func (a *Actor) State() ActionState { return a.state }

func (a *Actor) Velocity() Vec { return a.velocity }

func (a *Actor) HealthDisplay() *HealthDisplay { return a.display }

// HasDeathMarker reports whether the defeat marker was placed.
func (a *Actor) HasDeathMarker() bool { return a.marker }

// Position is the body's current position. Undefined after defeat.
func (a *Actor) Position() Vec { return a.body.Position() }
