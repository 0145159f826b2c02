package actor

import "time"

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . Body,Animator,Scene,Indicator

// Body is the actor's physical representation in the hosting world.
// Velocity is integrated by the host; the actor only sets intent.
type Body interface {
	Position() Vec
	SetVelocity(v Vec)
	Active() bool
	Destroy()
}

// Animator plays named clips on the actor's visual representation.
type Animator interface {
	Play(name string, ignoreIfPlaying bool)
	SetFlipX(flip bool)
}

// Scene creates the entities the actor hands off to the world.
type Scene interface {
	NewIndicator(slot int, pos Vec) Indicator
	AddProjectile(p Projectile)
	NewDeathMarker(pos Vec)
}

// Indicator is one heads-up life slot.
type Indicator interface {
	SetVisible(visible bool)
}

// Clock is the time source for the invulnerability window.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads wall-clock time.
var SystemClock Clock = ClockFunc(time.Now)
