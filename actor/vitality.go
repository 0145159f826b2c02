package actor

import "time"

// Vitality tracks hit points and the damage-cooldown window.
type Vitality struct {
	hp      int
	max     int
	window  time.Duration
	lastHit time.Time
	clock   Clock
}

func newVitality(max int, window time.Duration, clock Clock, lastHit time.Time) Vitality {
	return Vitality{hp: max, max: max, window: window, clock: clock, lastHit: lastHit}
}

// HitPoints is the remaining hit points.
func (v *Vitality) HitPoints() int { return v.hp }

// Max is the hit points the actor started with.
func (v *Vitality) Max() int { return v.max }

// Defeated reports hp <= 0.
func (v *Vitality) Defeated() bool { return v.hp <= 0 }

// LastHit is the instant of the most recent damage, or the construction
// instant if no damage has landed yet.
func (v *Vitality) LastHit() time.Time { return v.lastHit }

// Window is the invulnerability interval after a hit.
func (v *Vitality) Window() time.Duration { return v.window }

// CanTakeDamage reports whether the next hit would land.
func (v *Vitality) CanTakeDamage() bool {
	if v.Defeated() {
		return false
	}
	return v.clock.Now().Sub(v.lastHit) > v.window
}

// damage removes one hit point if outside the window. It reports whether
// the hit landed.
func (v *Vitality) damage() bool {
	if !v.CanTakeDamage() {
		return false
	}
	v.hp--
	if v.hp < 0 {
		v.hp = 0
	}
	v.lastHit = v.clock.Now()
	return true
}
