package component

import "github.com/milk9111/topdown/actor"

// Projectile flies along Facing at Speed until it hits something or its
// TTL runs out.
type Projectile struct {
	Owner  uint64
	Facing actor.Facing
	Speed  float64
}

var ProjectileComponent = NewComponent[Projectile]()

// ProjectileImpact is a one-shot request raised by the physics system when a
// projectile touches a wall or hazard. Target is zero for walls.
type ProjectileImpact struct {
	Target uint64
}

var ProjectileImpactComponent = NewComponent[ProjectileImpact]()
