package component

import "github.com/milk9111/topdown/actor"

// Hero binds an entity to the actor that drives it.
type Hero struct {
	Actor            *actor.Actor
	ProjectilePrefab string
	ProjectileSpeed  float64
	ProjectileTTL    int
	// ReloadFrames is how long after a shot the ready signal is raised.
	ReloadFrames int
}

var HeroComponent = NewComponent[Hero]()
