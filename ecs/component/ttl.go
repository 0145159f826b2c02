package component

// TTL bounds an entity's lifetime in update ticks. Arrows carry one so a
// shot that never lands still leaves the world.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
