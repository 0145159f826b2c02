package component

// Cooldown is a frame-based countdown. When Frames reaches zero the
// component is removed and interested systems react (a hero becomes ready
// to fire again).
type Cooldown struct {
	// Frames remaining (in update ticks)
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
