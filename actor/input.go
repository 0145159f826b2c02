package actor

// Input is the per-frame key-state snapshot consumed by Update.
type Input struct {
	Left      bool
	Right     bool
	Up        bool
	Down      bool
	Primary   bool
	Secondary bool
}

// Horizontal reports whether a left or right key is held.
func (in Input) Horizontal() bool {
	return in.Left || in.Right
}

// Vertical reports whether an up or down key is held.
func (in Input) Vertical() bool {
	return in.Up || in.Down
}

// Directional reports whether any movement key is held.
func (in Input) Directional() bool {
	return in.Horizontal() || in.Vertical()
}

// Empty reports whether no flag at all is set.
func (in Input) Empty() bool {
	return !in.Directional() && !in.Primary && !in.Secondary
}
