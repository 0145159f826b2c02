package actor

// movement is the movement resolver's output for one frame.
type movement struct {
	velocity Vec
	facing   Facing
	turn     bool
}

// resolveMovement turns an input snapshot into a velocity and, when a
// directional key is held, the facing to adopt. Both axes contribute to
// velocity. Facing is single-axis: a held horizontal key wins and the
// vertical axis then only moves. Left beats right and up beats down.
func resolveMovement(in Input, speed float64, cur Facing) movement {
	m := movement{facing: cur}

	switch {
	case in.Left:
		m.velocity.X = -speed
		m.facing, m.turn = FacingLeft, true
	case in.Right:
		m.velocity.X = speed
		m.facing, m.turn = FacingRight, true
	}

	var vertical Facing
	switch {
	case in.Up:
		m.velocity.Y = -speed
		vertical = FacingUp
	case in.Down:
		m.velocity.Y = speed
		vertical = FacingDown
	default:
		return m
	}

	if !in.Horizontal() {
		m.facing, m.turn = vertical, true
	}
	return m
}
