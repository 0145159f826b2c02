package common

import "time"

// Logical screen size. The arena is drawn 1:1 and the window scales it.
const (
	BaseWidth  = 480
	BaseHeight = 320
)

// TPS is ebiten's default tick rate.
const TPS = 60

const (
	TickDelta    = 1.0 / TPS
	TickDuration = time.Second / TPS
)
