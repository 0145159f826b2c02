package component

// Transform places an entity in arena space. X/Y is the centre; physics
// writes it back every tick for entities with a body.
type Transform struct {
	X, Y float64

	// Zero scale is treated as 1 when drawing.
	ScaleX, ScaleY float64

	// Radians. Only arrows rotate, to point along their heading.
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
