package actor

// Facing is the cardinal direction the actor last moved toward.
// The zero value is FacingDown.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

var facingNames = [...]string{
	FacingDown:  "down",
	FacingUp:    "up",
	FacingLeft:  "left",
	FacingRight: "right",
}

func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return "unknown"
}

// Valid reports whether f is one of the four cardinal values.
func (f Facing) Valid() bool {
	return f <= FacingRight
}

// Unit returns the unit vector pointing along f in screen coordinates
// (y grows downward).
func (f Facing) Unit() Vec {
	switch f {
	case FacingUp:
		return Vec{Y: -1}
	case FacingLeft:
		return Vec{X: -1}
	case FacingRight:
		return Vec{X: 1}
	default:
		return Vec{Y: 1}
	}
}

// ParseFacing maps a prefab string to a Facing.
func ParseFacing(s string) (Facing, bool) {
	for i, name := range facingNames {
		if name == s {
			return Facing(i), true
		}
	}
	return FacingDown, false
}

// Vec is a 2D vector in world pixels.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
