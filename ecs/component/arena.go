package component

import "image/color"

// Arena describes the bounded play field. The physics system walls it in.
type Arena struct {
	Width      float64
	Height     float64
	Thickness  float64
	Background color.Color
}

var ArenaComponent = NewComponent[Arena]()
