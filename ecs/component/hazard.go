package component

// Hazard hurts the hero on contact. The contact box is centred on the
// Transform and shifted by the offsets, so a slime's box can hug its body
// rather than its sprite frame.
type Hazard struct {
	Width, Height    float64
	OffsetX, OffsetY float64

	// Slimes are destructible and die to a single arrow. Spikes are not.
	Destructible bool
}

var HazardComponent = NewComponent[Hazard]()
