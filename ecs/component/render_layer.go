package component

// RenderLayer orders world sprites: floor decals (spikes, tombs) sit below
// hazards, hazards below arrows, arrows below the hero. Equal indices fall
// back to entity order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
