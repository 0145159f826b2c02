package component

// ScreenSpace marks HUD sprites. They are drawn after the arena, above
// every world layer.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
