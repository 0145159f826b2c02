package component

// Hidden marks sprites the renderer should skip. The entity stays alive.
type Hidden struct{}

var HiddenComponent = NewComponent[Hidden]()
