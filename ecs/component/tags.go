package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// TombTag marks the marker left where the hero fell.
type TombTag struct{}

var TombTagComponent = NewComponent[TombTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
