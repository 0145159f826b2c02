package component

import "github.com/milk9111/topdown/actor"

// Input stores the per-frame input snapshot for an entity.
type Input struct {
	State actor.Input
}

var InputComponent = NewComponent[Input]()
