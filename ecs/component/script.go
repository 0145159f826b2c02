package component

// Script attaches a tengo behaviour script to an entity.
type Script struct {
	Path string
	// Params are exposed to the script as the `params` map.
	Params map[string]any
}

var ScriptComponent = NewComponent[Script]()
