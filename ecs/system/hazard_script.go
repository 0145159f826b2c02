package system

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

const hazardScriptDispatch = `
update(__engine, __state, __params)
`

// ScriptSystem runs each entity's tengo `update(engine, state, params)`
// once per tick. Compiled programs are shared per script file and cloned
// per entity so every hazard keeps its own globals and state map.
type ScriptSystem struct {
	log *slog.Logger

	programs map[string]*tengo.Compiled
	runtimes map[ecs.Entity]*scriptRuntime
	failed   map[ecs.Entity]string
}

type scriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
	params     tengo.Object
}

func NewScriptSystem(logger *slog.Logger) *ScriptSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScriptSystem{
		log:      logger,
		programs: make(map[string]*tengo.Compiled),
		runtimes: make(map[ecs.Entity]*scriptRuntime),
		failed:   make(map[ecs.Entity]string),
	}
}

// Invalidate drops the compiled program for name and resets every entity
// running it. The next tick recompiles from disk.
func (s *ScriptSystem) Invalidate(name string) {
	if s == nil {
		return
	}
	key := scriptKey(name)
	delete(s.programs, key)
	for e, rt := range s.runtimes {
		if scriptKey(rt.scriptPath) == key {
			delete(s.runtimes, e)
		}
	}
	for e, p := range s.failed {
		if scriptKey(p) == key {
			delete(s.failed, e)
		}
	}
}

// State returns the script state map of e converted to Go values.
func (s *ScriptSystem) State(e ecs.Entity) (map[string]any, bool) {
	if s == nil {
		return nil, false
	}
	rt, ok := s.runtimes[e]
	if !ok {
		return nil, false
	}
	out, _ := objectToAny(rt.stateData).(map[string]any)
	return out, true
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for e := range s.runtimes {
		if !ecs.Has(w, e, component.ScriptComponent.Kind()) {
			delete(s.runtimes, e)
		}
	}
	for e := range s.failed {
		if !w.IsAlive(e) {
			delete(s.failed, e)
		}
	}

	heroX, heroY := 0.0, 0.0
	if player, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			heroX, heroY = t.X, t.Y
		}
	}

	ecs.ForEach(w, component.ScriptComponent.Kind(), func(e ecs.Entity, sc *component.Script) {
		if strings.TrimSpace(sc.Path) == "" {
			return
		}
		if _, failed := s.failed[e]; failed {
			return
		}

		rt, err := s.runtime(e, sc)
		if err != nil {
			s.fail(e, sc.Path, "load", err)
			return
		}

		engine := s.buildEngine(w, e, heroX, heroY)
		if err := rt.run(engine); err != nil {
			s.fail(e, sc.Path, "update", err)
		}
	})
}

func (s *ScriptSystem) fail(e ecs.Entity, scriptPath, step string, err error) {
	s.failed[e] = scriptPath
	delete(s.runtimes, e)
	s.log.Warn("script: "+step+" failed", "entity", e.String(), "script", scriptPath, "err", err)
}

func (s *ScriptSystem) runtime(e ecs.Entity, sc *component.Script) (*scriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.scriptPath == sc.Path {
		return rt, nil
	}

	program, err := s.program(sc.Path)
	if err != nil {
		return nil, err
	}

	params, err := tengo.FromInterface(paramsOrEmpty(sc.Params))
	if err != nil {
		return nil, fmt.Errorf("convert params: %w", err)
	}

	rt := &scriptRuntime{
		scriptPath: sc.Path,
		compiled:   program.Clone(),
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
		params:     params,
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (s *ScriptSystem) program(scriptPath string) (*tengo.Compiled, error) {
	key := scriptKey(scriptPath)
	if c, ok := s.programs[key]; ok {
		return c, nil
	}

	scriptBytes, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + hazardScriptDispatch
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__params", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", scriptPath, err)
	}

	s.programs[key] = compiled
	return compiled, nil
}

func (rt *scriptRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__params", rt.params); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (s *ScriptSystem) buildEngine(w *ecs.World, e ecs.Entity, heroX, heroY float64) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y := 0.0, 0.0
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			x, y = t.X, t.Y
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}, nil
	}}

	values["get_hero_position"] = &tengo.UserFunction{Name: "get_hero_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: heroX}, &tengo.Float{Value: heroY}}}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		vx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
		}
		vy, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[1].TypeName()}
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.X, vel.Y = vx, vy
			return tengo.TrueValue, nil
		}
		if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy}); err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		s.log.Debug("script: "+strings.Join(parts, " "), "entity", e.String())
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func paramsOrEmpty(p map[string]any) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return p
}

func scriptKey(p string) string {
	return path.Base(filepath.ToSlash(p))
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
