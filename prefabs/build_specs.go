package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// LoadComponentSpec decodes one named component block out of a prefab.
// ok is false when the prefab does not carry that component.
func LoadComponentSpec[T any](filename, component string) (spec T, ok bool, err error) {
	build, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return spec, false, err
	}
	raw, ok := build.Components[component]
	if !ok {
		return spec, false, nil
	}
	spec, err = DecodeComponentSpec[T](raw)
	return spec, err == nil, err
}

type HeroComponentSpec struct {
	Speed             float64 `yaml:"speed"`
	MaxHitPoints      int     `yaml:"max_hit_points"`
	InvulnerabilityMS int     `yaml:"invulnerability_ms"`
	SpawnProtection   *bool   `yaml:"spawn_protection"`
	Facing            string  `yaml:"facing"`
	ProjectilePrefab  string  `yaml:"projectile_prefab"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileTTL     int     `yaml:"projectile_ttl"`
	ReloadFrames      int     `yaml:"reload_frames"`
	HUDOriginX        float64 `yaml:"hud_origin_x"`
	HUDOriginY        float64 `yaml:"hud_origin_y"`
	HUDSpacing        float64 `yaml:"hud_spacing"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	UseSource          bool    `yaml:"use_source"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
	FlipX              bool    `yaml:"flip_x"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet      string                               `yaml:"sheet"`
	Defs       map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current    string                               `yaml:"current"`
	Frame      int                                  `yaml:"frame"`
	FrameTimer int                                  `yaml:"frame_timer"`
	Playing    bool                                 `yaml:"playing"`
}

type PhysicsBodyComponentSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Radius             float64 `yaml:"radius"`
	Mass               float64 `yaml:"mass"`
	Friction           float64 `yaml:"friction"`
	Elasticity         float64 `yaml:"elasticity"`
	Static             bool    `yaml:"static"`
	Sensor             bool    `yaml:"sensor"`
	ScaleWithTransform bool    `yaml:"scale_with_transform"`
	DefaultWidth       float64 `yaml:"default_width"`
	DefaultHeight      float64 `yaml:"default_height"`
}

type HazardComponentSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	OffsetX            float64 `yaml:"offset_x"`
	OffsetY            float64 `yaml:"offset_y"`
	AutoSizeFromSprite bool    `yaml:"auto_size_from_sprite"`
	Destructible       bool    `yaml:"destructible"`
}

type ScriptComponentSpec struct {
	Path   string         `yaml:"path"`
	Params map[string]any `yaml:"params"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}
