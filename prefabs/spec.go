package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec lays out one play field: its size, where the hero starts and
// which hazards are placed in it.
type ArenaSpec struct {
	Name       string          `yaml:"name"`
	Width      float64         `yaml:"width"`
	Height     float64         `yaml:"height"`
	Thickness  float64         `yaml:"wall_thickness"`
	Background *YAMLColor      `yaml:"background"`
	Hero       PlacementSpec   `yaml:"hero"`
	Hazards    []PlacementSpec `yaml:"hazards"`
}

// PlacementSpec puts a prefab at a position. Params override the prefab's
// script params.
type PlacementSpec struct {
	Prefab string         `yaml:"prefab"`
	X      float64        `yaml:"x"`
	Y      float64        `yaml:"y"`
	Params map[string]any `yaml:"params"`
}

func LoadArenaSpec(name string) (ArenaSpec, error) {
	filename := name
	if !strings.HasSuffix(filename, ".yaml") {
		filename += ".yaml"
	}
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return ArenaSpec{}, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return ArenaSpec{}, fmt.Errorf("prefabs: arena %s: invalid size %vx%v", filename, spec.Width, spec.Height)
	}
	if spec.Hero.Prefab == "" {
		spec.Hero.Prefab = "hero.yaml"
	}
	return spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
