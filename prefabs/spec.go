package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type SpriteSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type CollisionSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Body        BodySpec        `yaml:"body"`
	MoveSpeed   float64         `yaml:"move_speed"`
	JumpSpeed   float64         `yaml:"jump_speed"`
}

type NoteSpec struct {
	Name         string          `yaml:"name"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
	Collision    CollisionSpec   `yaml:"collision"`
	BobAmplitude float64         `yaml:"bob_amplitude"`
	BobSpeed     float64         `yaml:"bob_speed"`
}

type GateSpec struct {
	Name        string          `yaml:"name"`
	Color       string          `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type PortalSpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Collision   CollisionSpec   `yaml:"collision"`
}

type PlatformSpec struct {
	Name        string          `yaml:"name"`
	Color       string          `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type OverlaySpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	SpinSpeed   float64         `yaml:"spin_speed"`
}

type HUDSpec struct {
	Name        string          `yaml:"name"`
	Icon        SpriteSpec      `yaml:"icon"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// LoadSpec reads and unmarshals an embedded prefab spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, err
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}
