package entity

import (
	"fmt"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/levels"
	"github.com/milk9111/notewood/prefabs"
)

func NewMovingPlatform(w *ecs.World, rect levels.Rect) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PlatformSpec]("platform.yaml")
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}

	img, err := rectImage(int(rect.W), int(rect.H), spec.Color)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{
		OriginX: rect.X,
		OriginY: rect.Y,
	}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: rect.X, Y: rect.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("platform: add layer: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     rect.W,
		Height:    rect.H,
		Kinematic: true,
	}); err != nil {
		return 0, fmt.Errorf("platform: add body: %w", err)
	}

	return e, nil
}
