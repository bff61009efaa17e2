package entity

import (
	"fmt"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/prefabs"
)

func NewPortal(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.PortalSpec]("portal.yaml")
	if err != nil {
		return 0, fmt.Errorf("portal: %w", err)
	}

	img, err := rectImage(spec.Sprite.Width, spec.Sprite.Height, spec.Sprite.Color)
	if err != nil {
		return 0, fmt.Errorf("portal: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PortalComponent.Kind(), &component.Portal{
		CollisionWidth:  spec.Collision.Width,
		CollisionHeight: spec.Collision.Height,
	}); err != nil {
		return 0, fmt.Errorf("portal: add portal: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("portal: add transform: %w", err)
	}
	// the portal system strips this sprite until every note is collected
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("portal: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("portal: add layer: %w", err)
	}

	return e, nil
}
