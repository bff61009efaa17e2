package entity

import (
	"fmt"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/prefabs"
)

// NewOverlay builds the decorative spirit. It renders in screen space on
// top of everything; the overlay system drives its transform from the
// player's mapped position.
func NewOverlay(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.OverlaySpec]("overlay.yaml")
	if err != nil {
		return 0, fmt.Errorf("overlay: %w", err)
	}

	img, err := rectImage(spec.Sprite.Width, spec.Sprite.Height, spec.Sprite.Color)
	if err != nil {
		return 0, fmt.Errorf("overlay: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.OverlayTagComponent.Kind(), &component.OverlayTag{}); err != nil {
		return 0, fmt.Errorf("overlay: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.OverlayComponent.Kind(), &component.Overlay{
		Scale:     1,
		SpinSpeed: spec.SpinSpeed,
	}); err != nil {
		return 0, fmt.Errorf("overlay: add overlay: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("overlay: add screen-space: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("overlay: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: img,
		// center origin so the idle spin rotates in place
		OriginX: float64(spec.Sprite.Width) / 2,
		OriginY: float64(spec.Sprite.Height) / 2,
	}); err != nil {
		return 0, fmt.Errorf("overlay: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("overlay: add layer: %w", err)
	}

	return e, nil
}
