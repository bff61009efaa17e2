package entity

import (
	"fmt"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/prefabs"
)

func NewNote(w *ecs.World, index int, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.NoteSpec]("note.yaml")
	if err != nil {
		return 0, fmt.Errorf("note %d: %w", index, err)
	}

	img, err := rectImage(spec.Sprite.Width, spec.Sprite.Height, spec.Sprite.Color)
	if err != nil {
		return 0, fmt.Errorf("note %d: %w", index, err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NoteComponent.Kind(), &component.Note{
		Index:           index,
		CollisionWidth:  spec.Collision.Width,
		CollisionHeight: spec.Collision.Height,
		BaseY:           y,
		BobAmplitude:    spec.BobAmplitude,
		BobSpeed:        spec.BobSpeed,
		BobPhase:        float64(index), // desync the bobbing
	}); err != nil {
		return 0, fmt.Errorf("note %d: add note: %w", index, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("note %d: add transform: %w", index, err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("note %d: add sprite: %w", index, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("note %d: add layer: %w", index, err)
	}

	return e, nil
}
