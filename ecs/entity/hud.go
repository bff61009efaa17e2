package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/prefabs"
)

// NewNoteCounter builds the top-right "collected/total" HUD: the counter
// state entity plus icon and text sprite entities.
func NewNoteCounter(w *ecs.World, total int) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.HUDSpec]("hud.yaml")
	if err != nil {
		return 0, fmt.Errorf("note counter: %w", err)
	}

	iconImage, err := rectImage(spec.Icon.Width, spec.Icon.Height, spec.Icon.Color)
	if err != nil {
		return 0, fmt.Errorf("note counter: %w", err)
	}

	counterEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, counterEntity, component.NoteCounterComponent.Kind(), &component.NoteCounter{Total: total}); err != nil {
		return 0, fmt.Errorf("note counter: add counter: %w", err)
	}

	iconEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, iconEntity, component.NoteCounterIconComponent.Kind(), &component.NoteCounterIcon{}); err != nil {
		return 0, fmt.Errorf("note counter: add icon: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("note counter: add icon screen-space: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("note counter: add icon transform: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.SpriteComponent.Kind(), &component.Sprite{Image: iconImage}); err != nil {
		return 0, fmt.Errorf("note counter: add icon sprite: %w", err)
	}
	if err := ecs.Add(w, iconEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("note counter: add icon layer: %w", err)
	}

	textEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, textEntity, component.NoteCounterTextComponent.Kind(), &component.NoteCounterText{}); err != nil {
		return 0, fmt.Errorf("note counter: add text: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("note counter: add text screen-space: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("note counter: add text transform: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.SpriteComponent.Kind(), &component.Sprite{Image: ebiten.NewImage(1, 1)}); err != nil {
		return 0, fmt.Errorf("note counter: add text sprite: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("note counter: add text layer: %w", err)
	}

	return counterEntity, nil
}

// NewMessageBoard builds the bottom-center message line.
func NewMessageBoard(w *ecs.World, text string) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.HUDSpec]("hud.yaml")
	if err != nil {
		return 0, fmt.Errorf("message board: %w", err)
	}

	boardEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boardEntity, component.MessageBoardComponent.Kind(), &component.MessageBoard{
		DefaultText: text,
		Text:        text,
	}); err != nil {
		return 0, fmt.Errorf("message board: add board: %w", err)
	}

	textEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, textEntity, component.MessageBoardTextComponent.Kind(), &component.MessageBoardText{}); err != nil {
		return 0, fmt.Errorf("message board: add text: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("message board: add screen-space: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("message board: add transform: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.SpriteComponent.Kind(), &component.Sprite{Image: ebiten.NewImage(1, 1)}); err != nil {
		return 0, fmt.Errorf("message board: add sprite: %w", err)
	}
	if err := ecs.Add(w, textEntity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("message board: add layer: %w", err)
	}

	return boardEntity, nil
}
