package entity

import (
	"fmt"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/levels"
)

const (
	groundColor = "darkolivegreen"
	groundLayer = 10
)

// BuildLevel populates a fresh world from a level definition: terrain
// visuals, player, notes, gate, portal, platform, overlay spirit, HUD,
// and the progression/viewport singletons. Static collision shapes come
// from the physics world, which is built separately from the same level.
func BuildLevel(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("entity: nil world or level")
	}

	for i, r := range lvl.Ground {
		if err := newGroundVisual(w, r); err != nil {
			return fmt.Errorf("ground %d: %w", i, err)
		}
	}

	if _, err := NewPlayer(w, lvl.Spawn.X, lvl.Spawn.Y); err != nil {
		return err
	}
	for _, n := range lvl.Notes {
		if _, err := NewNote(w, n.Index, n.X, n.Y); err != nil {
			return err
		}
	}
	if lvl.Gate.W > 0 && lvl.Gate.H > 0 {
		if _, err := NewGate(w, lvl.Gate); err != nil {
			return err
		}
	}
	if _, err := NewPortal(w, lvl.Portal.X, lvl.Portal.Y); err != nil {
		return err
	}
	if lvl.Platform.W > 0 && lvl.Platform.H > 0 {
		if _, err := NewMovingPlatform(w, levels.Rect{
			X: lvl.Platform.X,
			Y: lvl.Platform.Y,
			W: lvl.Platform.W,
			H: lvl.Platform.H,
		}); err != nil {
			return err
		}
	}
	if _, err := NewOverlay(w); err != nil {
		return err
	}
	if _, err := NewNoteCounter(w, len(lvl.Notes)); err != nil {
		return err
	}
	if _, err := NewMessageBoard(w, lvl.Board.Text); err != nil {
		return err
	}

	prog := ecs.CreateEntity(w)
	if err := ecs.Add(w, prog, component.ProgressionComponent.Kind(), &component.Progression{
		Total: len(lvl.Notes),
		Stage: component.StageExploring,
	}); err != nil {
		return fmt.Errorf("progression: %w", err)
	}

	view := ecs.CreateEntity(w)
	if err := ecs.Add(w, view, component.ViewportComponent.Kind(), &component.Viewport{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	return nil
}

func newGroundVisual(w *ecs.World, r levels.Rect) error {
	img, err := rectImage(int(r.W), int(r.H), groundColor)
	if err != nil {
		return err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: groundLayer})
}
