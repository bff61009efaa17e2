package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// InputSystem polls the keyboard into the player's InputState.
type InputSystem struct {
	pressed []ebiten.Key
}

func NewInputSystem() *InputSystem { return &InputSystem{} }

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InputStateComponent.Kind(), func(e ecs.Entity, in *component.InputState) {
		if in == nil {
			return
		}
		in.MoveX = 0
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			in.MoveX -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			in.MoveX += 1
		}
		in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW)

		s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
		in.AnyPressed = len(s.pressed) > 0
	})
}
