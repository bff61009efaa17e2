package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const unlockedGateAlpha = 0.3

// GateSystem runs delayed gate unlocks. The countdown is attached by the
// progression machine and always runs to completion; until it hits zero
// the gate stays a solid obstacle.
type GateSystem struct{}

func NewGateSystem() *GateSystem { return &GateSystem{} }

func (s *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.GateComponent.Kind(), component.GateUnlockComponent.Kind(), func(e ecs.Entity, gate *component.Gate, unlock *component.GateUnlock) {
		if gate == nil || unlock == nil {
			return
		}

		unlock.FramesLeft--
		if unlock.FramesLeft > 0 {
			return
		}
		_ = ecs.Remove(w, e, component.GateUnlockComponent.Kind())
		if !gate.Locked {
			return
		}
		gate.Locked = false

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body != nil && body.Shape != nil {
			body.Shape.SetSensor(true)
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite != nil {
			sprite.Alpha = unlockedGateAlpha
		}
	})
}
