package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const physicsDT = 1.0 / 60.0

// PhysicsSystem lazily creates Chipmunk bodies, steps the space once per
// tick, and copies body positions back onto transforms. The 2D engine owns
// the player position; everything downstream only reads it.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body == nil || t == nil {
			return
		}
		if body.Body == nil {
			withSensor := ecs.Has(w, e, component.CollisionStateComponent.Kind())
			pw.EnsureBody(e, t, body, withSensor)
			if state, ok := ecs.Get(w, e, component.CollisionStateComponent.Kind()); ok {
				pw.SetEntityState(e, state)
			}
		}
	})

	// Grounded is re-asserted by the sensor handler during the step; the
	// grace window smooths jumps off ledges.
	ecs.ForEach(w, component.CollisionStateComponent.Kind(), func(e ecs.Entity, state *component.CollisionState) {
		if state == nil {
			return
		}
		state.Grounded = false
		if state.GroundGrace > 0 {
			state.GroundGrace--
		}
	})

	pw.Step(physicsDT)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body == nil || body.Body == nil || body.Static || t == nil {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X - body.Width/2
		t.Y = pos.Y - body.Height/2
	})
}
