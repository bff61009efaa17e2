package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// PlayerControllerSystem turns input intent into body velocity. A frozen
// player (game completed) ignores input and stays put.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem { return &PlayerControllerSystem{} }

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.PhysicsBody) {
		if player == nil || body == nil || body.Body == nil {
			return
		}

		if player.Frozen {
			body.Body.SetVelocityVector(cp.Vector{})
			return
		}

		in, ok := ecs.Get(w, e, component.InputStateComponent.Kind())
		if !ok || in == nil {
			return
		}

		vel := body.Body.Velocity()
		vel.X = in.MoveX * player.MoveSpeed

		if in.JumpPressed {
			if state, ok := ecs.Get(w, e, component.CollisionStateComponent.Kind()); ok && state != nil && (state.Grounded || state.GroundGrace > 0) {
				vel.Y = -player.JumpSpeed
				state.Grounded = false
				state.GroundGrace = 0
			}
		}

		body.Body.SetVelocityVector(vel)
	})
}
