package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func newControllablePlayer(w *ecs.World) ecs.Entity {
	e := addTestPlayer(w, 100, 100)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	body.Body = cp.NewBody(1, cp.INFINITY)
	_ = ecs.Add(w, e, component.InputStateComponent.Kind(), &component.InputState{})
	_ = ecs.Add(w, e, component.CollisionStateComponent.Kind(), &component.CollisionState{})
	return e
}

func TestPlayerControllerMoves(t *testing.T) {
	w := ecs.NewWorld()
	e := newControllablePlayer(w)
	in, _ := ecs.Get(w, e, component.InputStateComponent.Kind())
	in.MoveX = 1

	NewPlayerControllerSystem().Update(w)

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if v := body.Body.Velocity(); v.X != 240 {
		t.Fatalf("velocity x = %v, want 240", v.X)
	}
}

func TestPlayerControllerJump(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		grace    int
		wantJump bool
	}{
		{"grounded", true, 0, true},
		{"coyote_window", false, 3, true},
		{"airborne", false, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newControllablePlayer(w)
			in, _ := ecs.Get(w, e, component.InputStateComponent.Kind())
			in.JumpPressed = true
			state, _ := ecs.Get(w, e, component.CollisionStateComponent.Kind())
			state.Grounded = c.grounded
			state.GroundGrace = c.grace

			NewPlayerControllerSystem().Update(w)

			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			v := body.Body.Velocity()
			if c.wantJump && v.Y != -620 {
				t.Fatalf("velocity y = %v, want -620", v.Y)
			}
			if !c.wantJump && v.Y != 0 {
				t.Fatalf("airborne jump changed velocity: %v", v.Y)
			}
			if c.wantJump && (state.Grounded || state.GroundGrace != 0) {
				t.Fatalf("jump should consume the ground state")
			}
		})
	}
}

func TestPlayerControllerFrozenIgnoresInput(t *testing.T) {
	w := ecs.NewWorld()
	e := newControllablePlayer(w)
	in, _ := ecs.Get(w, e, component.InputStateComponent.Kind())
	in.MoveX = 1
	in.JumpPressed = true
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	p.Frozen = true

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	body.Body.SetVelocityVector(cp.Vector{X: 100, Y: -50})

	NewPlayerControllerSystem().Update(w)

	if v := body.Body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("frozen player kept velocity %v", v)
	}
}
