package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func newKinematicPlatform(w *ecs.World, originX, originY, width, height float64) ecs.Entity {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: originX + width/2, Y: originY + height/2})

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{
		OriginX: originX,
		OriginY: originY,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:      body,
		Width:     width,
		Height:    height,
		Kinematic: true,
	})
	return e
}

func TestPlatformScriptCompiles(t *testing.T) {
	if _, err := NewPlatformSystem(); err != nil {
		t.Fatalf("NewPlatformSystem: %v", err)
	}
}

func TestPlatformInactiveHoldsStill(t *testing.T) {
	w := ecs.NewWorld()
	e := newKinematicPlatform(w, 300, 400, 120, 20)

	s, err := NewPlatformSystem()
	if err != nil {
		t.Fatalf("NewPlatformSystem: %v", err)
	}
	for i := 0; i < 60; i++ {
		s.Update(w)
	}

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if v := body.Body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("inactive platform moving: velocity %v", v)
	}
	p, _ := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	if p.Ticks != 0 {
		t.Fatalf("inactive platform accumulated %d ticks", p.Ticks)
	}
}

func TestPlatformActiveFollowsPatrol(t *testing.T) {
	w := ecs.NewWorld()
	e := newKinematicPlatform(w, 300, 400, 120, 20)
	p, _ := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	p.Active = true

	s, err := NewPlatformSystem()
	if err != nil {
		t.Fatalf("NewPlatformSystem: %v", err)
	}

	moved := false
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	for i := 0; i < 60; i++ {
		s.Update(w)
		if v := body.Body.Velocity(); v.X != 0 || v.Y != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("active platform never received a patrol velocity")
	}
	if p.Ticks != 60 {
		t.Fatalf("ticks = %d, want 60", p.Ticks)
	}
}
