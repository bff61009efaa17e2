package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const (
	celebrationVolume     = 0.8
	celebrationRampFrames = 120
	completedText         = "The grove sings in full chorus."
	defaultPortalBox      = 48
)

// portalRuntime caches the authored sprite so the portal can stay
// invisible until every note is collected, then reappear without
// rebuilding the entity.
type portalRuntime struct {
	initialized bool
	hasSprite   bool
	sprite      component.Sprite
}

// PortalSystem shows the portal once the stage reaches AllCollected and
// completes the game when the player steps into it. Overlap before that
// point is a no-op.
type PortalSystem struct {
	runtimes map[ecs.Entity]*portalRuntime
}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{runtimes: make(map[ecs.Entity]*portalRuntime)}
}

func (s *PortalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	prog := progression(w)

	ecs.ForEach2(w, component.PortalComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, portal *component.Portal, t *component.Transform) {
		if portal == nil || t == nil {
			return
		}

		rt := s.runtimes[e]
		if rt == nil {
			rt = &portalRuntime{}
			s.runtimes[e] = rt
		}
		if !rt.initialized {
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite != nil {
				rt.hasSprite = true
				rt.sprite = *sprite
			}
			rt.initialized = true
		}

		if !portal.Visible {
			_ = ecs.Remove(w, e, component.SpriteComponent.Kind())
			return
		}

		if rt.hasSprite && !ecs.Has(w, e, component.SpriteComponent.Kind()) {
			sprite := rt.sprite
			_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
		}

		if prog == nil || prog.Stage != component.StageAllCollected {
			return
		}

		px, py, pw, ph, ok := playerAABB(w)
		if !ok {
			return
		}
		bw := portal.CollisionWidth
		bh := portal.CollisionHeight
		if bw <= 0 || bh <= 0 {
			bw = defaultPortalBox
			bh = defaultPortalBox
		}
		if !intersects(px, py, pw, ph, t.X, t.Y, bw, bh) {
			return
		}

		s.complete(w, prog)
	})
}

func (s *PortalSystem) complete(w *ecs.World, prog *component.Progression) {
	prog.Stage = component.StageCompleted

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok && p != nil {
			p.Frozen = true
		}
		if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body != nil && body.Body != nil {
			body.Body.SetVelocityVector(cp.Vector{})
		}
	}

	for layer := range layerTargets {
		requestRamp(w, layer, celebrationVolume, celebrationRampFrames)
	}
	setBoardText(w, completedText, false)
}
