package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
	"github.com/milk9111/notewood/prefabs"
)

const platformScriptName = "platform_patrol.tengo"

// PlatformSystem drives moving platforms from the embedded tengo patrol
// script. The script gets the platform's active time `t` in seconds and
// yields `dx`/`dy` offsets from the patrol origin. Inactive platforms
// hold still at their origin.
type PlatformSystem struct {
	compiled *tengo.Compiled
	warned   bool
}

func NewPlatformSystem() (*PlatformSystem, error) {
	s := &PlatformSystem{}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the patrol script. Used by the dev-mode prefab
// watcher.
func (s *PlatformSystem) Reload() error {
	src, err := prefabs.LoadScript(platformScriptName)
	if err != nil {
		return fmt.Errorf("platform: load script: %w", err)
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("t", 0.0); err != nil {
		return fmt.Errorf("platform: script var: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("platform: compile script: %w", err)
	}
	s.compiled = compiled
	return nil
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, p *component.MovingPlatform, body *component.PhysicsBody) {
		if p == nil || body == nil || body.Body == nil {
			return
		}
		if !p.Active {
			body.Body.SetVelocityVector(cp.Vector{})
			return
		}

		p.Ticks++
		dx, dy, err := s.patrolOffset(float64(p.Ticks) / 60.0)
		if err != nil {
			if !s.warned {
				log.Printf("platform: patrol script: %v", err)
				s.warned = true
			}
			return
		}

		want := cp.Vector{
			X: p.OriginX + body.Width/2 + dx,
			Y: p.OriginY + body.Height/2 + dy,
		}
		pos := body.Body.Position()
		// kinematic body rides passengers along via velocity
		body.Body.SetVelocityVector(cp.Vector{X: (want.X - pos.X) * 60, Y: (want.Y - pos.Y) * 60})
	})
}

func (s *PlatformSystem) patrolOffset(t float64) (dx, dy float64, err error) {
	if s.compiled == nil {
		return 0, 0, fmt.Errorf("script not compiled")
	}
	if err := s.compiled.Set("t", t); err != nil {
		return 0, 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return s.compiled.Get("dx").Float(), s.compiled.Get("dy").Float(), nil
}
