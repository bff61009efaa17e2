package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// LayerRamper is the slice of the audio engine the ECS needs: ramp one
// layer of the mix toward a target volume over a frame count.
type LayerRamper interface {
	RampLayer(layer int, target float64, frames int)
}

// AudioSystem forwards queued ramp requests to the mix. Requests are
// one-shot entities; the system consumes and destroys them every tick.
type AudioSystem struct {
	ramper LayerRamper
}

func NewAudioSystem(ramper LayerRamper) *AudioSystem {
	return &AudioSystem{ramper: ramper}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AudioRampRequestComponent.Kind(), func(e ecs.Entity, req *component.AudioRampRequest) {
		if req != nil && s.ramper != nil {
			s.ramper.RampLayer(req.Layer, req.Target, req.Frames)
		}
		ecs.DestroyEntity(w, e)
	})
}
