package system

import (
	"math"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// NoteHoverSystem bobs uncollected notes around their base height.
type NoteHoverSystem struct{}

func NewNoteHoverSystem() *NoteHoverSystem { return &NoteHoverSystem{} }

func (s *NoteHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.NoteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, note *component.Note, t *component.Transform) {
		if note == nil || t == nil || note.Collected {
			return
		}
		if note.BobAmplitude <= 0 {
			return
		}
		note.BobPhase += note.BobSpeed
		t.Y = note.BaseY + math.Sin(note.BobPhase)*note.BobAmplitude
	})
}
