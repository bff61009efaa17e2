package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const (
	gateUnlockDelayFrames  = 180
	transientMessageFrames = 240
	unlockRampFrames       = 90

	noteHintText   = "The air hums with something new..."
	portalUpText   = "A portal shimmers awake!"
	defaultNoteBox = 24
)

// layerTargets maps note index to the unmute volume of the matching
// audio layer. Indices beyond the mix still collect fine; they just have
// no layer to unmute.
var layerTargets = []float64{0.5, 0.55, 0.45, 0.4}

// NoteCollectSystem is the progression state machine. It detects
// player/note overlap, marks notes collected exactly once, applies the
// per-index environment effect, and flips the stage to AllCollected when
// the last note lands.
type NoteCollectSystem struct{}

func NewNoteCollectSystem() *NoteCollectSystem { return &NoteCollectSystem{} }

func (s *NoteCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	px, py, pw, ph, ok := playerAABB(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.NoteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, note *component.Note, t *component.Transform) {
		if note == nil || t == nil || note.Collected {
			return
		}

		nw := note.CollisionWidth
		nh := note.CollisionHeight
		if nw <= 0 || nh <= 0 {
			nw = defaultNoteBox
			nh = defaultNoteBox
		}
		if !intersects(px, py, pw, ph, t.X, t.Y, nw, nh) {
			return
		}

		s.collect(w, e, note)
	})
}

func (s *NoteCollectSystem) collect(w *ecs.World, e ecs.Entity, note *component.Note) {
	note.Collected = true
	_ = ecs.Remove(w, e, component.SpriteComponent.Kind())

	prog := progression(w)
	if prog == nil {
		return
	}
	if prog.Stage == component.StageExploring {
		prog.Collected++
	}

	target := 0.5
	if note.Index >= 0 && note.Index < len(layerTargets) {
		target = layerTargets[note.Index]
	}
	requestRamp(w, note.Index, target, unlockRampFrames)

	s.applyEffect(w, note.Index)
	syncCounter(w, prog)

	if prog.Stage == component.StageExploring && prog.Collected >= prog.Total && prog.Total > 0 {
		prog.Stage = component.StageAllCollected
		ecs.ForEach(w, component.PortalComponent.Kind(), func(_ ecs.Entity, portal *component.Portal) {
			if portal != nil {
				portal.Visible = true
			}
		})
		setBoardText(w, portalUpText, false)
	}
}

// applyEffect runs the fixed index->environment-effect table. Unknown
// indices are tolerated and do nothing.
func (s *NoteCollectSystem) applyEffect(w *ecs.World, index int) {
	switch index {
	case 0:
		ecs.ForEach(w, component.MovingPlatformComponent.Kind(), func(_ ecs.Entity, p *component.MovingPlatform) {
			if p != nil {
				p.Active = true
			}
		})
	case 1:
		ecs.ForEach(w, component.GateComponent.Kind(), func(e ecs.Entity, g *component.Gate) {
			if g == nil || !g.Locked {
				return
			}
			if ecs.Has(w, e, component.GateUnlockComponent.Kind()) {
				return
			}
			_ = ecs.Add(w, e, component.GateUnlockComponent.Kind(), &component.GateUnlock{FramesLeft: gateUnlockDelayFrames})
		})
	case 2:
		setBoardText(w, noteHintText, true)
	}
}

func progression(w *ecs.World) *component.Progression {
	e, ok := ecs.First(w, component.ProgressionComponent.Kind())
	if !ok {
		return nil
	}
	prog, _ := ecs.Get(w, e, component.ProgressionComponent.Kind())
	return prog
}

func syncCounter(w *ecs.World, prog *component.Progression) {
	if prog == nil {
		return
	}
	if e, ok := ecs.First(w, component.NoteCounterComponent.Kind()); ok {
		if counter, ok := ecs.Get(w, e, component.NoteCounterComponent.Kind()); ok && counter != nil {
			counter.Collected = prog.Collected
			counter.Total = prog.Total
		}
	}
}

// setBoardText updates the message line. Transient texts revert to the
// board's default after a fixed duration; the countdown is not
// cancellable, only replaced by a newer transient.
func setBoardText(w *ecs.World, text string, transient bool) {
	e, ok := ecs.First(w, component.MessageBoardComponent.Kind())
	if !ok {
		return
	}
	board, ok := ecs.Get(w, e, component.MessageBoardComponent.Kind())
	if !ok || board == nil {
		return
	}
	board.Text = text
	if transient {
		_ = ecs.Add(w, e, component.TransientMessageComponent.Kind(), &component.TransientMessage{
			FramesLeft: transientMessageFrames,
			Revert:     board.DefaultText,
		})
	} else {
		board.DefaultText = text
		_ = ecs.Remove(w, e, component.TransientMessageComponent.Kind())
	}
}

func requestRamp(w *ecs.World, layer int, target float64, frames int) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.AudioRampRequestComponent.Kind(), &component.AudioRampRequest{
		Layer:  layer,
		Target: target,
		Frames: frames,
	})
}
