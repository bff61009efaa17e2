package system

import (
	"testing"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func TestNoteHoverBobsAroundBase(t *testing.T) {
	w := ecs.NewWorld()
	e := addTestNote(w, 0, 200, 100)
	n, _ := ecs.Get(w, e, component.NoteComponent.Kind())
	n.BobAmplitude = 6
	n.BobSpeed = 0.07

	s := NewNoteHoverSystem()
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	minY, maxY := tr.Y, tr.Y
	for i := 0; i < 400; i++ {
		s.Update(w)
		if tr.Y < minY {
			minY = tr.Y
		}
		if tr.Y > maxY {
			maxY = tr.Y
		}
	}

	if minY < n.BaseY-n.BobAmplitude-1e-9 || maxY > n.BaseY+n.BobAmplitude+1e-9 {
		t.Fatalf("bob range [%v, %v] escapes base %v +/- %v", minY, maxY, n.BaseY, n.BobAmplitude)
	}
	if maxY-minY < n.BobAmplitude {
		t.Fatalf("bob barely moved: range %v", maxY-minY)
	}
}

func TestNoteHoverStopsWhenCollected(t *testing.T) {
	w := ecs.NewWorld()
	e := addTestNote(w, 0, 200, 100)
	n, _ := ecs.Get(w, e, component.NoteComponent.Kind())
	n.BobAmplitude = 6
	n.BobSpeed = 0.07
	n.Collected = true

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	before := tr.Y

	s := NewNoteHoverSystem()
	for i := 0; i < 100; i++ {
		s.Update(w)
	}

	if tr.Y != before {
		t.Fatalf("collected note still bobbing")
	}
}
