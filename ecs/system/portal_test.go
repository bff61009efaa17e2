package system

import (
	"testing"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func TestPortalHiddenUntilVisible(t *testing.T) {
	w := newProgressionWorld(4)
	addTestPlayer(w, -500, -500)
	portal := addTestPortal(w, 600, 400)

	s := NewPortalSystem()
	s.Update(w)

	if ecs.Has(w, portal, component.SpriteComponent.Kind()) {
		t.Fatalf("hidden portal should have no sprite")
	}

	p, _ := ecs.Get(w, portal, component.PortalComponent.Kind())
	p.Visible = true
	s.Update(w)

	if !ecs.Has(w, portal, component.SpriteComponent.Kind()) {
		t.Fatalf("revealed portal should get its sprite back")
	}
}

func TestPortalOverlapBeforeAllCollectedIsNoop(t *testing.T) {
	w := newProgressionWorld(4)
	player := addTestPlayer(w, 600, 400)
	portal := addTestPortal(w, 600, 400)

	// force the sprite visible but leave the stage at Exploring
	p, _ := ecs.Get(w, portal, component.PortalComponent.Kind())
	p.Visible = true

	s := NewPortalSystem()
	for i := 0; i < 5; i++ {
		s.Update(w)
	}

	if got := stageOf(w); got != component.StageExploring {
		t.Fatalf("stage = %v, want StageExploring", got)
	}
	pl, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if pl.Frozen {
		t.Fatalf("player frozen before completion")
	}
}

func TestPortalCompletion(t *testing.T) {
	w := newProgressionWorld(4)
	player := addTestPlayer(w, 600, 400)
	portal := addTestPortal(w, 600, 400)
	board := addTestBoard(w, "Collect the four notes.")

	prog := progression(w)
	prog.Collected = 4
	prog.Stage = component.StageAllCollected
	p, _ := ecs.Get(w, portal, component.PortalComponent.Kind())
	p.Visible = true

	NewPortalSystem().Update(w)

	if got := stageOf(w); got != component.StageCompleted {
		t.Fatalf("stage = %v, want StageCompleted", got)
	}
	pl, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !pl.Frozen {
		t.Fatalf("player not frozen on completion")
	}
	b, _ := ecs.Get(w, board, component.MessageBoardComponent.Kind())
	if b.Text != completedText {
		t.Fatalf("board text = %q, want %q", b.Text, completedText)
	}

	rec := &rampRecorder{}
	NewAudioSystem(rec).Update(w)

	if len(rec.calls) != len(layerTargets) {
		t.Fatalf("%d celebration ramps, want %d", len(rec.calls), len(layerTargets))
	}
	seen := map[int]bool{}
	for _, call := range rec.calls {
		if call.target != celebrationVolume || call.frames != celebrationRampFrames {
			t.Fatalf("celebration ramp = %+v, want target %v frames %d", call, celebrationVolume, celebrationRampFrames)
		}
		seen[call.layer] = true
	}
	for layer := range layerTargets {
		if !seen[layer] {
			t.Fatalf("layer %d missing from celebration", layer)
		}
	}
}

func TestPortalMissedOverlapNoCompletion(t *testing.T) {
	w := newProgressionWorld(4)
	addTestPlayer(w, 0, 0)
	portal := addTestPortal(w, 600, 400)

	prog := progression(w)
	prog.Collected = 4
	prog.Stage = component.StageAllCollected
	p, _ := ecs.Get(w, portal, component.PortalComponent.Kind())
	p.Visible = true

	NewPortalSystem().Update(w)

	if got := stageOf(w); got != component.StageAllCollected {
		t.Fatalf("stage = %v without touching the portal", got)
	}
}
