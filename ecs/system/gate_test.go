package system

import (
	"testing"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func TestGateUnlockCountdown(t *testing.T) {
	w := ecs.NewWorld()
	gate := addTestGate(w)
	_ = ecs.Add(w, gate, component.GateUnlockComponent.Kind(), &component.GateUnlock{FramesLeft: gateUnlockDelayFrames})

	s := NewGateSystem()

	for i := 0; i < gateUnlockDelayFrames-1; i++ {
		s.Update(w)
		g, _ := ecs.Get(w, gate, component.GateComponent.Kind())
		if !g.Locked {
			t.Fatalf("gate opened after %d frames, want %d", i+1, gateUnlockDelayFrames)
		}
	}

	s.Update(w)

	g, _ := ecs.Get(w, gate, component.GateComponent.Kind())
	if g.Locked {
		t.Fatalf("gate still locked after full countdown")
	}
	if ecs.Has(w, gate, component.GateUnlockComponent.Kind()) {
		t.Fatalf("countdown component should be consumed")
	}
	sprite, _ := ecs.Get(w, gate, component.SpriteComponent.Kind())
	if sprite.Alpha != unlockedGateAlpha {
		t.Fatalf("unlocked gate alpha = %v, want %v", sprite.Alpha, unlockedGateAlpha)
	}
}

func TestGateWithoutCountdownUntouched(t *testing.T) {
	w := ecs.NewWorld()
	gate := addTestGate(w)

	s := NewGateSystem()
	for i := 0; i < 300; i++ {
		s.Update(w)
	}

	g, _ := ecs.Get(w, gate, component.GateComponent.Kind())
	if !g.Locked {
		t.Fatalf("gate unlocked without a scheduled countdown")
	}
}

func TestGateAlreadyUnlockedNoRelock(t *testing.T) {
	w := ecs.NewWorld()
	gate := addTestGate(w)
	g, _ := ecs.Get(w, gate, component.GateComponent.Kind())
	g.Locked = false
	_ = ecs.Add(w, gate, component.GateUnlockComponent.Kind(), &component.GateUnlock{FramesLeft: 1})

	NewGateSystem().Update(w)

	if g.Locked {
		t.Fatalf("expired countdown relocked an open gate")
	}
	sprite, _ := ecs.Get(w, gate, component.SpriteComponent.Kind())
	if sprite.Alpha != 0 {
		t.Fatalf("open gate sprite should be untouched, alpha = %v", sprite.Alpha)
	}
}
