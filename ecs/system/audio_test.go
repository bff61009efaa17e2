package system

import (
	"testing"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func TestAudioSystemConsumesRequests(t *testing.T) {
	w := ecs.NewWorld()
	requestRamp(w, 2, 0.45, 90)
	requestRamp(w, 0, 0.5, 90)

	rec := &rampRecorder{}
	s := NewAudioSystem(rec)
	s.Update(w)

	if len(rec.calls) != 2 {
		t.Fatalf("%d ramp calls, want 2", len(rec.calls))
	}
	if got := len(ecs.Entities(w)); got != 0 {
		t.Fatalf("%d request entities survived consumption", got)
	}

	// nothing queued, nothing forwarded
	s.Update(w)
	if len(rec.calls) != 2 {
		t.Fatalf("ramp call repeated on an empty queue")
	}
}

func TestAudioSystemNilRamperStillDrains(t *testing.T) {
	w := ecs.NewWorld()
	requestRamp(w, 1, 0.55, 90)

	NewAudioSystem(nil).Update(w)

	if got := len(ecs.Entities(w)); got != 0 {
		t.Fatalf("requests should drain even without an engine")
	}
}

func TestTTLDestroysAfterCountdown(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 3})

	s := NewTTLSystem()
	s.Update(w)
	s.Update(w)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("entity destroyed before TTL expired")
	}
	s.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("entity alive after TTL expired")
	}
}
