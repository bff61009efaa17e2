package system

import (
	"testing"

	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func TestTransientMessageReverts(t *testing.T) {
	w := ecs.NewWorld()
	board := addTestBoard(w, "Collect the four notes.")
	b, _ := ecs.Get(w, board, component.MessageBoardComponent.Kind())
	b.Text = "The air hums with something new..."
	_ = ecs.Add(w, board, component.TransientMessageComponent.Kind(), &component.TransientMessage{
		FramesLeft: 3,
		Revert:     b.DefaultText,
	})

	s := NewMessageSystem()

	s.Update(w)
	s.Update(w)
	if b.Text != "The air hums with something new..." {
		t.Fatalf("message reverted early: %q", b.Text)
	}

	s.Update(w)
	if b.Text != "Collect the four notes." {
		t.Fatalf("message did not revert: %q", b.Text)
	}
	if ecs.Has(w, board, component.TransientMessageComponent.Kind()) {
		t.Fatalf("expired countdown should be removed")
	}
}

func TestNewerTransientReplacesCountdown(t *testing.T) {
	w := newProgressionWorld(4)
	addTestPlayer(w, 100, 100)
	board := addTestBoard(w, "Collect the four notes.")
	addTestNote(w, 2, 110, 110)

	collect := NewNoteCollectSystem()
	messages := NewMessageSystem()

	collect.Update(w)
	for i := 0; i < 100; i++ {
		messages.Update(w)
	}

	// a second hint restarts the countdown from the full duration
	setBoardText(w, noteHintText, true)
	msg, _ := ecs.Get(w, board, component.TransientMessageComponent.Kind())
	if msg.FramesLeft != transientMessageFrames {
		t.Fatalf("countdown = %d after replacement, want %d", msg.FramesLeft, transientMessageFrames)
	}
}
