package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// MessageSystem ticks transient message countdowns and reverts the board
// text when they expire.
type MessageSystem struct{}

func NewMessageSystem() *MessageSystem { return &MessageSystem{} }

func (s *MessageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MessageBoardComponent.Kind(), component.TransientMessageComponent.Kind(), func(e ecs.Entity, board *component.MessageBoard, msg *component.TransientMessage) {
		if board == nil || msg == nil {
			return
		}
		msg.FramesLeft--
		if msg.FramesLeft > 0 {
			return
		}
		board.Text = msg.Revert
		_ = ecs.Remove(w, e, component.TransientMessageComponent.Kind())
	})
}
