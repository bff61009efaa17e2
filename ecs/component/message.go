package component

// MessageBoard is the singleton on-screen message line. Text is what is
// currently shown; DefaultText is what transient messages revert to.
type MessageBoard struct {
	DefaultText  string
	Text         string
	RenderedText string
}

var MessageBoardComponent = NewComponent[MessageBoard]()

// TransientMessage reverts the board to Revert after FramesLeft ticks.
// Like GateUnlock it is not cancellable; a newer transient simply
// replaces the countdown.
type TransientMessage struct {
	FramesLeft int
	Revert     string
}

var TransientMessageComponent = NewComponent[TransientMessage]()
