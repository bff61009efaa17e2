package component

// NoteCounter backs the "collected/total" HUD text.
type NoteCounter struct {
	Collected    int
	Total        int
	RenderedText string
}

var NoteCounterComponent = NewComponent[NoteCounter]()

type NoteCounterIcon struct{}

var NoteCounterIconComponent = NewComponent[NoteCounterIcon]()

type NoteCounterText struct{}

var NoteCounterTextComponent = NewComponent[NoteCounterText]()

type MessageBoardText struct{}

var MessageBoardTextComponent = NewComponent[MessageBoardText]()
