package component

// InputState holds the polled input intent for the current tick.
type InputState struct {
	MoveX       float64
	JumpPressed bool
	AnyPressed  bool
}

var InputStateComponent = NewComponent[InputState]()
