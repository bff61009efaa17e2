package component

// Player holds movement tuning and the completion freeze flag. Frozen is
// set once when the portal is entered and never cleared.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	Frozen    bool
}

var PlayerComponent = NewComponent[Player]()
