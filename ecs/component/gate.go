package component

// Gate is a solid obstacle until unlocked.
type Gate struct {
	Locked bool
}

var GateComponent = NewComponent[Gate]()

// GateUnlock is the delayed-unlock countdown attached to a gate entity
// when the unlocking note is collected. It is fire-and-forget: once
// attached it always runs to zero and unlocks, even if other state has
// moved on in the meantime.
type GateUnlock struct {
	FramesLeft int
}

var GateUnlockComponent = NewComponent[GateUnlock]()
