package component

// Note is a collectible. Collected flips once; the entity is never
// destroyed, its sprite is removed instead so the slot stays queryable.
type Note struct {
	Index           int
	Collected       bool
	CollisionWidth  float64
	CollisionHeight float64

	// Idle bob animation
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
}

var NoteComponent = NewComponent[Note]()
