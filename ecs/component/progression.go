package component

// Stage is the one-directional progression stage. Transitions only move
// forward: Exploring -> AllCollected -> Completed.
type Stage int

const (
	StageExploring Stage = iota
	StageAllCollected
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageExploring:
		return "exploring"
	case StageAllCollected:
		return "all_collected"
	case StageCompleted:
		return "completed"
	}
	return "unknown"
}

// Progression is the singleton collect-the-notes state. Collected is
// monotonically non-decreasing and increments by exactly one per unique
// note.
type Progression struct {
	Collected int
	Total     int
	Stage     Stage
}

var ProgressionComponent = NewComponent[Progression]()
