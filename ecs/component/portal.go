package component

// Portal is the exit. It becomes visible and enterable exactly when every
// note has been collected.
type Portal struct {
	Visible         bool
	CollisionWidth  float64
	CollisionHeight float64
}

var PortalComponent = NewComponent[Portal]()
