package component

// MovingPlatform patrols around its origin when Active. Motion offsets
// come from the embedded patrol script evaluated each tick.
type MovingPlatform struct {
	Active  bool
	OriginX float64
	OriginY float64
	Ticks   int
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
