package component

// Overlay is the decorative spirit transform in overlay world units.
// X/Y/Scale are derived from the player's pixel position each tick by the
// overlay system; Rotation advances unconditionally for the idle spin.
type Overlay struct {
	X         float64
	Y         float64
	Scale     float64
	Rotation  float64
	SpinSpeed float64
}

var OverlayComponent = NewComponent[Overlay]()

// Viewport is the singleton logical screen size in pixels, refreshed
// every tick so resizes feed into subsequent overlay mappings.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()
