package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type OverlayTag struct{}

var OverlayTagComponent = NewComponent[OverlayTag]()
