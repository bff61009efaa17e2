package component

// ScreenSpace marks renderable entities that are positioned in screen/UI
// coordinates rather than world coordinates.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
