package system

import (
	"github.com/milk9111/notewood/common"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

const (
	// PixelsToWorld converts screen pixels to overlay world units.
	PixelsToWorld = 0.01
	// OverlayOffsetY is the fixed vertical offset applied to the mapped
	// position.
	OverlayOffsetY = -0.2

	scaleSlope  = 0.1
	scaleAdjMin = -0.2
	scaleAdjMax = 0.3

	// screen-space lift so the spirit hovers over the player's head
	hoverLiftPx = 56
)

// MapToOverlay maps a player pixel position into overlay space. The
// viewport center maps to the origin, y is flipped (screen y grows down,
// overlay y grows up), and the scale fakes perspective: higher mapped
// positions grow, lower ones shrink, clamped so the sprite never
// degenerates.
func MapToOverlay(px, py, viewW, viewH float64) (x, y, scale float64) {
	mx := (px - viewW/2) * PixelsToWorld
	my := -(py - viewH/2) * PixelsToWorld
	scale = 1 + common.Clamp(my*scaleSlope, scaleAdjMin, scaleAdjMax)
	return mx, my + OverlayOffsetY, scale
}

// OverlaySystem keeps the decorative spirit in sync with the player. It
// never assumes the physics step already ran this tick; it just reads
// whatever player position is current. When no player exists yet the
// spirit holds position and keeps its idle spin.
type OverlaySystem struct{}

func NewOverlaySystem() *OverlaySystem { return &OverlaySystem{} }

func (s *OverlaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var view *component.Viewport
	if e, ok := ecs.First(w, component.ViewportComponent.Kind()); ok {
		view, _ = ecs.Get(w, e, component.ViewportComponent.Kind())
	}

	px, py, pw, ph, hasPlayer := playerAABB(w)

	ecs.ForEach2(w, component.OverlayComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, o *component.Overlay, t *component.Transform) {
		if o == nil || t == nil {
			return
		}

		o.Rotation += o.SpinSpeed

		if hasPlayer && view != nil && view.Width > 0 && view.Height > 0 {
			cx := px + pw/2
			cy := py + ph/2
			o.X, o.Y, o.Scale = MapToOverlay(cx, cy, view.Width, view.Height)

			// back-project to screen pixels for the sprite draw
			t.X = view.Width/2 + o.X/PixelsToWorld
			t.Y = view.Height/2 - (o.Y-OverlayOffsetY)/PixelsToWorld - hoverLiftPx
		}

		t.Rotation = o.Rotation
		if o.Scale > 0 {
			t.ScaleX = o.Scale
			t.ScaleY = o.Scale
		}
	})
}
