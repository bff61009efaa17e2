package system

import (
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

func intersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// playerAABB returns the player's collision rectangle, top-left anchored.
// ok is false until a player with a transform exists.
func playerAABB(w *ecs.World) (x, y, width, height float64, ok bool) {
	player, found := ecs.First(w, component.PlayerTagComponent.Kind())
	if !found {
		return 0, 0, 0, 0, false
	}
	t, found := ecs.Get(w, player, component.TransformComponent.Kind())
	if !found || t == nil {
		return 0, 0, 0, 0, false
	}
	width, height = 24, 48
	if body, found := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); found && body != nil && body.Width > 0 && body.Height > 0 {
		width = body.Width
		height = body.Height
	}
	return t.X, t.Y, width, height, true
}
