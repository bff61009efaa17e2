package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/notewood/ecs"
	"github.com/milk9111/notewood/ecs/component"
)

// RenderSystem draws every sprite sorted by render layer. There is no
// camera; level coordinates are screen coordinates.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem { return &RenderSystem{} }

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	type drawable struct {
		e      ecs.Entity
		t      *component.Transform
		sprite *component.Sprite
		layer  int
	}

	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, sprite *component.Sprite) {
		if t == nil || sprite == nil || sprite.Image == nil {
			return
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok && l != nil {
			layer = l.Index
		}
		items = append(items, drawable{e: e, t: t, sprite: sprite, layer: layer})
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, item := range items {
		img := item.sprite.Image
		if item.sprite.UseSource {
			if sub, ok := img.SubImage(item.sprite.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-item.sprite.OriginX, -item.sprite.OriginY)

		sx := item.t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := item.t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(item.t.Rotation)
		op.GeoM.Translate(item.t.X, item.t.Y)

		if item.sprite.Alpha > 0 && item.sprite.Alpha < 1 {
			op.ColorScale.ScaleAlpha(float32(item.sprite.Alpha))
		}

		screen.DrawImage(img, op)
	}
}
