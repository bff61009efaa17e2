package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// rectImage builds a solid-color sprite image. Prefab colors are CSS
// color names.
func rectImage(width, height int, name string) (*ebiten.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("entity: sprite size %dx%d", width, height)
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("entity: unknown color %q", name)
	}
	img := ebiten.NewImage(width, height)
	img.Fill(c)
	return img, nil
}