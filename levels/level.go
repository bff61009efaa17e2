package levels

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var levelsFS embed.FS

// Rect is an axis-aligned rectangle in level pixels, top-left anchored.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Point is a position in level pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NotePlacement authors one collectible note.
type NotePlacement struct {
	Index int     `yaml:"index"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Level is the authored level definition. Width/Height are the world
// bounds in pixels; Ground rects become static collision boxes.
type Level struct {
	Name   string          `yaml:"name"`
	Width  float64         `yaml:"width"`
	Height float64         `yaml:"height"`
	Spawn  Point           `yaml:"spawn"`
	Ground []Rect          `yaml:"ground"`
	Notes  []NotePlacement `yaml:"notes"`
	Gate   Rect            `yaml:"gate"`
	Portal Point           `yaml:"portal"`

	Platform struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		W float64 `yaml:"w"`
		H float64 `yaml:"h"`
	} `yaml:"platform"`

	Board struct {
		Text string `yaml:"text"`
	} `yaml:"board"`
}

// Load reads an embedded level by file name.
func Load(name string) (*Level, error) {
	data, err := levelsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: %s has empty bounds", name)
	}
	return &lvl, nil
}
