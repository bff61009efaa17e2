package prefabs

import (
	"embed"
	"fmt"
)

//go:embed *.yaml *.tengo
var prefabsFS embed.FS

// Load reads an embedded prefab file by name.
func Load(name string) ([]byte, error) {
	data, err := prefabsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", name, err)
	}
	return data, nil
}

// LoadScript reads an embedded tengo script by name.
func LoadScript(name string) ([]byte, error) {
	return Load(name)
}
