// Package builtin registers the maps shipped inside the binary.
// Import it for its side effects.
package builtin

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

// DefaultMap is the map played when none is chosen.
const DefaultMap = "debug"

//go:embed maps/*.yaml
var files embed.FS

// Levels returns the embedded levels sorted by ID.
func Levels() ([]levels.Level, error) {
	sub, err := fs.Sub(files, "maps")
	if err != nil {
		return nil, err
	}
	return levels.NewFSLoader(sub).LoadAll()
}

func init() {
	all, err := Levels()
	if err != nil {
		panic(fmt.Sprintf("builtin: %v", err))
	}
	for _, l := range all {
		registry.RegisterLevel(l)
	}
}
