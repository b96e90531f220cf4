// Package registry provides a global registry for map factories.
// Maps register themselves in init() functions, allowing the CLI to
// discover and build maps without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// ErrUnknownMap is returned by Create for an unregistered ID.
var ErrUnknownMap = errors.New("unknown map")

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
}

// Factory builds a fresh, independent instance of a map.
type Factory func(opts ...world.Option) (*levels.Built, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]MapInfo)
	mu        sync.RWMutex
)

// Register adds a map factory to the registry.
// Typically called from an init() function.
// Panics if a map with the same ID is already registered or the factory
// cannot build the map.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", id))
	}

	// Get metadata by building a temporary instance
	b, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: map %q: %v", id, err))
	}
	w, h := b.Map.Size()

	factories[id] = f
	infos[id] = MapInfo{ID: id, Title: b.Title, Width: w, Height: h}
}

// RegisterLevel registers a parsed level under its own ID.
func RegisterLevel(l levels.Level) {
	Register(l.ID, func(opts ...world.Option) (*levels.Built, error) {
		return l.Build(opts...)
	})
}

// List returns information about all registered maps, sorted by ID.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new instance of the map by its ID.
func Create(id string, opts ...world.Option) (*levels.Built, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownMap, id)
	}

	return f(opts...)
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
