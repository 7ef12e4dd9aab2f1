package effect

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered effect.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a new instance of an effect.
type Factory func() Effect

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an effect factory to the registry. Typically called from an
// effect's init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("effect: %q already registered", id))
	}

	factories[id] = f
	names[id] = f().Name()
}

// List returns information about all registered effects, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new effect by its ID.
func Create(id string) (Effect, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("effect: unknown effect %q", id)
	}

	return f(), nil
}

// Exists checks if an effect with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
