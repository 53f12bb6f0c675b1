// Package registry provides a global registry for environment factories.
// Variants register themselves in init() functions, allowing the harness
// to discover and instantiate environments without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/core"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// Env is the reset/step contract every environment implements.
// The native engine is one implementation; any other state source that can
// produce the same observations may satisfy it too.
type Env interface {
	// ID returns the registered identifier (e.g., "TetrisA-v1").
	ID() string

	// Reset starts a new episode. A nil seed continues the previous
	// random sequence.
	Reset(seed *int64) (tetris.Observation, error)

	// Step advances the episode by one tick.
	Step(a core.Action) (tetris.StepResult, error)
}

// EnvInfo contains metadata about a registered environment.
type EnvInfo struct {
	ID    string
	Title string
}

// Factory creates a new environment from a base configuration.
type Factory func(base config.EngineConfig, opts ...tetris.Option) (Env, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an environment factory to the registry.
// Typically called from an init() function.
// Panics if an environment with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: env %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered environments, sorted by ID.
func List() []EnvInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EnvInfo, 0, len(factories))
	for id := range factories {
		result = append(result, EnvInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new environment by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, base config.EngineConfig, opts ...tetris.Option) (Env, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown env %q", id)
	}

	env, err := f(base, opts...)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return env, nil
}

// Exists checks if an environment with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
