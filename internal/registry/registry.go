// Package registry maps game ids to factories.
// Game packages register their variants from init(), so commands and the
// SSH session can list and create games without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games own their simulation and drawing; the platform owns timing,
// input mapping, persistence and the terminal itself.
type Game interface {
	// ID is the stable key used by the CLI and the score tables ("bubbles", "lanes").
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a fresh game for the given screen size, seed and stored high score.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst. It must not change game state.
	Render(dst *core.Screen)

	// State reports score, pause and game over status.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line summary.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory under id.
// Panics if the id is empty or already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
