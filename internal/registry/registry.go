// Package registry maps game IDs to factories. Games register from init, so
// hosts only need a blank import to find them.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/stardrift/internal/core"
)

// Game is what a host drives: a fixed-tick simulation that renders into a
// screen buffer. Implementations hold no terminal or I/O dependencies.
type Game interface {
	// ID is the stable identifier used by the CLI and in stored runs.
	ID() string
	Title() string

	// Reset starts a new session sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick of cfg.FrameSeconds with the given input and
	// reports every snapshot emitted on the way.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. Render clears dst itself.
	Render(dst *core.Screen)

	State() core.GameState

	// Snapshot returns the summary hosts use for HUDs and persistence.
	Snapshot() core.Snapshot
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id. It is meant for init functions and
// panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
