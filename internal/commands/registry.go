package commands

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/noted/internal/keyboard"
	"github.com/renato0307/noted/internal/logging"
)

// Registry holds all available commands in a fixed order and owns the
// listeners subscribed to them
type Registry struct {
	commands []*Command
	logger   *logging.Logger

	mu        sync.RWMutex
	listeners map[string][]*Subscription // command ID -> subscription order
	nextSubID uint64
}

// NewRegistry creates a registry from the given commands, in order.
// It fails when an ID is empty or repeated, or when two commands share a
// key combination. Commands without a shortcut never conflict.
func NewRegistry(cmds ...*Command) (*Registry, error) {
	ids := make(map[string]struct{}, len(cmds))
	owners := make(map[keyboard.Combination]string, len(cmds))

	for _, cmd := range cmds {
		if cmd.ID == "" {
			return nil, fmt.Errorf("%w: empty id for %q", ErrDuplicateID, cmd.Label)
		}
		if _, exists := ids[cmd.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, cmd.ID)
		}
		ids[cmd.ID] = struct{}{}

		combination := cmd.KeyCombination()
		if combination == "" {
			continue
		}
		if first, exists := owners[combination]; exists {
			return nil, &ConflictError{Combination: combination, First: first, Second: cmd.ID}
		}
		owners[combination] = cmd.ID
	}

	logger := logging.Get().With("component", "commands")
	logger.Debug("registry created", "commands", len(cmds), "shortcuts", len(owners))

	return &Registry{
		commands:  slices.Clone(cmds),
		logger:    logger,
		listeners: make(map[string][]*Subscription),
	}, nil
}

// FindByKeyEvent returns the command bound to the event's combination,
// or nil. Availability and visibility are not consulted.
func (r *Registry) FindByKeyEvent(e keyboard.Event) *Command {
	_, combination := keyboard.Normalize(e)
	if combination == "" {
		return nil
	}

	for _, cmd := range r.commands {
		if cmd.KeyCombination() == combination {
			return cmd
		}
	}
	return nil
}

// FindByID returns the command with the given ID, or nil if not found
func (r *Registry) FindByID(id string) *Command {
	for _, cmd := range r.commands {
		if cmd.ID == id {
			return cmd
		}
	}
	return nil
}

// All returns every command in registry order
func (r *Registry) All() []*Command {
	return slices.Clone(r.commands)
}

// ListVisible returns the commands that are both available and visible,
// in registry order. Each call builds a new slice.
func (r *Registry) ListVisible() []*Command {
	result := []*Command{}
	for _, cmd := range r.commands {
		if cmd.IsAvailable() && cmd.IsVisible() {
			result = append(result, cmd)
		}
	}
	return result
}

// Filter returns visible commands whose label matches the query using
// fuzzy search, best match first
func (r *Registry) Filter(query string) []*Command {
	candidates := r.ListVisible()

	// If query is empty, return all candidates
	if query == "" {
		return candidates
	}

	labels := make([]string, len(candidates))
	for i, cmd := range candidates {
		labels[i] = cmd.Label
	}

	matches := fuzzy.Find(query, labels)

	result := make([]*Command, len(matches))
	for i, match := range matches {
		result[i] = candidates[match.Index]
	}
	return result
}
