package commands

import (
	"slices"

	"github.com/renato0307/noted/internal/keyboard"
)

// Command is one user-invocable action
type Command struct {
	ID    string // Stable identifier (e.g., "editor.sidebar.toggle")
	Label string // Human-readable name shown in the palette

	shortcut  []keyboard.Token // Authored order, immutable after construction
	available bool             // False: matched but must not run
	visible   bool             // False: hidden from the palette, still invocable
}

// Option configures a Command at construction
type Option func(*Command)

// Hidden keeps the command out of palette listings
func Hidden() Option {
	return func(c *Command) {
		c.visible = false
	}
}

// Unavailable marks the command as not runnable
func Unavailable() Option {
	return func(c *Command) {
		c.available = false
	}
}

// New creates a command. Commands are visible and available unless an
// option says otherwise. A nil shortcut makes a palette-only command.
func New(id, label string, shortcut []keyboard.Token, opts ...Option) *Command {
	c := &Command{
		ID:        id,
		Label:     label,
		shortcut:  slices.Clone(shortcut),
		available: true,
		visible:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shortcut returns a copy of the shortcut tokens in authored order
func (c *Command) Shortcut() []keyboard.Token {
	return slices.Clone(c.shortcut)
}

// KeyCombination returns the canonical form of the shortcut
func (c *Command) KeyCombination() keyboard.Combination {
	return keyboard.Canonical(c.shortcut)
}

// IsAvailable reports whether the command may run
func (c *Command) IsAvailable() bool {
	return c.available
}

// SetAvailable toggles whether the command may run
func (c *Command) SetAvailable(available bool) {
	c.available = available
}

// IsVisible reports whether the command is listed in the palette
func (c *Command) IsVisible() bool {
	return c.visible
}

// clone copies the command, including its current flags
func (c *Command) clone() *Command {
	cp := *c
	cp.shortcut = slices.Clone(c.shortcut)
	return &cp
}
