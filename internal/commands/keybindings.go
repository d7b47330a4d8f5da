package commands

import (
	"fmt"

	"github.com/renato0307/noted/internal/keyboard"
)

// Keybinding overrides the shortcut of one command
type Keybinding struct {
	Command  string `mapstructure:"command"`  // Command ID
	Shortcut string `mapstructure:"shortcut"` // e.g. "Meta+Shift+P"; empty removes the shortcut
}

// ApplyKeybindings returns a copy of cmds with the shortcuts replaced as the
// bindings say. It runs before NewRegistry so conflicts introduced by an
// override are caught at registry construction.
func ApplyKeybindings(cmds []*Command, bindings []Keybinding) ([]*Command, error) {
	result := make([]*Command, len(cmds))
	byID := make(map[string]*Command, len(cmds))
	for i, cmd := range cmds {
		result[i] = cmd.clone()
		byID[cmd.ID] = result[i]
	}

	for _, b := range bindings {
		cmd, ok := byID[b.Command]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, b.Command)
		}

		if b.Shortcut == "" {
			cmd.shortcut = nil
			continue
		}

		tokens, err := keyboard.ParseShortcut(b.Shortcut)
		if err != nil {
			return nil, fmt.Errorf("keybinding for %s: %w", b.Command, err)
		}
		cmd.shortcut = tokens
	}

	return result, nil
}
