package commands

import (
	"sigs.k8s.io/yaml"

	"github.com/renato0307/noted/internal/keyboard"
)

// commandEntry is the exported shape of one command
type commandEntry struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Shortcut    string `json:"shortcut,omitempty"`
	Combination string `json:"combination,omitempty"`
	Visible     bool   `json:"visible"`
	Available   bool   `json:"available"`
}

// ExportYAML renders the command table, in registry order, as YAML
func (r *Registry) ExportYAML() ([]byte, error) {
	entries := make([]commandEntry, len(r.commands))
	for i, cmd := range r.commands {
		entries[i] = commandEntry{
			ID:          cmd.ID,
			Label:       cmd.Label,
			Shortcut:    keyboard.FormatShortcut(cmd.shortcut),
			Combination: string(cmd.KeyCombination()),
			Visible:     cmd.IsVisible(),
			Available:   cmd.IsAvailable(),
		}
	}
	return yaml.Marshal(map[string]any{"commands": entries})
}
