package ui

import (
	"strings"

	"github.com/renato0307/noted/internal/keyboard"
)

// RenderShortcut renders each token of a shortcut as a key cap, in authored
// order, using the display glyph of named keys
func RenderShortcut(tokens []keyboard.Token, theme *Theme) string {
	if len(tokens) == 0 {
		return ""
	}

	caps := make([]string, len(tokens))
	for i, t := range tokens {
		caps[i] = theme.Kbd.Render(keyboard.Symbol(t))
	}
	return strings.Join(caps, " ")
}
