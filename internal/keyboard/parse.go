package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShortcut is returned when a shortcut string cannot be parsed
var ErrInvalidShortcut = errors.New("invalid shortcut")

// aliases maps lowercase spellings accepted in configuration to tokens
var aliases = map[string]Token{
	"alt":        Alt,
	"opt":        Alt,
	"option":     Alt,
	"ctrl":       Control,
	"control":    Control,
	"meta":       Meta,
	"cmd":        Meta,
	"command":    Meta,
	"super":      Meta,
	"win":        Meta,
	"shift":      Shift,
	"delete":     Delete,
	"del":        Delete,
	"enter":      Enter,
	"return":     Enter,
	"escape":     Escape,
	"esc":        Escape,
	"space":      Space,
	"up":         ArrowUp,
	"arrowup":    ArrowUp,
	"down":       ArrowDown,
	"arrowdown":  ArrowDown,
	"left":       ArrowLeft,
	"arrowleft":  ArrowLeft,
	"right":      ArrowRight,
	"arrowright": ArrowRight,
	"tab":        Tab,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdn":       PageDown,
}

// ParseShortcut parses a "+"-separated shortcut such as "Meta+Shift+P" or
// "cmd+shift+p" into tokens in authored order.
//
// Modifier and named-key spellings are matched case-insensitively. Any other
// segment is treated like a raw key identifier: only its first character is
// upper-cased. A shortcut must contain exactly one non-modifier key.
func ParseShortcut(s string) ([]Token, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidShortcut)
	}

	var tokens []Token
	keys := 0
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidShortcut, s)
		}

		t, ok := aliases[strings.ToLower(part)]
		if !ok {
			t = keyToken(part)
		}
		if !IsModifier(t) {
			keys++
		}
		tokens = append(tokens, t)
	}

	if keys != 1 {
		return nil, fmt.Errorf("%w: %q must name exactly one non-modifier key", ErrInvalidShortcut, s)
	}
	return tokens, nil
}

// FormatShortcut joins tokens with "+", the inverse of ParseShortcut for
// tokens that do not alias to something else.
func FormatShortcut(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t == Space {
			parts[i] = "Space"
			continue
		}
		parts[i] = string(t)
	}
	return strings.Join(parts, "+")
}
