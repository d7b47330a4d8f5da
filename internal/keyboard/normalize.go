// Package keyboard turns raw key presses into canonical key combinations.
//
// A key press is described by an Event (four modifier flags plus the key
// identifier). Normalize converts it to the tokens that were pressed and to
// a Combination, which is independent of the order modifiers were pressed
// in. Command shortcuts are canonicalized with the same rule, so matching a
// key press to a command is a plain string comparison.
package keyboard

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Event describes a single key press
type Event struct {
	Alt     bool
	Control bool
	Meta    bool
	Shift   bool
	Key     string // Non-modifier key identifier (e.g. "p", "Escape", " ")
}

// Normalize returns the tokens of the event in append order
// (Alt, Control, Meta, Shift, key) and its canonical combination.
func Normalize(e Event) ([]Token, Combination) {
	tokens := make([]Token, 0, 5)

	if e.Alt {
		tokens = append(tokens, Alt)
	}
	if e.Control {
		tokens = append(tokens, Control)
	}
	if e.Meta {
		tokens = append(tokens, Meta)
	}
	if e.Shift {
		tokens = append(tokens, Shift)
	}
	if e.Key != "" {
		tokens = append(tokens, keyToken(e.Key))
	}

	return tokens, Canonical(tokens)
}

// Canonical sorts a copy of tokens and joins them with the separator.
// The input slice is left untouched.
func Canonical(tokens []Token) Combination {
	if len(tokens) == 0 {
		return ""
	}

	sorted := slices.Clone(tokens)
	slices.Sort(sorted)

	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = string(t)
	}
	return Combination(strings.Join(parts, separator))
}

// keyToken maps a raw key identifier to its token. Named keys pass through
// verbatim; anything else only gets its first character upper-cased, so
// "escape" happens to become "Escape" but "pageup" becomes "Pageup".
func keyToken(key string) Token {
	if IsNamed(key) {
		return Token(key)
	}
	return Token(capitalize(key))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
