package keyboard

// Token is a single modifier or key name as it appears in a shortcut
// (e.g. "Meta", "Shift", "P", "Escape").
type Token string

// Combination is the canonical, order-independent form of a set of tokens:
// the tokens sorted lexicographically and joined with a comma.
type Combination string

// Modifiers
const (
	Alt     Token = "Alt"
	Control Token = "Control"
	Meta    Token = "Meta"
	Shift   Token = "Shift"
)

// Named keys. These are matched verbatim and never go through the
// first-character capitalization rule.
const (
	Delete     Token = "Delete"
	Enter      Token = "Enter"
	Escape     Token = "Escape"
	Space      Token = " "
	ArrowUp    Token = "ArrowUp"
	ArrowDown  Token = "ArrowDown"
	ArrowLeft  Token = "ArrowLeft"
	ArrowRight Token = "ArrowRight"
	Tab        Token = "Tab"
	PageUp     Token = "PageUp"
	PageDown   Token = "PageDown"
)

// separator joins sorted tokens; no token contains it.
const separator = ","

// symbols is the table of named tokens and the glyph used to display each.
// Membership in this table is what makes a key identifier "named".
var symbols = map[Token]string{
	Alt:        "⌥",
	Control:    "⌃",
	Meta:       "⌘",
	Shift:      "⇧",
	Delete:     "⌦",
	Enter:      "↵",
	Escape:     "⎋",
	Space:      "␣",
	ArrowUp:    "↑",
	ArrowDown:  "↓",
	ArrowLeft:  "←",
	ArrowRight: "→",
	Tab:        "⇥",
	PageUp:     "PgUp",
	PageDown:   "PgDn",
}

// IsNamed reports whether key is one of the named tokens
func IsNamed(key string) bool {
	_, ok := symbols[Token(key)]
	return ok
}

// IsModifier reports whether t is one of Alt, Control, Meta or Shift
func IsModifier(t Token) bool {
	switch t {
	case Alt, Control, Meta, Shift:
		return true
	}
	return false
}

// Symbol returns the display glyph for a token.
// Tokens outside the named table render as themselves.
func Symbol(t Token) string {
	if s, ok := symbols[t]; ok {
		return s
	}
	return string(t)
}
