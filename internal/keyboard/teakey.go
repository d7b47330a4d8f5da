package keyboard

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Options controls how terminal key messages are mapped to events
type Options struct {
	// MetaFromAlt reports the terminal Alt/Option modifier as Meta.
	// Terminals cannot see the Command key, so without this no Meta
	// shortcut can ever be typed.
	MetaFromAlt bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{MetaFromAlt: true}
}

// FromKeyMsg converts a Bubble Tea key message into an Event.
// Pasted input yields the zero Event, which matches nothing.
func FromKeyMsg(msg tea.KeyMsg, opts Options) Event {
	if msg.Paste {
		return Event{}
	}

	var e Event
	if msg.Alt {
		if opts.MetaFromAlt {
			e.Meta = true
		} else {
			e.Alt = true
		}
	}

	switch msg.Type {
	case tea.KeyEnter:
		e.Key = string(Enter)
	case tea.KeyEsc:
		e.Key = string(Escape)
	case tea.KeyTab:
		e.Key = string(Tab)
	case tea.KeyShiftTab:
		e.Shift = true
		e.Key = string(Tab)
	case tea.KeySpace:
		e.Key = string(Space)
	case tea.KeyDelete:
		e.Key = string(Delete)
	case tea.KeyPgUp:
		e.Key = string(PageUp)
	case tea.KeyPgDown:
		e.Key = string(PageDown)
	case tea.KeyUp:
		e.Key = string(ArrowUp)
	case tea.KeyDown:
		e.Key = string(ArrowDown)
	case tea.KeyLeft:
		e.Key = string(ArrowLeft)
	case tea.KeyRight:
		e.Key = string(ArrowRight)
	case tea.KeyShiftUp:
		e.Shift = true
		e.Key = string(ArrowUp)
	case tea.KeyShiftDown:
		e.Shift = true
		e.Key = string(ArrowDown)
	case tea.KeyShiftLeft:
		e.Shift = true
		e.Key = string(ArrowLeft)
	case tea.KeyShiftRight:
		e.Shift = true
		e.Key = string(ArrowRight)
	case tea.KeyCtrlUp:
		e.Control = true
		e.Key = string(ArrowUp)
	case tea.KeyCtrlDown:
		e.Control = true
		e.Key = string(ArrowDown)
	case tea.KeyCtrlLeft:
		e.Control = true
		e.Key = string(ArrowLeft)
	case tea.KeyCtrlRight:
		e.Control = true
		e.Key = string(ArrowRight)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return e
		}
		if len(msg.Runes) == 1 && unicode.IsUpper(msg.Runes[0]) {
			e.Shift = true
		}
		e.Key = string(msg.Runes)
	default:
		// Ctrl+letter arrives as its own key type. Tab and Enter share
		// codes with Ctrl+I and Ctrl+M and are handled above.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			e.Control = true
			e.Key = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		}
	}

	return e
}
