package components

import (
	"github.com/renato0307/noted/internal/ui"
)

// StatusBar displays status messages, or a key hint when there is none
type StatusBar struct {
	message     string
	messageType ui.MessageType
	hint        string
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type
func (sb *StatusBar) SetMessage(msg string, msgType ui.MessageType) {
	sb.message = msg
	sb.messageType = msgType
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = ui.MessageTypeInfo
}

// Message returns the current status message
func (sb *StatusBar) Message() string {
	return sb.message
}

// SetHint sets the text shown while there is no message
func (sb *StatusBar) SetHint(hint string) {
	sb.hint = hint
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// View renders the status bar
func (sb *StatusBar) View() string {
	if sb.message != "" {
		return ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width)
	}

	// Render the line even when empty to reserve space
	return sb.theme.StatusBar.
		MaxWidth(max(sb.width, 1)).
		Render(sb.hint)
}
