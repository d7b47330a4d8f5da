package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// RenderMessage renders a status line. Long messages are truncated to fit
// width.
func RenderMessage(text string, msgType MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// Room for the bullet and a small margin
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var color lipgloss.AdaptiveColor
	switch msgType {
	case MessageTypeSuccess:
		color = theme.Success
	case MessageTypeError:
		color = theme.Error
	default:
		color = theme.Muted
	}

	return lipgloss.NewStyle().Foreground(color).Render("⏺ " + text)
}
