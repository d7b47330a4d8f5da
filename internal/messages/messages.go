// Package messages holds the status messages command results are reported
// with, and helpers that wrap them in a tea.Cmd.
package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/noted/internal/ui"
)

// StatusMsg shows a message in the status bar
type StatusMsg struct {
	Text string
	Type ui.MessageType
}

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err := registry.Emit(cmd, nil); err != nil {
//	    return messages.ErrorCmd("%v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	return statusCmd(ui.MessageTypeError, format, args...)
}

// SuccessCmd returns a tea.Cmd that produces a success status message
func SuccessCmd(format string, args ...any) tea.Cmd {
	return statusCmd(ui.MessageTypeSuccess, format, args...)
}

// InfoCmd returns a tea.Cmd that produces an info status message
func InfoCmd(format string, args ...any) tea.Cmd {
	return statusCmd(ui.MessageTypeInfo, format, args...)
}

func statusCmd(msgType ui.MessageType, format string, args ...any) tea.Cmd {
	msg := StatusMsg{Text: fmt.Sprintf(format, args...), Type: msgType}
	return func() tea.Msg {
		return msg
	}
}
