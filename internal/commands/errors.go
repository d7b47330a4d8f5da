package commands

import (
	"errors"
	"fmt"

	"github.com/renato0307/noted/internal/keyboard"
)

var (
	// ErrDuplicateID is returned when two commands share an ID or an ID is empty
	ErrDuplicateID = errors.New("duplicate command id")
	// ErrShortcutConflict is returned when two commands share a key combination
	ErrShortcutConflict = errors.New("shortcut conflict")
	// ErrUnknownCommand is returned when a keybinding names no known command
	ErrUnknownCommand = errors.New("unknown command")
)

// ConflictError names the two commands bound to the same combination
type ConflictError struct {
	Combination keyboard.Combination
	First       string // ID registered first
	Second      string // ID that collided with it
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %q and %q both bound to %q",
		ErrShortcutConflict, e.First, e.Second, e.Combination)
}

// Unwrap lets errors.Is match ErrShortcutConflict
func (e *ConflictError) Unwrap() error {
	return ErrShortcutConflict
}
