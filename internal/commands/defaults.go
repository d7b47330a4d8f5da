package commands

import (
	"github.com/renato0307/noted/internal/keyboard"
)

// Defaults returns a fresh copy of the built-in command table, in the
// order the palette lists them
func Defaults() []*Command {
	return []*Command{
		New(IDCommandPalette, "Show All Commands",
			[]keyboard.Token{keyboard.Meta, keyboard.Shift, "P"}, Hidden()),
		New(IDSidebarToggle, "Toggle Sidebar",
			[]keyboard.Token{keyboard.Meta, "B"}),
		New(IDSettings, "Open Settings",
			[]keyboard.Token{keyboard.Meta, ","}),
		New(IDFileOpen, "Go to File",
			[]keyboard.Token{keyboard.Meta, "P"}),
		New(IDNotespaceFind, "Search in Notespace",
			[]keyboard.Token{keyboard.Meta, keyboard.Shift, "F"}),
		New(IDFileBookmark, "Bookmark Note",
			[]keyboard.Token{keyboard.Meta, "D"}),
		New(IDFileNew, "Create New File",
			[]keyboard.Token{keyboard.Meta, "N"}),
		New(IDFileSave, "Save File",
			[]keyboard.Token{keyboard.Meta, "S"}),
		// Added by the terminal host for clipboard access to the active file
		New(IDFileCopyPath, "Copy Path of Active File",
			[]keyboard.Token{keyboard.Meta, keyboard.Shift, "C"}),
	}
}
