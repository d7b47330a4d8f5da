package commands

// Built-in command IDs
const (
	IDCommandPalette = "editor.command.palette"
	IDSidebarToggle  = "editor.sidebar.toggle"
	IDSettings       = "editor.settings"
	IDFileOpen       = "editor.notespace.file.open"
	IDNotespaceFind  = "editor.notespace.find"
	IDFileBookmark   = "editor.notespace.file.bookmark"
	IDFileNew        = "editor.notespace.file.new"
	IDFileSave       = "editor.notespace.file.save"
	IDFileCopyPath   = "editor.notespace.file.copypath"
)
