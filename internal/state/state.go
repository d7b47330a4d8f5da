// Package state holds the editor UI state that commands act on and the
// handlers that bind commands to it.
package state

import (
	"slices"
	"sync"
)

// Dialog identifies the modal dialog currently open
type Dialog string

const (
	DialogNone              Dialog = ""
	DialogCommandPalette    Dialog = "cmd-palette"
	DialogSearchNotespace   Dialog = "search-notespace"
	DialogSettings          Dialog = "settings"
	DialogSettingsNotespace Dialog = "settings-notespace"
)

// SidebarTab identifies the panel shown in the sidebar
type SidebarTab string

const (
	SidebarFiles   SidebarTab = "files"
	SidebarGrep    SidebarTab = "grep"
	SidebarSaved   SidebarTab = "saved"
	SidebarPlugins SidebarTab = "plugins"
)

// State is the editor state commands read and replace
type State struct {
	Sidebar    bool
	SidebarTab SidebarTab
	Dialog     Dialog
	Root       string   // Notespace directory
	Tabs       []string // Open file paths
	ActiveTab  string   // Empty when no tab is open
	Bookmarks  []string
}

// New returns the initial state for a notespace with the given open tabs.
// The first tab, if any, becomes active.
func New(root string, tabs []string) State {
	s := State{
		Sidebar:    true,
		SidebarTab: SidebarFiles,
		Root:       root,
		Tabs:       slices.Clone(tabs),
	}
	if len(tabs) > 0 {
		s.ActiveTab = tabs[0]
	}
	return s
}

// clone copies the slices so a State value can be changed freely
func (s State) clone() State {
	s.Tabs = slices.Clone(s.Tabs)
	s.Bookmarks = slices.Clone(s.Bookmarks)
	return s
}

// IsBookmarked reports whether path is in the bookmarks
func (s State) IsBookmarked(path string) bool {
	return slices.Contains(s.Bookmarks, path)
}

// IsInvalidDialogTransition reports whether next swaps one open dialog for
// a different one
func IsInvalidDialogTransition(prev, next State) bool {
	return prev.Dialog != DialogNone &&
		next.Dialog != DialogNone &&
		prev.Dialog != next.Dialog
}

// DisableWhenDialog keeps prev while a dialog is open, or when next would
// jump straight from one dialog to another; otherwise it returns next
func DisableWhenDialog(prev, next State) State {
	if prev.Dialog != DialogNone || IsInvalidDialogTransition(prev, next) {
		return prev
	}
	return next
}

// Store owns the current State
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding initial
func NewStore(initial State) *Store {
	return &Store{state: initial.clone()}
}

// Get returns a copy of the current state
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update replaces the state with fn's result. fn receives a copy and must
// not call back into the store.
func (s *Store) Update(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state.clone()).clone()
	return s.state.clone()
}
