package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New("/notes", []string{"/notes/a.md", "/notes/b.md"})

	assert.True(t, s.Sidebar)
	assert.Equal(t, SidebarFiles, s.SidebarTab)
	assert.Equal(t, DialogNone, s.Dialog)
	assert.Equal(t, "/notes/a.md", s.ActiveTab)

	empty := New("/notes", nil)
	assert.Empty(t, empty.ActiveTab)
}

func TestIsInvalidDialogTransition(t *testing.T) {
	tests := []struct {
		name string
		prev Dialog
		next Dialog
		want bool
	}{
		{name: "none to none", prev: DialogNone, next: DialogNone, want: false},
		{name: "open dialog", prev: DialogNone, next: DialogSettings, want: false},
		{name: "close dialog", prev: DialogSettings, next: DialogNone, want: false},
		{name: "same dialog", prev: DialogSettings, next: DialogSettings, want: false},
		{name: "swap dialogs", prev: DialogCommandPalette, next: DialogSettings, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInvalidDialogTransition(State{Dialog: tt.prev}, State{Dialog: tt.next})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisableWhenDialog(t *testing.T) {
	closed := State{Sidebar: true}
	open := State{Sidebar: true, Dialog: DialogCommandPalette}

	t.Run("applies when no dialog", func(t *testing.T) {
		next := closed
		next.Sidebar = false
		assert.Equal(t, next, DisableWhenDialog(closed, next))
	})

	t.Run("keeps prev while dialog open", func(t *testing.T) {
		next := open
		next.Sidebar = false
		assert.Equal(t, open, DisableWhenDialog(open, next))
	})

	t.Run("allows opening a dialog", func(t *testing.T) {
		next := closed
		next.Dialog = DialogSettings
		assert.Equal(t, next, DisableWhenDialog(closed, next))
	})
}

func TestStore_UpdateIsolatesCopies(t *testing.T) {
	store := NewStore(New("/notes", []string{"/notes/a.md"}))

	snapshot := store.Get()
	snapshot.Tabs[0] = "mutated"
	assert.Equal(t, "/notes/a.md", store.Get().Tabs[0])

	updated := store.Update(func(s State) State {
		s.Bookmarks = append(s.Bookmarks, "/notes/a.md")
		return s
	})
	assert.Equal(t, []string{"/notes/a.md"}, updated.Bookmarks)
	assert.True(t, store.Get().IsBookmarked("/notes/a.md"))
}
