package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/noted/internal/commands"
	"github.com/renato0307/noted/internal/keyboard"
	"github.com/renato0307/noted/internal/messages"
	"github.com/renato0307/noted/internal/modals"
	"github.com/renato0307/noted/internal/state"
	"github.com/renato0307/noted/internal/testutil"
	"github.com/renato0307/noted/internal/ui"
)

type fixture struct {
	model    Model
	registry *commands.Registry
	store    *state.Store
	copied   []string
}

func newFixture(t *testing.T, tabs ...string) *fixture {
	t.Helper()

	registry, err := commands.NewRegistry(commands.Defaults()...)
	require.NoError(t, err)

	f := &fixture{
		registry: registry,
		store:    state.NewStore(state.New("/notes", tabs)),
	}
	_, err = state.NewHandlers(f.store).
		WithClipboard(func(s string) error {
			f.copied = append(f.copied, s)
			return nil
		}).
		Bind(registry)
	require.NoError(t, err)

	f.model = NewModel(registry, f.store, ui.DefaultTheme(), keyboard.DefaultOptions())
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	updated, cmd := f.model.Update(msg)
	f.model = updated.(Model)
	return cmd
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestUpdate_ShortcutEmitsCommand(t *testing.T) {
	f := newFixture(t)

	// Only copy-path confirms success with a status message
	assert.Nil(t, f.send(alt('b')))
	assert.False(t, f.store.Get().Sidebar)

	f.send(alt('b'))
	assert.True(t, f.store.Get().Sidebar)
}

func TestUpdate_UnboundKeyIsIgnored(t *testing.T) {
	f := newFixture(t)
	before := f.store.Get()

	cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	assert.Nil(t, cmd)
	assert.Equal(t, before, f.store.Get())
}

func TestUpdate_UnavailableCommandIsSkipped(t *testing.T) {
	f := newFixture(t)
	f.registry.FindByID(commands.IDSidebarToggle).SetAvailable(false)

	cmd := f.send(alt('b'))
	assert.True(t, f.store.Get().Sidebar)

	require.NotNil(t, cmd)
	f.send(cmd())
	assert.Contains(t, f.model.View(), "Toggle Sidebar is not available")
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_PaletteOpensAndRoutesKeys(t *testing.T) {
	f := newFixture(t)

	f.send(alt('P'))
	require.Equal(t, state.DialogCommandPalette, f.store.Get().Dialog)
	assert.Contains(t, f.model.View(), "Toggle Sidebar")

	// Shortcuts are not dispatched while the palette has focus
	f.send(alt('b'))
	assert.True(t, f.store.Get().Sidebar)

	// The palette's own shortcut closes it
	f.send(alt('P'))
	assert.Equal(t, state.DialogNone, f.store.Get().Dialog)
}

func TestUpdate_PaletteSelectionClosesThenEmits(t *testing.T) {
	f := newFixture(t)
	f.send(alt('P'))

	for _, r := range "sidebar" {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(modals.CommandSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, commands.IDSidebarToggle, selected.Command.ID)

	// The sidebar toggle is guarded by open dialogs, so it only takes
	// effect because the palette closes first
	f.send(msg)
	s := f.store.Get()
	assert.Equal(t, state.DialogNone, s.Dialog)
	assert.False(t, s.Sidebar)
}

func TestUpdate_PaletteEscape(t *testing.T) {
	f := newFixture(t)
	f.send(alt('P'))

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	f.send(cmd())

	assert.Equal(t, state.DialogNone, f.store.Get().Dialog)
}

func TestUpdate_SettingsDialog(t *testing.T) {
	f := newFixture(t)

	f.send(alt(','))
	require.Equal(t, state.DialogSettings, f.store.Get().Dialog)
	assert.Contains(t, f.model.View(), "Keyboard Shortcuts")

	f.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, state.DialogNone, f.store.Get().Dialog)
}

func TestUpdate_ListenerErrorShowsStatus(t *testing.T) {
	f := newFixture(t)
	f.registry.Subscribe(f.registry.FindByID(commands.IDFileNew), func(any) error {
		return errors.New("disk full")
	})

	cmd := f.send(alt('n'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, ui.MessageTypeError, msg.Type)

	require.NotNil(t, f.send(msg), "a clear is scheduled")
	assert.Contains(t, f.model.View(), "disk full")

	// A stale clear does not remove a newer message
	f.send(ClearStatusMsg{seq: f.model.statusSeq - 1})
	assert.Contains(t, f.model.View(), "disk full")

	f.send(ClearStatusMsg{seq: f.model.statusSeq})
	assert.NotContains(t, f.model.View(), "disk full")
}

func TestUpdate_CopyPath(t *testing.T) {
	f := newFixture(t, "/notes/todo.md")

	cmd := f.send(alt('C'))
	assert.Equal(t, []string{"/notes/todo.md"}, f.copied)
	require.NotNil(t, cmd)
	f.send(cmd())
	assert.Contains(t, f.model.View(), "Copied /notes/todo.md")

	empty := newFixture(t)
	cmd = empty.send(alt('C'))
	require.NotNil(t, cmd)
	empty.send(cmd())
	assert.Contains(t, empty.model.View(), state.ErrNoActiveTab.Error())
}

func TestView_Bookmarks(t *testing.T) {
	f := newFixture(t, "/notes/todo.md")

	f.send(alt('d'))
	view := f.model.View()
	assert.Contains(t, view, "★ todo.md")
}

func TestProgram_PaletteFromShortcut(t *testing.T) {
	f := newFixture(t, "/notes/todo.md")

	tp := testutil.NewTestProgram(t, f.model, 120, 30)
	require.True(t, tp.WaitForOutput("todo.md", time.Second))

	tp.SendAlt('P')
	assert.True(t, tp.WaitForOutput("Toggle Sidebar", time.Second))

	tp.SendKey(tea.KeyCtrlC)
	assert.Eventually(t, tp.Finished, time.Second, 20*time.Millisecond)
}
