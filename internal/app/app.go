// Package app is the Bubble Tea model that turns key presses into command
// emissions and renders the resulting editor state.
package app

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/noted/internal/commands"
	"github.com/renato0307/noted/internal/components"
	"github.com/renato0307/noted/internal/keyboard"
	"github.com/renato0307/noted/internal/logging"
	"github.com/renato0307/noted/internal/messages"
	"github.com/renato0307/noted/internal/modals"
	"github.com/renato0307/noted/internal/state"
	"github.com/renato0307/noted/internal/ui"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar if seq still matches the message shown
type ClearStatusMsg struct {
	seq int
}

type Model struct {
	registry  *commands.Registry
	store     *state.Store
	header    *components.Header
	statusBar *components.StatusBar
	palette   *modals.CommandPalette
	theme     *ui.Theme
	keys      keyboard.Options
	logger    *logging.Logger

	width     int
	height    int
	statusSeq int
}

// NewModel creates the model. Command handlers must already be bound to
// registry and store.
func NewModel(registry *commands.Registry, store *state.Store, theme *ui.Theme, keys keyboard.Options) Model {
	header := components.NewHeader("noted", theme)
	header.SetWidth(80)

	statusBar := components.NewStatusBar(theme)
	statusBar.SetWidth(80)
	statusBar.SetHint(hint(registry))

	palette := modals.NewCommandPalette(registry, theme)
	palette.SetWidth(60)

	return Model{
		registry:  registry,
		store:     store,
		header:    header,
		statusBar: statusBar,
		palette:   palette,
		theme:     theme,
		keys:      keys,
		logger:    logging.Get().With("component", "app"),
		width:     80,
		height:    24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("noted")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.palette.SetWidth(msg.Width / 2)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case modals.CommandSelectedMsg:
		m.closeDialog()
		if !msg.Command.IsAvailable() {
			return m, nil
		}
		return m.dispatch(msg.Command, nil)

	case modals.PaletteClosedMsg:
		m.closeDialog()
		return m, nil

	case messages.StatusMsg:
		return m.setStatus(msg.Text, msg.Type)

	case ClearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusBar.ClearMessage()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.store.Get().Dialog {
	case state.DialogNone:
	case state.DialogCommandPalette:
		// The palette's own toggle still closes it
		if cmd := m.lookup(msg); cmd != nil && cmd.ID == commands.IDCommandPalette {
			return m.dispatch(cmd, keyboard.FromKeyMsg(msg, m.keys))
		}
		return m, m.palette.Update(msg)
	default:
		if msg.Type == tea.KeyEsc {
			m.closeDialog()
			return m, nil
		}
	}

	cmd := m.lookup(msg)
	if cmd == nil {
		return m, nil
	}
	if !cmd.IsAvailable() {
		m.logger.Debug("command unavailable", "id", cmd.ID)
		return m, messages.InfoCmd("%s is not available", cmd.Label)
	}
	return m.dispatch(cmd, keyboard.FromKeyMsg(msg, m.keys))
}

func (m Model) lookup(msg tea.KeyMsg) *commands.Command {
	return m.registry.FindByKeyEvent(keyboard.FromKeyMsg(msg, m.keys))
}

// dispatch emits cmd and opens the palette when the emission opened it
func (m Model) dispatch(cmd *commands.Command, detail any) (tea.Model, tea.Cmd) {
	wasOpen := m.store.Get().Dialog == state.DialogCommandPalette

	if err := m.registry.Emit(cmd, detail); err != nil {
		m.logger.Error("command failed", "id", cmd.ID, "error", err)
		return m, messages.ErrorCmd("%v", err)
	}

	// Clipboard writes leave no trace on screen, so the host confirms them.
	// Other commands report only failures.
	if cmd.ID == commands.IDFileCopyPath {
		return m, messages.SuccessCmd("Copied %s", m.store.Get().ActiveTab)
	}

	if !wasOpen && m.store.Get().Dialog == state.DialogCommandPalette {
		return m, m.palette.Open()
	}
	return m, nil
}

func (m Model) closeDialog() {
	m.store.Update(func(s state.State) state.State {
		s.Dialog = state.DialogNone
		return s
	})
}

func (m Model) setStatus(text string, msgType ui.MessageType) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.statusBar.SetMessage(text, msgType)

	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}

func (m Model) View() string {
	s := m.store.Get()

	m.header.SetRoot(s.Root)
	m.header.SetActiveFile(s.ActiveTab, s.IsBookmarked(s.ActiveTab))

	bodyHeight := max(m.height-2, 1)

	var main string
	switch s.Dialog {
	case state.DialogCommandPalette:
		main = m.palette.View()
	case state.DialogSettings, state.DialogSettingsNotespace:
		main = m.viewSettings()
	default:
		main = m.viewTabs(s)
	}

	body := main
	if s.Sidebar {
		sidebar := m.theme.Sidebar.Height(bodyHeight).Render(m.viewSidebar(s))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body),
		m.statusBar.View(),
	)
}

func (m Model) viewSidebar(s state.State) string {
	var b strings.Builder
	for _, tab := range []state.SidebarTab{state.SidebarFiles, state.SidebarGrep, state.SidebarSaved} {
		style := m.theme.Tab
		if tab == s.SidebarTab {
			style = m.theme.ActiveTab
		}
		b.WriteString(style.Render(string(tab)))
	}
	b.WriteString("\n\n")

	switch s.SidebarTab {
	case state.SidebarGrep:
		b.WriteString("Search in notespace")
	case state.SidebarSaved:
		if len(s.Bookmarks) == 0 {
			b.WriteString("No bookmarks")
		}
		for _, path := range s.Bookmarks {
			b.WriteString("★ " + filepath.Base(path) + "\n")
		}
	default:
		for _, path := range s.Tabs {
			b.WriteString(filepath.Base(path) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewTabs(s state.State) string {
	if len(s.Tabs) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No file open")
	}

	tabs := make([]string, 0, len(s.Tabs))
	for _, path := range s.Tabs {
		name := filepath.Base(path)
		if s.IsBookmarked(path) {
			name = "★ " + name
		}
		style := m.theme.Tab
		if path == s.ActiveTab {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(name))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n" + s.ActiveTab
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.AppTitle.Render("Keyboard Shortcuts"))
	for _, cmd := range m.registry.ListVisible() {
		b.WriteString("\n")
		b.WriteString(cmd.Label)
		b.WriteString("  ")
		b.WriteString(ui.RenderShortcut(cmd.Shortcut(), m.theme))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("esc to close"))
	return m.theme.Palette.Render(b.String())
}

// hint names the palette shortcut when one is bound
func hint(registry *commands.Registry) string {
	text := "ctrl+c to quit"
	if palette := registry.FindByID(commands.IDCommandPalette); palette != nil && len(palette.Shortcut()) > 0 {
		text = keyboard.FormatShortcut(palette.Shortcut()) + " for commands · " + text
	}
	return text
}
