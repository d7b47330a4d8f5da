package modals

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/noted/internal/commands"
	"github.com/renato0307/noted/internal/ui"
)

// maxPaletteRows caps the number of commands listed at once
const maxPaletteRows = 10

// CommandSelectedMsg is sent when a command is chosen in the palette
type CommandSelectedMsg struct {
	Command *commands.Command
}

// PaletteClosedMsg is sent when the palette is dismissed without a choice
type PaletteClosedMsg struct{}

// CommandPalette lists visible commands and filters them as the user types
type CommandPalette struct {
	registry *commands.Registry
	theme    *ui.Theme
	input    textinput.Model
	items    []*commands.Command
	cursor   int
	width    int
}

// NewCommandPalette creates a palette over the registry's visible commands
func NewCommandPalette(registry *commands.Registry, theme *ui.Theme) *CommandPalette {
	input := textinput.New()
	input.Placeholder = "Type a command or search..."
	input.Prompt = "> "

	p := &CommandPalette{
		registry: registry,
		theme:    theme,
		input:    input,
		width:    60,
	}
	p.refresh()
	return p
}

// Open clears the query and focuses the input
func (p *CommandPalette) Open() tea.Cmd {
	p.input.SetValue("")
	p.refresh()
	return p.input.Focus()
}

// SetWidth sets the outer width of the palette
func (p *CommandPalette) SetWidth(width int) {
	if width > 80 {
		width = 80
	}
	if width < 30 {
		width = 30
	}
	p.width = width
}

// Items returns the commands currently listed
func (p *CommandPalette) Items() []*commands.Command {
	return p.items
}

// Selected returns the highlighted command, or nil when nothing matches
func (p *CommandPalette) Selected() *commands.Command {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return nil
	}
	return p.items[p.cursor]
}

func (p *CommandPalette) refresh() {
	p.items = p.registry.Filter(p.input.Value())
	if p.cursor >= len(p.items) {
		p.cursor = max(len(p.items)-1, 0)
	}
}

// Update handles a key while the palette is open
func (p *CommandPalette) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return func() tea.Msg { return PaletteClosedMsg{} }
	case tea.KeyEnter:
		selected := p.Selected()
		if selected == nil {
			return nil
		}
		return func() tea.Msg { return CommandSelectedMsg{Command: selected} }
	case tea.KeyUp, tea.KeyCtrlP:
		if p.cursor > 0 {
			p.cursor--
		}
		return nil
	case tea.KeyDown, tea.KeyCtrlN:
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
		return nil
	}

	previous := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != previous {
		p.cursor = 0
		p.refresh()
	}
	return cmd
}

// View renders the palette
func (p *CommandPalette) View() string {
	inner := p.width - 4 // border and padding

	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if len(p.items) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Render("No results found."))
		return p.theme.Palette.Width(p.width).Render(b.String())
	}

	start := 0
	if p.cursor >= maxPaletteRows {
		start = p.cursor - maxPaletteRows + 1
	}
	end := min(start+maxPaletteRows, len(p.items))

	for i := start; i < end; i++ {
		cmd := p.items[i]
		shortcut := ui.RenderShortcut(cmd.Shortcut(), p.theme)
		gap := inner - lipgloss.Width(cmd.Label) - lipgloss.Width(shortcut)
		if gap < 1 {
			gap = 1
		}
		row := cmd.Label + strings.Repeat(" ", gap) + shortcut
		if i == p.cursor {
			row = p.theme.Selected.Render(row)
		}
		b.WriteString("\n")
		b.WriteString(row)
	}

	return p.theme.Palette.Width(p.width).Render(b.String())
}
