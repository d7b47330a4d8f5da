package components

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/noted/internal/ui"
)

// Header is the title bar: app name and notespace on the left, active file
// on the right
type Header struct {
	appName    string
	root       string
	activeFile string
	bookmarked bool
	width      int
	theme      *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetRoot(root string) {
	h.root = root
}

func (h *Header) SetActiveFile(path string, bookmarked bool) {
	h.activeFile = path
	h.bookmarked = bookmarked
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	mutedStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	left := h.theme.AppTitle.Render(h.appName)
	if h.root != "" {
		left += mutedStyle.Render(h.root)
	}

	var right string
	if h.activeFile != "" {
		name := filepath.Base(h.activeFile)
		if h.bookmarked {
			name = "★ " + name
		}
		right = mutedStyle.Render(name)
	}

	// Push the file name to the right edge
	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}

	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
