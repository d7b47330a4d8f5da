package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors and styles of the terminal host
type Theme struct {
	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor

	// Component styles
	AppTitle  lipgloss.Style // Title bar
	Sidebar   lipgloss.Style // Sidebar panel
	Tab       lipgloss.Style // Inactive tab
	ActiveTab lipgloss.Style // Active tab
	Palette   lipgloss.Style // Command palette frame
	Selected  lipgloss.Style // Selected palette row
	Kbd       lipgloss.Style // One shortcut key
	StatusBar lipgloss.Style
}

// DefaultTheme returns the Charm-colored theme
func DefaultTheme() *Theme {
	t := &Theme{}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(lipgloss.Color("235")).
		Bold(true).
		Padding(0, 1)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderRight(true).
		PaddingRight(1).
		Width(24)

	t.Tab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.ActiveTab = t.Tab.
		Foreground(t.Foreground).
		Underline(true)

	t.Palette = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	t.Kbd = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"}).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}
