package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"diapo/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the shortcut summary overlay
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPresentMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Diapo Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Terminal slide presenter"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("→ / PgDn / Space", "Next slide"))
	b.WriteString(helpLine("← / PgUp", "Previous slide"))
	b.WriteString(helpLine("Home / g", "First slide"))
	b.WriteString(helpLine("End / G", "Last slide"))
	b.WriteString(helpLine("Mouse drag", "Swipe left/right"))
	b.WriteString(helpLine("Click ‹ prev / next ›", "Navigate"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy slide source to clipboard"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 24)) + styles.HelpDesc.Render(desc) + "\n"
}

// padRight pads to a display width, not a byte count: the arrow keys in
// the bindings are multi-byte runes.
func padRight(s string, length int) string {
	w := lipgloss.Width(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToPresentMsg struct{}
