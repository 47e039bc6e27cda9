package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Slide styles
	SlideBody = lipgloss.NewStyle().
			Padding(1, 0)

	// The exit treatment: the outgoing slide is dimmed during the
	// stagger between exit cue and commit.
	SlideExiting = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	// Footer styles
	Counter = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ButtonEnabled = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	FooterMeta = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// Accent returns the accent color for a theme name.
func Accent(theme string) lipgloss.Color {
	switch theme {
	case "light":
		return lipgloss.Color("#2563EB") // Blue
	case "plain":
		return White
	default:
		return Primary
	}
}
