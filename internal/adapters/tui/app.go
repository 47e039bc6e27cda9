package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"diapo/internal/adapters/tui/views"
	"diapo/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPresent ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	present *views.PresentModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application for the deck. Listeners are
// subscribed to the navigator for the lifetime of the session.
func NewApp(deck *domain.Deck, theme string, listeners ...domain.Listener) *App {
	return &App{
		state:   ViewPresent,
		present: views.NewPresentModel(deck, theme, listeners...),
		help:    views.NewHelpModel(),
	}
}

// Present exposes the presentation model, for wiring and tests.
func (a *App) Present() *views.PresentModel {
	return a.present
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.present.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.present.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPresentMsg:
		a.state = ViewPresent
		return a, nil

	// Deck reloads apply regardless of the visible view.
	case views.DeckReloadedMsg:
		_, cmd := a.present.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPresent:
		_, cmd = a.present.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.present.View()
	}
}
