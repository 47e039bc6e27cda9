package views

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"diapo/internal/adapters/tui/styles"
	"diapo/internal/domain"
)

// PresentKeyMap defines key bindings for the presentation view
type PresentKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var PresentKeys = PresentKeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "pgdown", " "),
		key.WithHelp("→/pgdn/space", "next slide"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←/pgup", "previous slide"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first slide"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last slide"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy slide source"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// slideCommitMsg is the deferred phase of a navigation: it carries the
// transition sequence number so superseded commits are dropped.
type slideCommitMsg struct {
	seq int
}

// DeckReloadedMsg carries a freshly re-parsed deck into the program.
type DeckReloadedMsg struct {
	Deck *domain.Deck
}

// buttonZone is the clickable column range of a footer button.
type buttonZone struct {
	row        int
	start, end int
}

func (z buttonZone) hit(x, y int) bool {
	return y == z.row && x >= z.start && x < z.end
}

// PresentModel is the model for the presentation view
type PresentModel struct {
	deck      *domain.Deck
	nav       *domain.Navigator
	listeners []domain.Listener
	bar       progress.Model
	theme     string
	accent    lipgloss.Color

	width  int
	height int

	message    string
	messageErr bool

	swiping     bool
	swipeStartX int

	prevZone buttonZone
	nextZone buttonZone
}

// NewPresentModel creates a presentation model for the deck. The deck's
// frontmatter theme wins over the configured one. Listeners are
// subscribed to the navigator and survive deck reloads.
func NewPresentModel(deck *domain.Deck, theme string, listeners ...domain.Listener) *PresentModel {
	m := &PresentModel{
		deck:      deck,
		listeners: listeners,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(24)),
		theme:     theme,
	}
	m.applyTheme()
	m.attach(domain.NewNavigator(deck))
	return m
}

func (m *PresentModel) applyTheme() {
	theme := m.theme
	if m.deck.Meta.Theme != "" {
		theme = m.deck.Meta.Theme
	}
	m.accent = styles.Accent(theme)
}

func (m *PresentModel) attach(nav *domain.Navigator) {
	m.nav = nav
	for _, l := range m.listeners {
		nav.Subscribe(l)
	}
}

// Navigator exposes the live navigator, for wiring and tests.
func (m *PresentModel) Navigator() *domain.Navigator {
	return m.nav
}

// Init initializes the presentation view
func (m *PresentModel) Init() tea.Cmd {
	return m.windowTitle()
}

// Update handles messages for the presentation view
func (m *PresentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case slideCommitMsg:
		if m.nav.Commit(msg.seq) {
			return m, m.windowTitle()
		}
		return m, nil

	case DeckReloadedMsg:
		return m, m.Reload(msg.Deck)

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, PresentKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PresentKeys.Next):
			return m, m.schedule(m.nav.Next())

		case key.Matches(msg, PresentKeys.Prev):
			return m, m.schedule(m.nav.Prev())

		case key.Matches(msg, PresentKeys.First):
			return m, m.schedule(m.nav.First())

		case key.Matches(msg, PresentKeys.Last):
			return m, m.schedule(m.nav.Last())

		case key.Matches(msg, PresentKeys.Copy):
			return m, m.copySlide()

		case key.Matches(msg, PresentKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

// schedule turns a successful navigation into the deferred commit phase.
// Absorbed navigations schedule nothing.
func (m *PresentModel) schedule(seq int, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return tea.Tick(domain.CommitDelay, func(time.Time) tea.Msg {
		return slideCommitMsg{seq: seq}
	})
}

// handleMouse maps presses and releases to button clicks and swipes. A
// horizontal drag past the swipe threshold navigates; a short release
// over a footer button clicks it.
func (m *PresentModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swiping = true
			m.swipeStartX = msg.X
		}
		return nil

	case tea.MouseActionRelease:
		if !m.swiping {
			return nil
		}
		m.swiping = false

		if seq, ok := m.nav.HandleSwipe(m.swipeStartX, msg.X); ok {
			return m.schedule(seq, ok)
		}

		switch {
		case m.prevZone.hit(msg.X, msg.Y) && m.nav.PrevEnabled():
			return m.schedule(m.nav.Prev())
		case m.nextZone.hit(msg.X, msg.Y) && m.nav.NextEnabled():
			return m.schedule(m.nav.Next())
		}
	}
	return nil
}

func (m *PresentModel) copySlide() tea.Cmd {
	slide := m.deck.Slide(m.nav.Current())
	if slide == nil {
		return nil
	}
	if err := clipboard.WriteAll(slide.Content); err != nil {
		m.message = err.Error()
		m.messageErr = true
		return nil
	}
	m.message = "slide copied"
	m.messageErr = false
	return nil
}

// windowTitle projects the current slide title onto the terminal window
// title. Slides without a title fall back to the deck title; when both
// are absent the projection is skipped.
func (m *PresentModel) windowTitle() tea.Cmd {
	title := m.nav.Title()
	if title == "" {
		title = m.deck.Meta.Title
	}
	if title == "" {
		return nil
	}
	return tea.SetWindowTitle(title)
}

// Reload swaps in a re-parsed deck, keeping the position clamped to the
// new length. Subscribed listeners carry over.
func (m *PresentModel) Reload(deck *domain.Deck) tea.Cmd {
	target := m.nav.Current()
	if target > deck.Len() {
		target = deck.Len()
	}
	if target < 1 {
		target = 1
	}

	m.deck = deck
	m.applyTheme()
	m.attach(domain.NewNavigator(deck))
	if seq, ok := m.nav.GoTo(target); ok {
		m.nav.Commit(seq)
	}
	m.message = "deck reloaded"
	m.messageErr = false
	return m.windowTitle()
}

// View renders the presentation view
func (m *PresentModel) View() string {
	if m.deck.Len() == 0 {
		return styles.App.Render(styles.MutedText.Render("No slides in deck."))
	}

	var b strings.Builder

	slide := m.deck.Slide(m.nav.Current())

	if slide.Title != "" {
		b.WriteString(styles.Title.Foreground(m.accent).Render(slide.Title))
		b.WriteString("\n")
	}

	body := styles.SlideBody.Render(slide.Content)
	if slide.Exiting {
		body = styles.SlideExiting.Render(slide.Content)
	}
	b.WriteString(body)
	b.WriteString("\n\n")

	if m.message != "" {
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(lipgloss.Height(b.String())))

	return styles.App.Render(b.String())
}

// renderFooter draws the navigation controls and records their clickable
// zones. contentRows is the rendered height of the content above, whose
// trailing newline is the line the footer lands on; the App padding
// offsets the zone to screen coordinates.
func (m *PresentModel) renderFooter(contentRows int) string {
	const padTop, padLeft = 1, 2
	row := padTop + contentRows - 1

	prevLabel := "‹ prev"
	nextLabel := "next ›"

	prev := styles.ButtonEnabled.Foreground(m.accent).Render(prevLabel)
	if !m.nav.PrevEnabled() {
		prev = styles.ButtonDisabled.Render(prevLabel)
	}
	next := styles.ButtonEnabled.Foreground(m.accent).Render(nextLabel)
	if !m.nav.NextEnabled() {
		next = styles.ButtonDisabled.Render(nextLabel)
	}

	counter := styles.Counter.Render(m.nav.CounterText())
	bar := m.bar.ViewAs(m.nav.Progress())

	gap := "   "
	m.prevZone = buttonZone{row: row, start: padLeft, end: padLeft + lipgloss.Width(prevLabel)}
	nextStart := padLeft + lipgloss.Width(prevLabel) + lipgloss.Width(gap) +
		lipgloss.Width(m.nav.CounterText()) + lipgloss.Width(gap)
	m.nextZone = buttonZone{row: row, start: nextStart, end: nextStart + lipgloss.Width(nextLabel)}

	parts := []string{prev, counter, next, bar}
	if meta := m.deckMetaLine(); meta != "" {
		parts = append(parts, meta)
	}
	return strings.Join(parts, gap)
}

func (m *PresentModel) deckMetaLine() string {
	var fields []string
	if m.deck.Meta.Author != "" {
		fields = append(fields, m.deck.Meta.Author)
	}
	if m.deck.Meta.Date != "" {
		fields = append(fields, m.deck.Meta.Date)
	}
	if len(fields) == 0 {
		return ""
	}
	return styles.FooterMeta.Render(strings.Join(fields, " · "))
}

// SetSize updates the view dimensions
func (m *PresentModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
