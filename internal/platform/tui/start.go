package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StartChoice is what the player picked on the start screen.
type StartChoice int

const (
	StartChoiceNone StartChoice = iota
	StartChoicePlay
	StartChoiceScores
	StartChoiceQuit
)

// StartKeyMap defines the key bindings for the start screen.
type StartKeyMap struct {
	Start  key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultStartKeyMap returns default key bindings.
func DefaultStartKeyMap() StartKeyMap {
	return StartKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "exit"),
		),
	}
}

var (
	startTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	startButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2)
	startInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	startHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StartModel is the screen shown before the first run and between runs.
type StartModel struct {
	width     int
	height    int
	collected int
	played    bool
	best      int
	keys      StartKeyMap
	help      help.Model
	choice    StartChoice
}

// NewStartModel creates the start screen. played is false before the first
// finished run, in which case the last run's count is not shown.
func NewStartModel(width, height, collected, best int, played bool) StartModel {
	return StartModel{
		width:     width,
		height:    height,
		collected: collected,
		played:    played,
		best:      best,
		keys:      DefaultStartKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the start screen.
func (m StartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the start screen.
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.choice = StartChoicePlay
		case key.Matches(msg, m.keys.Scores):
			m.choice = StartChoiceScores
		case key.Matches(msg, m.keys.Quit):
			m.choice = StartChoiceQuit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the start screen.
func (m StartModel) View() string {
	lines := []string{
		startTitleStyle.Render("S T A R   D R I F T"),
		"",
		startInfoStyle.Render("Dodge the debris. Collect what drifts by."),
		"",
		startButtonStyle.Render("START / NEW GAME"),
		"",
	}
	if m.played {
		lines = append(lines, fmt.Sprintf("Collected: %d points", m.collected))
	}
	lines = append(lines,
		fmt.Sprintf("Best: %d points", m.best),
		"",
		startHelpStyle.Render(m.help.View(m.keys)),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Choice returns what the player picked, StartChoiceNone while undecided.
func (m StartModel) Choice() StartChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
