package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/registry"
	"github.com/vovakirdan/stardrift/internal/storage"
)

type sessionScreen int

const (
	screenStart sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: start screen -> game -> start screen,
// with the run history reachable from the start screen. It is the top-level
// model for both local and SSH sessions.
type SessionModel struct {
	store     *storage.Store
	best      *storage.BestStore
	config    core.RuntimeConfig
	username  string
	screen    sessionScreen
	start     StartModel
	game      *GameModel
	scores    *ScoreboardModel
	gen       int
	collected int
	played    bool
	quitting  bool
}

// NewSessionModel creates a new session model. store and best may be nil.
func NewSessionModel(store *storage.Store, best *storage.BestStore, cfg core.RuntimeConfig, username string) SessionModel {
	m := SessionModel{
		store:    store,
		best:     best,
		config:   cfg,
		username: username,
	}
	m.start = m.newStart()
	return m
}

func (m SessionModel) newStart() StartModel {
	best := 0
	if m.best != nil {
		best = m.best.Best()
	}
	return NewStartModel(m.config.ScreenW, m.config.ScreenH, m.collected, best, m.played)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.start.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateStart(msg)
	}
}

// updateStart handles updates on the start screen.
func (m SessionModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	newStart, cmd := m.start.Update(msg)
	if start, ok := newStart.(StartModel); ok {
		m.start = start
	}

	switch m.start.Choice() {
	case StartChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case StartChoicePlay:
		game, err := registry.Create(stardrift.ID)
		if err != nil {
			// Shouldn't happen, the game registers itself on import
			m.start = m.newStart()
			return m, nil
		}
		m.gen++
		gm := NewGameModel(game, m.store, m.best, m.config, m.gen)
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()

	case StartChoiceScores:
		sb := NewScoreboardModel(m.store, stardrift.ID, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if collected, finished := m.game.LastRun(); finished {
			m.collected = collected
			m.played = true
		}
		m.game = nil
		m.screen = screenStart
		m.start = m.newStart()
		return m, m.start.Init()
	}

	return m, cmd
}

// updateScores handles updates on the run history screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.screen = screenStart
		m.start = m.newStart()
		return m, m.start.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.start.View()
	}
}

// Username returns the SSH user of the session, empty for local play.
func (m SessionModel) Username() string {
	return m.username
}
