package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/registry"
	"github.com/vovakirdan/stardrift/internal/storage"
)

// hudRows is the number of terminal rows used around the play field.
const hudRows = 2

// GameKeyMap lists the in-game bindings shown in the help line.
// Input itself goes through KeyMapper.
type GameKeyMap struct {
	Move    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("wasd/arrows", "thrust"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var gameHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game session inside the terminal: it feeds held keys to
// the simulation, keeps the HUD in sync with emitted snapshots and persists
// each finished run once.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	best       *storage.BestStore
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	hud        HUD
	gameState  core.GameState
	lastTick   time.Time
	gen        int
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been persisted
	finished   bool // Whether any run ended in this session
	collected  int  // Resources collected in the last finished run
}

// NewGameModel creates a new game model. store and best may be nil; gen tags
// the model's ticks and must differ from any earlier model's in the program.
func NewGameModel(game registry.Game, store *storage.Store, best *storage.BestStore, cfg core.RuntimeConfig, gen int) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Reset first so the HUD limits come from the loaded config.
	game.Reset(cfg)

	maxLives, progressMax := 3, 100
	if sd, ok := game.(*stardrift.Game); ok {
		r := sd.Rules()
		maxLives, progressMax = r.MaxMissed, r.ProgressMax
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		store:      store,
		best:       best,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(DefaultHoldWindow),
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		hud:        NewHUD(cfg.ScreenW, maxLives, progressMax),
		gen:        gen,
	}
	m.observe(game.Snapshot())
	return m
}

func fieldRows(screenH int) int {
	return max(screenH-hudRows, 5)
}

// Init starts the tick loop. The game was reset by NewGameModel.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is scaled to the screen, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.hud.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsDirection(action):
		m.holds.Press(action, time.Now())
	case action == core.ActionBack:
		m.backToMenu = true
	case action == core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.holds.Apply(&m.inputFrame, now)
	if m.inputFrame.Has(core.ActionRestart) {
		m.holds.Reset()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, snap := range result.Snapshots {
		m.observe(snap)
	}
	m.inputFrame.Clear()

	dt := m.config.FrameSeconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	m.hud.Update(dt)

	return m, tickCmd(m.config.TickRate, m.gen)
}

// observe reacts to a snapshot emitted by the simulation.
func (m *GameModel) observe(snap core.Snapshot) {
	m.hud.SetSnapshot(snap)

	if !snap.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true
	m.finished = true
	m.collected = snap.Collected()

	if m.best != nil {
		m.best.Record(m.collected)
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(storage.RunFromSnapshot(m.game.ID(), snap, m.gameState.Cause))
	}
}

// saveScreenshot saves the current field to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".stardrift", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the HUD, the field and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.hud.View())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(gameHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the start screen.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastRun returns the collected count of the last finished run and whether
// any run finished.
func (m GameModel) LastRun() (collected int, finished bool) {
	return m.collected, m.finished
}

// Run starts the Bubble Tea program at the start screen.
func Run(store *storage.Store, best *storage.BestStore, cfg core.RuntimeConfig) error {
	model := NewSessionModel(store, best, cfg, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
