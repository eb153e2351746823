package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShiJbey/tilt-escape/internal/core"
	"github.com/ShiJbey/tilt-escape/internal/registry"
	"github.com/ShiJbey/tilt-escape/internal/storage"
)

// holdTicks is how many simulation ticks a tilt key stays active after a
// key event. Terminals deliver key repeats but no release events, so held
// keys are emulated by refreshing a per-action countdown on every press.
const holdTicks = 10

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	held       map[core.Action]int
	edge       core.InputFrame
	gameState  core.GameState
	startTime  time.Time
	quitting   bool
	showScores bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		keys:      NewKeyMapper(),
		config:    cfg,
		held:      make(map[core.Action]int),
		edge:      core.NewInputFrame(),
		startTime: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsTiltAction(action):
		m.held[action] = holdTicks
	case action == core.ActionBack:
		m.saveRun()
		m.showScores = true
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart:
		m.saveRun()
		m.startTime = time.Now()
		m.edge.Set(action)
	case action != core.ActionNone:
		m.edge.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick, combining held tilt keys with
// one-shot actions collected since the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.edge.Clone()
	for action, remaining := range m.held {
		if remaining > 0 {
			frame.Set(action)
			m.held[action] = remaining - 1
		}
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.edge.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the current run if anything happened in it.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score == 0 && m.gameState.Deaths == 0 {
		return
	}
	duration := int(time.Since(m.startTime).Seconds())
	//nolint:errcheck // Best-effort save, session ends regardless
	m.store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Deaths, duration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tiltescape", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a game session. Leaving the session with Back opens the
// best-runs screen; backing out of that starts a fresh session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		model := NewModel(game, store, cfg)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
		)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := finalModel.(Model)
		if !ok || !m.showScores {
			return nil
		}

		goBack, err := RunScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
