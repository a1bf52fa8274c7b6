package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/api"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/storage"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/wallet"
)

const (
	// awardTimeout bounds the fire-and-forget wallet call.
	awardTimeout = 10 * time.Second

	// toastSecs is how long award notifications stay on screen.
	toastSecs = 3
)

// awardResultMsg reports the outcome of an asynchronous wallet award.
type awardResultMsg struct {
	points int
	err    error
}

// Model is the Bubble Tea model that runs a single game. It funnels
// key input into per-tick input frames, advances the simulation, and
// performs the terminal side effects (score history, best score,
// wallet award) exactly once per session. Used directly for local play
// and embedded in SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	wallet     wallet.Client
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	toast      string
	toastColor core.Color
	toastTicks int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether terminal side effects ran for current session
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, w wallet.Client, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		wallet:     w,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState catches up on the first tick (value receiver)
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

	case awardResultMsg:
		return m.handleAwardResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B/Esc leaves a finished or paused game. The session wrapper
	// swaps back to the menu; standalone play exits the program.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Terminal() || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// An in-progress session restarts at the new dimensions; finished
// sessions keep their final screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.Terminal() {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart is platform policy: only honored from a terminal state.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Terminal() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.toast = ""
		m.toastTicks = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if result.Award != nil && m.wallet != nil {
		cmds = append(cmds, m.awardCmd(*result.Award))
	}

	if m.gameState.Terminal() && !m.scoreSaved {
		m.recordFinish()
		m.scoreSaved = true
	}

	if m.toastTicks > 0 {
		m.toastTicks--
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// recordFinish persists the finished session: score history, best
// score and the games-played counter.
func (m *Model) recordFinish() {
	api.GamesPlayed.WithLabelValues(m.game.ID()).Inc()

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	//nolint:errcheck // Same: a failed best update never blocks play
	m.store.UpdateBest(m.game.ID(), m.gameState.Score)
}

// awardCmd fires the wallet award in the background. One attempt; the
// outcome comes back as an awardResultMsg and lands in the award log.
func (m Model) awardCmd(ev core.AwardEvent) tea.Cmd {
	w := m.wallet
	store := m.store
	gameID := m.game.ID()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), awardTimeout)
		defer cancel()

		err := w.Award(ctx, ev.Points, ev.Reason)

		if store != nil {
			errMsg := ""
			if err != nil {
				errMsg = err.Error()
			}
			//nolint:errcheck // The log is evidence, not a delivery guarantee
			store.LogAward(gameID, ev.Points, ev.Reason, err == nil, errMsg)
		}

		return awardResultMsg{points: ev.Points, err: err}
	}
}

// handleAwardResult surfaces the award outcome as a transient toast.
func (m Model) handleAwardResult(msg awardResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		api.AwardFailures.Inc()
		m.toast = "Award failed, points not credited"
		m.toastColor = core.ColorBrightRed
	} else {
		api.PointsAwarded.Add(float64(msg.points))
		m.toast = fmt.Sprintf("+%d Pocket Bounty points!", msg.points)
		m.toastColor = core.ColorBrightGreen
	}
	m.toastTicks = toastSecs * m.config.TickRate
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pocketbounty", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToMenu returns true if the user asked to leave the game but not
// the arcade.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.toastTicks > 0 && m.toast != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.toast, m.toastColor)
	}

	return RenderScreen(m.screen)
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, w wallet.Client, cfg core.RuntimeConfig) error {
	api.SessionsStarted.Inc()

	model := NewModel(game, store, w, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
