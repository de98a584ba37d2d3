package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/lifecycle"
	"github.com/vovakirdan/arcade-kit/internal/registry"
	"github.com/vovakirdan/arcade-kit/internal/storage"
)

// maxFrameMs caps the per-frame delta fed into the simulation. A laptop
// waking from sleep should not teleport the ball across the screen.
const maxFrameMs = 250.0

// GameModel is the Bubble Tea model for running one arcade game.
// It owns the session lifecycle machine and enforces the per-frame
// choreography: the game is stepped only while the machine is playing,
// input "just" flags are cleared at the end of every frame, and the HUD is
// drawn outside the game's shake transform so it never jitters.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	machine    *lifecycle.Machine
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
// events receives the lifecycle protocol (ready, start, pause, resume,
// game_over, score_update); nil discards it.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, events func(lifecycle.Event)) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	highScore := 0
	if store != nil {
		// Best-effort: a missing database just means no best yet
		highScore, _ = store.HighScore(game.ID())
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		machine:    lifecycle.New(highScore, events),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game behind the idle overlay and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.machine.State() {
	case lifecycle.Idle:
		if key == " " || key == "enter" {
			m.startRun()
		} else if key == "b" || key == "esc" {
			m.backToMenu = true
		}
		return m, nil

	case lifecycle.Paused:
		switch key {
		case "p", "esc", " ":
			m.machine.Resume()
		case "b":
			m.backToMenu = true
		}
		return m, nil

	case lifecycle.GameOver:
		switch key {
		case "r", " ", "enter":
			m.startRun()
		case "b", "esc":
			m.backToMenu = true
		}
		return m, nil
	}

	// Playing
	if key == "p" || key == "esc" {
		m.machine.Pause()
		return m, nil
	}
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleMouse feeds pointer state into the input frame.
// A left press also acts as the primary button so mouse-only play works.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := &m.inputFrame.Pointer
	p.X = msg.X
	p.Y = msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.Down = true
			p.JustPressed = true
			if m.machine.Playing() {
				m.inputFrame.Set(core.ActionJump)
				m.inputFrame.Set(core.ActionFire)
			} else if m.machine.State() == lifecycle.Idle || m.machine.State() == lifecycle.GameOver {
				m.startRun()
			}
		}
	case tea.MouseActionRelease:
		p.Down = false
		p.JustReleased = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the world at the new dimensions
	if m.machine.Playing() || m.machine.State() == lifecycle.Paused {
		m.game.Reset(m.config)
		m.machine.Resume()
	}

	return m, nil
}

// startRun resets the world with a fresh seed and starts a new run.
func (m *GameModel) startRun() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.machine.Start()
}

// handleTick runs one simulation frame.
// The delta comes from wall-clock time between ticks, so movement stays
// consistent when the scheduler drifts or frames drop.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	elapsedMs := 1000.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick).Microseconds()) / 1000
	}
	m.lastTick = now

	if elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > maxFrameMs {
		elapsedMs = maxFrameMs
	}

	// The lifecycle gate: a paused or finished game is not stepped, so its
	// particles and shake stay frozen exactly where they were.
	if m.machine.Playing() {
		result := m.game.Step(m.inputFrame, elapsedMs)
		m.gameState = result.State
		m.machine.SetScore(m.gameState.Score)

		if m.gameState.GameOver {
			m.machine.End(lifecycle.Result{
				Score: m.gameState.Score,
				Level: m.gameState.Level,
				Meta:  map[string]string{"game": m.game.ID()},
			})
			m.saveScore()
		}
	}

	// Action and "just" flags are valid for exactly one frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished run once per game over.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
	m.scoreSaved = true
}

// View renders the current frame: world first (inside the game's own shake
// transform), then the HUD and lifecycle overlays on top, unshaken.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.drawHUD()

	return RenderScreen(m.screen)
}

// drawHUD draws the score line and any lifecycle overlay.
func (m GameModel) drawHUD() {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d ", m.game.Title(), m.machine.Score(), m.machine.HighScore())
	m.screen.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if lv, ok := m.game.(interface{ Lives() int }); ok && m.machine.State() != lifecycle.Idle {
		m.screen.DrawTextColored(1, 1, fmt.Sprintf(" Lives: %d ", lv.Lives()), core.ColorBrightWhite)
	}

	switch m.machine.State() {
	case lifecycle.Idle:
		m.drawOverlay(m.game.Title(), "Press SPACE to start  |  B: menu  |  Q: quit")
	case lifecycle.Paused:
		m.drawOverlay("PAUSED", "P: resume  |  B: menu")
	case lifecycle.GameOver:
		sub := fmt.Sprintf("Score: %d  |  R: play again  |  B: menu", m.machine.Score())
		if m.machine.Score() >= m.machine.HighScore() && m.machine.Score() > 0 {
			sub = fmt.Sprintf("NEW BEST: %d  |  R: play again  |  B: menu", m.machine.Score())
		}
		m.drawOverlay("GAME OVER", sub)
	}
}

// drawOverlay draws a centered message box over the world.
func (m GameModel) drawOverlay(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	m.screen.DrawRect(boxX, boxY, boxW, boxH, ' ')
	m.screen.DrawBox(boxX, boxY, boxW, boxH)

	m.screen.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	m.screen.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, events func(lifecycle.Event)) error {
	model := NewGameModel(game, store, cfg, events)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
