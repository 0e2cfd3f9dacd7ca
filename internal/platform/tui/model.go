package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pizza-rush/internal/config"
	"github.com/vovakirdan/pizza-rush/internal/core"
	"github.com/vovakirdan/pizza-rush/internal/game"
	"github.com/vovakirdan/pizza-rush/internal/platform"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boostStyle = map[game.BoostStatus]lipgloss.Style{
		game.BoostStatusReady:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		game.BoostStatusActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		game.BoostStatusCooling: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

const (
	hudLines = 2  // Status line and help line below the playfield
	barWidth = 20 // Countdown bar width in cells
)

// Model is the Bubble Tea model running a Pizza Rush session.
type Model struct {
	game     *game.Game
	clock    core.Clock
	logger   *log.Logger
	screen   *core.Screen
	view     Viewport
	keys     KeyMap
	help     help.Model
	bar      progress.Model
	latch    *HoldLatch
	pending  core.InputFrame // Single-shot actions since the last tick
	tickRate int
	snap     game.Snapshot
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(g *game.Game, cfg config.PizzaConfig, rt core.RuntimeConfig, clock core.Clock, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := NewViewport(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	w, h := view.ScreenSize()

	bar := progress.New(
		progress.WithSolidFill("208"),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	return Model{
		game:     g,
		clock:    clock,
		logger:   logger,
		screen:   core.NewScreen(w, h),
		view:     view,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		bar:      bar,
		latch:    NewHoldLatch(core.Millis(cfg.Terminal.HoldMs)),
		pending:  core.NewInputFrame(),
		tickRate: rt.TickRate,
		snap:     g.Snapshot(clock.Now()),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.advance()
	}

	return m, nil
}

// handleKey records a key press for the next tick. Quit is stepped at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Action(msg)
	switch {
	case a == core.ActionNone:
		return m, nil
	case a.IsHeld():
		m.latch.Press(a, m.clock.Now())
	default:
		m.pending.Set(a)
	}

	if a == core.ActionQuit {
		return m.advance()
	}
	return m, nil
}

// advance runs one simulation tick with the held and pending input.
func (m Model) advance() (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	in := m.latch.Frame(now)
	for a := range m.pending.Actions {
		in.Set(a)
	}
	m.pending.Clear()

	result := m.game.Step(in, now)
	platform.LogEvents(m.logger, result)
	m.snap = m.game.Snapshot(now)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.Has(core.EventGameOver) {
		m.latch.Release()
	}
	return m, tickCmd(m.tickRate)
}

// Snapshot returns the snapshot of the latest tick.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// View renders the playfield and the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.view.ScreenSize()
	if m.width > 0 && m.height > 0 && (m.width < w || m.height < h+hudLines) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nPress q to quit.",
			w, h+hudLines, m.width, m.height)
	}

	DrawSnapshot(m.screen, m.snap, m.view)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) hud() string {
	status := m.snap.Boost
	return fmt.Sprintf("%s  %s %s  %s %s  %s",
		titleStyle.Render(m.game.Title()),
		dimStyle.Render("Score"),
		scoreStyle.Render(fmt.Sprint(m.snap.Score)),
		dimStyle.Render("Turbo"),
		boostStyle[status].Render(string(status)),
		m.bar.ViewAs(m.snap.TimeRemaining),
	)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg config.PizzaConfig, rt core.RuntimeConfig, clock core.Clock, logger *log.Logger) error {
	model := NewModel(g, cfg, rt, clock, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
