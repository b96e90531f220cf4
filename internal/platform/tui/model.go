package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/game"
	"github.com/vovakirdan/tui-tiles/internal/levels"
)

// reservedRows is the status line plus the help line under the map.
const reservedRows = 2

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// windowSize is the camera's view of the terminal, updated from
// tea.WindowSizeMsg.
type windowSize struct {
	cols, rows int
}

func (w *windowSize) Size() (int, int, error) {
	return w.cols, w.rows, nil
}

// Model is the Bubble Tea model for playing one map.
type Model struct {
	game     *game.Context
	screen   *core.Screen
	size     *windowSize
	keys     KeyMap
	help     help.Model
	interval time.Duration
	pending  core.Action // Timed mode: first key since the last tick
	logger   *log.Logger
	quitting bool
	err      error
}

// NewModel creates a model over a built map and draws it once.
func NewModel(b *levels.Built, cfg config.Config, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc := cfg.Runtime()
	size := &windowSize{cols: rc.ScreenW, rows: max(rc.ScreenH-reservedRows, 0)}
	screen := core.NewScreen(size.cols/2, size.rows)

	g, err := game.NewContext(b, screen, size, logger)
	if err != nil {
		return Model{}, err
	}
	if err := g.Camera.Render(true); err != nil {
		return Model{}, fmt.Errorf("tui: render: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     g,
		screen:   screen,
		size:     size,
		keys:     NewKeyMap(cfg),
		help:     h,
		interval: rc.TickInterval,
		logger:   logger,
	}, nil
}

// Init starts the tick loop in timed mode.
func (m Model) Init() tea.Cmd {
	if m.interval > 0 {
		return tickCmd(m.interval)
	}
	return nil
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

// handleKey applies the key at once, or queues it until the next tick in
// timed mode. Every applied key gets exactly one tick and one render.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Action(msg)
	if a == core.ActionQuit {
		m.logger.Info("quit", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "?" && a == core.ActionNone {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.interval > 0 {
		if m.pending == core.ActionNone {
			m.pending = a
		}
		return m, nil
	}
	return m.advance(a)
}

// handleTick consumes at most one queued key, then ticks once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	a := m.pending
	m.pending = core.ActionNone
	next, cmd := m.advance(a)
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.interval)
}

func (m Model) advance(a core.Action) (Model, tea.Cmd) {
	if _, err := m.game.Apply(a); err != nil {
		return m.fail(err)
	}
	if err := m.game.Step(false); err != nil {
		return m.fail(err)
	}
	return m, nil
}

// handleResize follows the window. The view is redrawn when the frustum
// changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.size.cols = msg.Width
	m.size.rows = max(msg.Height-reservedRows, 0)
	m.screen.Resize(m.size.cols/2, m.size.rows)
	m.help.Width = msg.Width

	changed, err := m.game.Refresh()
	if err != nil {
		return m.fail(err)
	}
	if changed {
		if err := m.game.Camera.Render(true); err != nil {
			return m.fail(err)
		}
	}
	return m, nil
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	m.logger.Error("game stopped", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Game returns the running game.
func (m Model) Game() *game.Context {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(titleStyle.Render(m.game.Title))
	sb.WriteString(statusStyle.Render("  " + inventory(m.game.Collected())))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// inventory summarizes items as "coin x2, key x1".
func inventory(items []string) string {
	if len(items) == 0 {
		return "no items"
	}
	counts := make(map[string]int)
	for _, it := range items {
		counts[it]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s x%d", name, counts[name])
	}
	return strings.Join(parts, ", ")
}

// Run plays b in the alternate screen until the quit key.
func Run(b *levels.Built, cfg config.Config, logger *log.Logger) error {
	model, err := NewModel(b, cfg, logger)
	if err != nil {
		return err
	}
	return run(model)
}

func run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(interface{ Err() error }); ok {
		return fm.Err()
	}
	return nil
}
