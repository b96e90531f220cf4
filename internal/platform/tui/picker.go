package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// PickerKeyMap defines the key bindings for the map picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Picker lists the registered maps and starts the chosen one.
type Picker struct {
	maps     []registry.MapInfo
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	cfg      config.Config
	logger   *log.Logger
	lastSize *tea.WindowSizeMsg
	quitting bool
	err      error
}

// NewPicker creates a picker over the registry.
func NewPicker(cfg config.Config, logger *log.Logger) Picker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	maps := registry.List()

	rows := make([]table.Row, len(maps))
	for i, info := range maps {
		rows[i] = table.Row{info.ID, info.Title, fmt.Sprintf("%dx%d", info.Width, info.Height)}
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 12},
			{Title: "Title", Width: 24},
			{Title: "Size", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Picker{
		maps:   maps,
		table:  t,
		help:   help.New(),
		keys:   DefaultPickerKeyMap(),
		cfg:    cfg,
		logger: logger,
	}
}

// Init initializes the picker.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.quitting = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Select):
			return p.start()
		}

	case tea.WindowSizeMsg:
		p.lastSize = &msg
		p.help.Width = msg.Width
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// Selected returns the ID under the cursor, or "" when there are no maps.
func (p Picker) Selected() string {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.maps) {
		return ""
	}
	return p.maps[i].ID
}

// start builds the selected map and hands over to its game model.
func (p Picker) start() (tea.Model, tea.Cmd) {
	id := p.Selected()
	if id == "" {
		return p, nil
	}
	b, err := registry.Create(id, world.WithLogger(p.logger))
	if err != nil {
		p.err = err
		return p, tea.Quit
	}
	m, err := NewModel(b, p.cfg, p.logger)
	if err != nil {
		p.err = err
		return p, tea.Quit
	}
	p.logger.Info("map selected", "map", id)

	var next tea.Model = m
	var sized tea.Cmd
	if p.lastSize != nil {
		next, sized = m.Update(*p.lastSize)
	}
	return next, tea.Batch(next.Init(), sized)
}

// Err returns the error that ended the picker, if any.
func (p Picker) Err() error {
	return p.err
}

// View renders the map list.
func (p Picker) View() string {
	if p.quitting {
		return ""
	}
	return titleStyle.Render("Choose a map") + "\n\n" + p.table.View() + "\n" + p.help.View(p.keys)
}

// RunPicker shows the map picker and plays the chosen map.
func RunPicker(cfg config.Config, logger *log.Logger) error {
	return run(NewPicker(cfg, logger))
}
