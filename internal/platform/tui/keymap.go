package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

var actionHelp = map[core.Action]string{
	core.ActionMoveUp:    "up",
	core.ActionMoveDown:  "down",
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionPanUp:     "pan up",
	core.ActionPanDown:   "pan down",
	core.ActionPanLeft:   "pan left",
	core.ActionPanRight:  "pan right",
	core.ActionRestart:   "restart",
	core.ActionQuit:      "quit",
}

// KeyMap holds one binding per action, built from the configuration so both
// frontends share the same keys.
type KeyMap struct {
	bindings map[core.Action]key.Binding
	move     key.Binding // Help-only summaries
	pan      key.Binding
}

// NewKeyMap builds bindings from cfg.
func NewKeyMap(cfg config.Config) KeyMap {
	keys := cfg.Bindings()
	km := KeyMap{bindings: make(map[core.Action]key.Binding, len(keys))}
	for _, a := range core.AllActions() {
		km.bindings[a] = key.NewBinding(
			key.WithKeys(keys[a]...),
			key.WithHelp(strings.Join(keys[a], "/"), actionHelp[a]),
		)
	}
	km.move = summary(keys, "move", core.ActionMoveUp, core.ActionMoveLeft, core.ActionMoveDown, core.ActionMoveRight)
	km.pan = summary(keys, "pan", core.ActionPanUp, core.ActionPanLeft, core.ActionPanDown, core.ActionPanRight)
	return km
}

// summary joins the first key of each action, e.g. "w/a/s/d".
func summary(keys map[core.Action][]string, desc string, actions ...core.Action) key.Binding {
	var all, first []string
	for _, a := range actions {
		all = append(all, keys[a]...)
		if len(keys[a]) > 0 {
			first = append(first, keys[a][0])
		}
	}
	return key.NewBinding(key.WithKeys(all...), key.WithHelp(strings.Join(first, "/"), desc))
}

// Action returns the action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range core.AllActions() {
		if key.Matches(msg, k.bindings[a]) {
			return a
		}
	}
	return core.ActionNone
}

// Binding returns the binding of a.
func (k KeyMap) Binding(a core.Action) key.Binding {
	return k.bindings[a]
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.pan, k.bindings[core.ActionQuit]}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	b := k.bindings
	return [][]key.Binding{
		{b[core.ActionMoveUp], b[core.ActionMoveDown], b[core.ActionMoveLeft], b[core.ActionMoveRight]},
		{b[core.ActionPanUp], b[core.ActionPanDown], b[core.ActionPanLeft], b[core.ActionPanRight]},
		{b[core.ActionRestart], b[core.ActionQuit]},
	}
}
