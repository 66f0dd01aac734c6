package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type keyMap struct {
	Hit       key.Binding
	Stand     key.Binding
	Split     key.Binding
	Double    key.Binding
	Surrender key.Binding
	Next      key.Binding
	Chart     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hit:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Split:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "split")),
		Double:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "double")),
		Surrender: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "surrender")),
		Next:      key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n/space", "next hand")),
		Chart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Split, k.Double, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hit, k.Stand, k.Split, k.Double, k.Surrender},
		{k.Next, k.Chart, k.Help, k.Quit},
	}
}

// actionFor maps a pressed action key to its action
func (k keyMap) actionFor(pressed string) (strategy.Action, bool) {
	bindings := map[strategy.Action]key.Binding{
		strategy.Hit:       k.Hit,
		strategy.Stand:     k.Stand,
		strategy.Split:     k.Split,
		strategy.Double:    k.Double,
		strategy.Surrender: k.Surrender,
	}
	for _, a := range strategy.Actions {
		for _, bound := range bindings[a].Keys() {
			if bound == pressed {
				return a, true
			}
		}
	}
	return 0, false
}
