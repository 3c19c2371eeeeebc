package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	NextScale  key.Binding
	PrevScale  key.Binding
	NextTuning key.Binding
	OctaveDown key.Binding
	OctaveUp   key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScale, k.NextTuning, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScale, k.PrevScale, k.NextTuning},
		{k.OctaveDown, k.OctaveUp, k.Clear, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	NextScale: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "next scale"),
	),
	PrevScale: key.NewBinding(
		key.WithKeys(tea.KeyShiftTab.String()),
		key.WithHelp("shift+tab", "previous scale"),
	),
	NextTuning: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next instrument"),
	),
	OctaveDown: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "octave down"),
	),
	OctaveUp: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "octave up"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "release all"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// qwerty keys laid out like a piano: home row for naturals, the row above
// for accidentals, starting on C.
var pianoKeys = []string{"a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k", "o", "l", "p", ";", "'"}

func pianoOffset(k string) (int, bool) {
	for i, pk := range pianoKeys {
		if pk == k {
			return i, true
		}
	}
	return 0, false
}
