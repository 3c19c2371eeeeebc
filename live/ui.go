package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/render"
	"github.com/jsphweid/chordlens/scale"
	"github.com/sirupsen/logrus"
)

type snapshotMsg model.Snapshot

// Publish returns an onChange callback that hands snapshots to the UI
// without ever blocking the MIDI goroutine. When the UI falls behind the
// oldest queued snapshot is dropped, so the latest one always gets through.
func Publish(ch chan model.Snapshot) func(model.Snapshot) {
	return func(snap model.Snapshot) {
		for {
			select {
			case ch <- snap:
				return
			default:
			}
			select {
			case <-ch:
				logrus.Debug("ui busy, dropping stale snapshot")
			default:
			}
		}
	}
}

func waitForSnapshot(updates <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-updates)
	}
}

type Model struct {
	session  *Session
	updates  <-chan model.Snapshot
	snap     model.Snapshot
	keys     keyMap
	help     help.Model
	keyboard bool
	base     int
	tunings  []string
	tuning   int
	frets    int
}

// NewModel builds the live view. With keyboard set the computer keyboard
// plays notes starting at middle C.
func NewModel(s *Session, updates <-chan model.Snapshot, keyboard bool) Model {
	return Model{
		session:  s,
		updates:  updates,
		snap:     s.Snapshot(),
		keys:     defaultKeyMap,
		help:     help.New(),
		keyboard: keyboard,
		base:     60,
		tunings:  fretboard.PresetNames(),
		tuning:   indexOf(fretboard.PresetNames(), "guitar"),
		frets:    15,
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = model.Snapshot(msg)
		return m, waitForSnapshot(m.updates)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScale):
			m.session.SetScaleType(m.cycleScale(1))
		case key.Matches(msg, m.keys.PrevScale):
			m.session.SetScaleType(m.cycleScale(-1))
		case key.Matches(msg, m.keys.NextTuning):
			m.tuning = (m.tuning + 1) % len(m.tunings)
		case key.Matches(msg, m.keys.Clear):
			m.session.Clear()
		case m.keyboard && key.Matches(msg, m.keys.OctaveDown):
			if m.base-12 >= 0 {
				m.base -= 12
			}
		case m.keyboard && key.Matches(msg, m.keys.OctaveUp):
			if m.base+12+len(pianoKeys) <= 128 {
				m.base += 12
			}
		case m.keyboard:
			if off, ok := pianoOffset(msg.String()); ok {
				m.session.Toggle(m.base + off)
			}
		}
	}
	return m, nil
}

func (m Model) cycleScale(dir int) scale.Type {
	types := scale.Types()
	cur := m.session.ScaleType()
	i := 0
	for j, t := range types {
		if t == cur {
			i = j
			break
		}
	}
	return types[(i+dir+len(types))%len(types)]
}

func (m Model) View() string {
	h := render.HighlightFor(m.snap)
	tuning, _ := fretboard.Preset(m.tunings[m.tuning])
	board := fretboard.Generate(tuning, m.frets)

	var doc strings.Builder
	doc.WriteString(render.Snapshot(m.snap) + "\n\n")
	doc.WriteString(render.Piano(constants.PianoStart, constants.PianoEnd, h) + "\n\n")
	doc.WriteString(render.SubtleStyle.Render(m.tunings[m.tuning]) + "\n")
	doc.WriteString(render.Fretboard(board, h) + "\n\n")
	doc.WriteString(m.help.View(m.keys))
	return render.DocStyle.Render(doc.String())
}
