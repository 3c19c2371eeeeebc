package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/muesli/reflow/ansi"
)

var (
	Primary = lipgloss.Color("#22d3ee")
	Red     = lipgloss.Color("#ef4444")
	Blue    = lipgloss.Color("#3b82f6")
	Green   = lipgloss.Color("#22c55e")
	Amber   = lipgloss.Color("#f59e0b")
	Purple  = lipgloss.Color("#a78bfa")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")
	subtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}

	TextStyle   = lipgloss.NewStyle()
	BoldStyle   = TextStyle.Copy().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(subtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	whiteKey = lipgloss.NewStyle().Background(White).Foreground(Black)
	blackKey = lipgloss.NewStyle().Background(Black).Foreground(White)

	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// markStyle mirrors the colour scheme of the fretboard: red roots, blue
// thirds, amber fifths, green sevenths, faded scale hints.
func markStyle(m fretboard.Mark) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(m.IsActive())
	switch m {
	case fretboard.ActiveRoot:
		return base.Background(Red).Foreground(White)
	case fretboard.ActiveThird:
		return base.Background(Blue).Foreground(White)
	case fretboard.ActiveFifth:
		return base.Background(Amber).Foreground(Black)
	case fretboard.ActiveSeventh:
		return base.Background(Green).Foreground(Black)
	case fretboard.Active:
		return base.Background(Primary).Foreground(Black)
	case fretboard.ScaleRoot:
		return base.Foreground(Primary)
	case fretboard.ScaleTone:
		return base.Foreground(Purple)
	default:
		return base.Foreground(subtle)
	}
}

// RenderError formats an error for the terminal.
func RenderError(err error) string {
	badge := lipgloss.NewStyle().Foreground(Red).Bold(true).Render("✗ error")
	return badge + " " + err.Error()
}

// Plain drops terminal escape sequences, for output that is not a terminal.
func Plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, c := range s {
		switch {
		case c == ansi.Marker:
			inSeq = true
		case inSeq:
			if ansi.IsTerminator(c) {
				inSeq = false
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
