package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/pitch"
)

const cellWidth = 4

var inlays = map[int]string{3: "3", 5: "5", 7: "7", 9: "9", 12: "12", 15: "15", 17: "17", 19: "19", 21: "21", 24: "24"}

func isBlack(pc pitch.PitchClass) bool {
	return strings.HasSuffix(pc.String(), "#")
}

func cell(text string, style lipgloss.Style) string {
	return style.Copy().Width(cellWidth).Align(lipgloss.Center).Render(text)
}

// Piano draws the keys from start to end inclusive as a single strip,
// marking whatever h highlights.
func Piano(start, end int, h fretboard.Highlight) string {
	var top, bottom []string
	for m := start; m <= end; m++ {
		n := pitch.NoteFromMidi(m)
		mark := h.Classify(n)

		style := whiteKey
		if isBlack(n.Class) {
			style = blackKey
		}
		label := ""
		if mark != fretboard.None {
			style = markStyle(mark)
			label = mark.Label(n)
		}
		top = append(top, cell(label, style))

		octave := ""
		if n.Class == pitch.C {
			octave = n.String()
		}
		bottom = append(bottom, cell(octave, SubtleStyle))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, top...),
		lipgloss.JoinHorizontal(lipgloss.Top, bottom...),
	)
}

// Fretboard draws the highest string on top, like looking down at the neck.
func Fretboard(board [][]fretboard.Position, h fretboard.Highlight) string {
	if len(board) == 0 {
		return SubtleStyle.Render("(no instrument configured)")
	}

	marks := h.Marks(board)
	rows := make([]string, 0, len(board)+1)
	for s := len(board) - 1; s >= 0; s-- {
		var cells []string
		for f, pos := range board[s] {
			mark := marks[s][f]
			text := "-"
			if mark != fretboard.None {
				text = mark.Label(pos.Note)
			}
			cells = append(cells, cell(text, markStyle(mark)))
			if pos.Fret == 0 {
				cells = append(cells, "‖")
			} else {
				cells = append(cells, "|")
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var numbers []string
	for _, pos := range board[0] {
		numbers = append(numbers, cell(inlays[pos.Fret], SubtleStyle), " ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, numbers...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Timeline lists chord events one per line.
func Timeline(events []model.ChordEvent) string {
	if len(events) == 0 {
		return SubtleStyle.Render("no chords detected")
	}
	var lines []string
	for _, e := range events {
		span := fmt.Sprintf("%7.2fs - %7.2fs %6.2fs", e.StartTime, e.EndTime, e.Duration())
		lines = append(lines, SubtleStyle.Render(span)+"  "+BoldStyle.Render(e.ChordName))
	}
	return strings.Join(lines, "\n")
}

// Snapshot is the header shown above the instruments.
func Snapshot(snap model.Snapshot) string {
	var b strings.Builder
	name := "Play Chords..."
	if snap.Chord != nil {
		name = snap.Chord.Name
	}
	b.WriteString(TitleStyle.Render(name))

	if snap.ParentKey != nil {
		b.WriteString("  key of " + BoldStyle.Render(snap.ParentKey.String()))
	}
	if snap.Scale != nil {
		names := make([]string, len(snap.Scale.Notes))
		for i, pc := range snap.Scale.Notes {
			names[i] = pc.String()
		}
		b.WriteString(fmt.Sprintf("\nscale %s %s: %s", snap.Scale.Root, snap.Scale.Type, strings.Join(names, " ")))
		if len(snap.Scale.Compatible) > 0 {
			b.WriteString("\n" + SubtleStyle.Render("also fits: "+strings.Join(snap.Scale.Compatible, ", ")))
		}
	}
	if len(snap.Notes) > 0 {
		held := make([]string, len(snap.Notes))
		for i, n := range snap.Notes {
			held[i] = n.String()
		}
		b.WriteString("\nholding " + strings.Join(held, " "))
	}
	return b.String()
}
