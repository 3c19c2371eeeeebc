package fretboard

import (
	"github.com/jsphweid/chordlens/pitch"
	"github.com/jsphweid/chordlens/scale"
)

type Mark int

const (
	None Mark = iota
	ScaleTone
	ScaleRoot
	Active
	ActiveSeventh
	ActiveFifth
	ActiveThird
	ActiveRoot
)

func (m Mark) IsActive() bool {
	return m >= Active
}

// Label is the short text drawn on a marked cell.
func (m Mark) Label(n pitch.Note) string {
	switch m {
	case None:
		return ""
	case ActiveRoot:
		return "R"
	default:
		return n.Class.String()
	}
}

// Highlight carries what should be drawn on top of a board or keyboard.
// Root is the reference for interval colouring of active notes and may be nil.
type Highlight struct {
	Active []pitch.Note
	Root   *pitch.PitchClass
	Scale  *scale.Scale
}

// Classify says how a note should be drawn. Active notes match by exact MIDI
// number; scale hints match by pitch class.
func (h Highlight) Classify(n pitch.Note) Mark {
	for _, a := range h.Active {
		if a.Midi != n.Midi {
			continue
		}
		if h.Root == nil {
			return Active
		}
		switch pitch.IntervalBetween(*h.Root, n.Class) {
		case 0:
			return ActiveRoot
		case 3, 4:
			return ActiveThird
		case 7:
			return ActiveFifth
		case 8, 10, 11:
			return ActiveSeventh
		default:
			return Active
		}
	}

	if h.Scale != nil && h.Scale.Contains(n.Class) {
		if n.Class == h.Scale.Root {
			return ScaleRoot
		}
		return ScaleTone
	}
	return None
}

// Marks classifies every cell of a board.
func (h Highlight) Marks(board [][]Position) [][]Mark {
	res := make([][]Mark, len(board))
	for s, row := range board {
		res[s] = make([]Mark, len(row))
		for f, pos := range row {
			res[s][f] = h.Classify(pos.Note)
		}
	}
	return res
}
