package render

import (
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/scale"
)

// HighlightFor turns a snapshot into what the instruments should light up.
// Intervals are coloured against the chord root when there is one, else
// against the lowest held note.
func HighlightFor(snap model.Snapshot) fretboard.Highlight {
	h := fretboard.Highlight{Active: snap.Notes}
	if snap.Chord != nil {
		root := snap.Chord.Root
		h.Root = &root
	} else if len(snap.Notes) > 0 {
		root := snap.Notes[0].Class
		h.Root = &root
	}
	if snap.Scale != nil {
		s := scale.Scale{Root: snap.Scale.Root, Type: scale.Type(snap.Scale.Type), Notes: snap.Scale.Notes}
		h.Scale = &s
	}
	return h
}
