package fretboard

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordlens/pitch"
)

// Tuning lists open-string MIDI numbers, lowest string first.
type Tuning []int

var ErrBadTuning = errors.New("bad tuning")

var presets = map[string]Tuning{
	"guitar":  {40, 45, 50, 55, 59, 64},
	"drop-d":  {38, 45, 50, 55, 59, 64},
	"bass4":   {28, 33, 38, 43},
	"bass5":   {23, 28, 33, 38, 43},
	"ukulele": {67, 60, 64, 69},
}

const DefaultFrets = 24

// Position is one (string, fret) cell of the grid.
type Position struct {
	String int        `json:"string"`
	Fret   int        `json:"fret"`
	Note   pitch.Note `json:"note"`
}

func Preset(name string) (Tuning, bool) {
	t, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append(Tuning(nil), t...), true
}

func PresetNames() []string {
	res := make([]string, 0, len(presets))
	for k := range presets {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// ParseTuning accepts a preset name or comma separated MIDI numbers / note names.
func ParseTuning(s string) (Tuning, error) {
	if t, ok := Preset(strings.TrimSpace(s)); ok {
		return t, nil
	}

	var res Tuning
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if num, err := strconv.Atoi(part); err == nil {
			res = append(res, num)
			continue
		}
		n, err := pitch.ParseNoteName(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadTuning, err)
		}
		res = append(res, n.Midi)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %q has no strings", ErrBadTuning, s)
	}
	return res, nil
}

func NoteAt(t Tuning, stringIndex, fret int) pitch.Note {
	return pitch.NoteFromMidi(t[stringIndex] + fret)
}

// Generate builds the len(tuning) x (frets+1) grid. A negative fret count
// is a caller bug and panics; an empty tuning gives an empty grid.
func Generate(t Tuning, frets int) [][]Position {
	if frets < 0 {
		panic(fmt.Sprintf("fretboard: negative fret count %d", frets))
	}
	board := make([][]Position, len(t))
	for s := range t {
		row := make([]Position, frets+1)
		for f := 0; f <= frets; f++ {
			row[f] = Position{String: s, Fret: f, Note: NoteAt(t, s, f)}
		}
		board[s] = row
	}
	return board
}
