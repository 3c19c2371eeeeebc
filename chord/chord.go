package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordlens/pitch"
)

type Quality string

const (
	Major      Quality = "Major"
	Minor      Quality = "Minor"
	Dim        Quality = "Dim"
	Aug        Quality = "Aug"
	Sus2       Quality = "Sus2"
	Sus4       Quality = "Sus4"
	Maj7       Quality = "Maj7"
	Min7       Quality = "min7"
	Dom7       Quality = "Dom7"
	HalfDim7   Quality = "m7b5"
	Dim7       Quality = "Dim7"
	Add9       Quality = "add9"
	MinAdd9    Quality = "m(add9)"
	Maj9       Quality = "Maj9"
	Min9       Quality = "min9"
	Dom9       Quality = "9"
	Dom7Flat9  Quality = "7b9"
	Dom7Sharp9 Quality = "7#9"
	Sixth      Quality = "6"
	MinSixth   Quality = "m6"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type Shape struct {
	Quality   Quality `json:"quality"`
	Intervals []int   `json:"intervals"`
}

// Table order matters: it is the tie-break order for Detect.
var shapes = []Shape{
	{Major, []int{0, 4, 7}},
	{Minor, []int{0, 3, 7}},
	{Dim, []int{0, 3, 6}},
	{Aug, []int{0, 4, 8}},
	{Sus2, []int{0, 2, 7}},
	{Sus4, []int{0, 5, 7}},

	{Maj7, []int{0, 4, 7, 11}},
	{Min7, []int{0, 3, 7, 10}},
	{Dom7, []int{0, 4, 7, 10}},
	{HalfDim7, []int{0, 3, 6, 10}},
	{Dim7, []int{0, 3, 6, 9}},

	{Add9, []int{0, 4, 7, 2}},
	{MinAdd9, []int{0, 3, 7, 2}},
	{Maj9, []int{0, 4, 7, 11, 2}},
	{Min9, []int{0, 3, 7, 10, 2}},
	{Dom9, []int{0, 4, 7, 10, 2}},
	{Dom7Flat9, []int{0, 4, 7, 10, 1}},
	{Dom7Sharp9, []int{0, 4, 7, 10, 3}},

	{Sixth, []int{0, 4, 7, 9}},
	{MinSixth, []int{0, 3, 7, 9}},
}

type Result struct {
	Root    pitch.PitchClass `json:"root"`
	Quality Quality          `json:"quality"`
	Name    string           `json:"name"`
}

// Shapes returns a copy of the shape table in detection order.
func Shapes() []Shape {
	res := make([]Shape, len(shapes))
	for i, s := range shapes {
		res[i] = Shape{Quality: s.Quality, Intervals: append([]int(nil), s.Intervals...)}
	}
	return res
}

func ParseQuality(s string) (Quality, error) {
	for _, shape := range shapes {
		if string(shape.Quality) == strings.TrimSpace(s) {
			return shape.Quality, nil
		}
	}
	for _, shape := range shapes {
		if strings.EqualFold(string(shape.Quality), strings.TrimSpace(s)) {
			return shape.Quality, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

func lookup(q Quality) (Shape, bool) {
	for _, s := range shapes {
		if s.Quality == q {
			return s, true
		}
	}
	return Shape{}, false
}

func NewResult(root pitch.PitchClass, q Quality) Result {
	return Result{Root: root, Quality: q, Name: root.String() + " " + string(q)}
}

// Detect finds the most specific shape matched by the notes. Every present
// pitch class is tried as root, lowest sounding note first, and the first
// match with the most required intervals wins. Fewer than three distinct
// notes never form a chord.
func Detect(notes []pitch.Note) (Result, bool) {
	sorted := distinct(notes)
	if len(sorted) < 3 {
		return Result{}, false
	}

	var best Result
	var bestSize int
	classes := pitch.Classes(sorted)
	for _, root := range classes {
		var present [12]bool
		for _, pc := range classes {
			present[pitch.IntervalBetween(root, pc)] = true
		}

		for _, shape := range shapes {
			if len(shape.Intervals) <= bestSize || !hasAll(present, shape.Intervals) {
				continue
			}
			bestSize = len(shape.Intervals)
			best = NewResult(root, shape.Quality)
		}
	}

	return best, bestSize > 0
}

func hasAll(present [12]bool, intervals []int) bool {
	for _, iv := range intervals {
		if !present[iv] {
			return false
		}
	}
	return true
}

// distinct dedupes by MIDI number and sorts ascending.
func distinct(notes []pitch.Note) []pitch.Note {
	seen := make(map[int]bool, len(notes))
	res := make([]pitch.Note, 0, len(notes))
	for _, n := range notes {
		if seen[n.Midi] {
			continue
		}
		seen[n.Midi] = true
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Midi < res[j].Midi
	})
	return res
}

// GetChordNotes spells a chord at the given octave by stacking the shape's
// intervals on the root, in table order. Unknown qualities give nil.
func GetChordNotes(root pitch.PitchClass, q Quality, octave int) []pitch.Note {
	shape, ok := lookup(q)
	if !ok {
		return nil
	}
	base := (octave+1)*12 + root.Index()
	res := make([]pitch.Note, len(shape.Intervals))
	for i, iv := range shape.Intervals {
		res[i] = pitch.NoteFromMidi(base + iv)
	}
	return res
}

// CreateChordKey joins the sorted MIDI numbers with dashes, e.g. "60-64-67".
func CreateChordKey(notes []int) string {
	sorted := append([]int(nil), notes...)
	sort.Ints(sorted)
	var sb strings.Builder
	for i, note := range sorted {
		sb.WriteString(fmt.Sprintf("%v", note))
		if i < len(sorted)-1 {
			sb.WriteString("-")
		}
	}
	return sb.String()
}
