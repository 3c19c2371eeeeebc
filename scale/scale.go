package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordlens/pitch"
)

type Type string

const (
	Major           Type = "Major"
	Minor           Type = "Minor"
	HarmonicMinor   Type = "Harmonic Minor"
	MelodicMinor    Type = "Melodic Minor"
	Ionian          Type = "Ionian"
	Dorian          Type = "Dorian"
	Phrygian        Type = "Phrygian"
	Lydian          Type = "Lydian"
	Mixolydian      Type = "Mixolydian"
	Aeolian         Type = "Aeolian"
	Locrian         Type = "Locrian"
	MajorPentatonic Type = "Major Pentatonic"
	MinorPentatonic Type = "Minor Pentatonic"
)

var ErrUnknownType = errors.New("unknown scale type")

// semitone offsets from the root, in scale order
var templates = map[Type][]int{
	Major:           {0, 2, 4, 5, 7, 9, 11},
	Minor:           {0, 2, 3, 5, 7, 8, 10},
	HarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	Ionian:          {0, 2, 4, 5, 7, 9, 11},
	Dorian:          {0, 2, 3, 5, 7, 9, 10},
	Phrygian:        {0, 1, 3, 5, 7, 8, 10},
	Lydian:          {0, 2, 4, 6, 7, 9, 11},
	Mixolydian:      {0, 2, 4, 5, 7, 9, 10},
	Aeolian:         {0, 2, 3, 5, 7, 8, 10},
	Locrian:         {0, 1, 3, 5, 6, 8, 10},
	MajorPentatonic: {0, 2, 4, 7, 9},
	MinorPentatonic: {0, 3, 5, 7, 10},
}

var (
	Diatonic   = []Type{Major, Minor, HarmonicMinor, MelodicMinor, Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}
	Pentatonic = []Type{MajorPentatonic, MinorPentatonic}
)

type Scale struct {
	Root  pitch.PitchClass   `json:"root"`
	Type  Type               `json:"type"`
	Notes []pitch.PitchClass `json:"notes"`
}

// Types lists every known scale type, diatonic family first.
func Types() []Type {
	res := make([]Type, 0, len(Diatonic)+len(Pentatonic))
	res = append(res, Diatonic...)
	return append(res, Pentatonic...)
}

func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Offsets returns a copy of the template for t. It panics on an unknown type.
func Offsets(t Type) []int {
	tmpl, ok := templates[t]
	if !ok {
		panic(fmt.Sprintf("scale: unknown scale type %q", string(t)))
	}
	return append([]int(nil), tmpl...)
}

// Generate builds the scale in template order, not pitch order.
// An unknown type is a caller bug and panics.
func Generate(root pitch.PitchClass, t Type) Scale {
	offsets := Offsets(t)
	notes := make([]pitch.PitchClass, len(offsets))
	for i, off := range offsets {
		notes[i] = pitch.Transpose(root, off)
	}
	return Scale{Root: root, Type: t, Notes: notes}
}

func (s Scale) Contains(pc pitch.PitchClass) bool {
	for _, n := range s.Notes {
		if n == pc {
			return true
		}
	}
	return false
}

func (s Scale) Name() string {
	return s.Root.String() + " " + string(s.Type)
}
