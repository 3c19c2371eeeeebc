package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PitchClass is a semitone offset from C, 0..11. Spelling is sharps only.
type PitchClass int

// Interval is the number of semitones up from a root, always 0..11.
type Interval = int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var ErrUnknownPitch = errors.New("unknown pitch")

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flats are accepted on input only
var aliases = map[string]PitchClass{
	"DB": CSharp, "EB": DSharp, "FB": E, "GB": FSharp, "AB": GSharp, "BB": ASharp, "CB": B,
	"E#": F, "B#": C,
}

// All returns the twelve pitch classes in index order.
func All() []PitchClass {
	res := make([]PitchClass, 12)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func (p PitchClass) Index() int {
	return mod12(int(p))
}

func (p PitchClass) String() string {
	return names[p.Index()]
}

// MarshalText lets pitch classes travel as "C#" rather than 1.
func (p PitchClass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PitchClass) UnmarshalText(text []byte) error {
	pc, err := ParsePitchClass(string(text))
	if err != nil {
		return err
	}
	*p = pc
	return nil
}

// ParsePitchClass accepts "C", "c#", "Bb" and the like.
func ParsePitchClass(s string) (PitchClass, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == upper {
			return PitchClass(i), nil
		}
	}
	if pc, ok := aliases[upper]; ok {
		return pc, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, s)
}

// IntervalBetween returns how many semitones note sits above root.
func IntervalBetween(root, note PitchClass) Interval {
	return mod12(note.Index() - root.Index())
}

func Transpose(p PitchClass, semitones int) PitchClass {
	return PitchClass(mod12(p.Index() + semitones))
}

// Note is only built through NoteFromMidi so its fields never disagree.
type Note struct {
	Class  PitchClass `json:"name"`
	Octave int        `json:"octave"`
	Midi   int        `json:"midi"`
}

// NoteFromMidi maps a MIDI number to a note, C4 = 60. Out of range
// numbers still produce consistent octaves.
func NoteFromMidi(midi int) Note {
	return Note{
		Class:  PitchClass(mod12(midi)),
		Octave: floorDiv(midi, 12) - 1,
		Midi:   midi,
	}
}

func (n Note) String() string {
	return n.Class.String() + strconv.Itoa(n.Octave)
}

// ParseNoteName reads names like "C4", "F#3", "Bb-1" or a bare MIDI number.
func ParseNoteName(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if num, err := strconv.Atoi(s); err == nil {
		return NoteFromMidi(num), nil
	}

	idx := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b' || s[1] == 'B') {
		idx = 2
	}
	if len(s) <= idx {
		return Note{}, fmt.Errorf("%w: missing octave in %q", ErrUnknownPitch, s)
	}

	pc, err := ParsePitchClass(s[:idx])
	if err != nil {
		return Note{}, err
	}
	octave, err := strconv.Atoi(s[idx:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave in %q", ErrUnknownPitch, s)
	}

	// Cb and B# cross the octave boundary
	raw := strings.ToUpper(s[:idx])
	switch raw {
	case "CB":
		octave--
	case "B#":
		octave++
	}
	return NoteFromMidi((octave+1)*12 + pc.Index()), nil
}

// Classes reduces notes to their distinct pitch classes, in order of first appearance.
func Classes(notes []Note) []PitchClass {
	seen := make(map[PitchClass]bool)
	var res []PitchClass
	for _, n := range notes {
		if seen[n.Class] {
			continue
		}
		seen[n.Class] = true
		res = append(res, n.Class)
	}
	return res
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
