package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteFromMidi(t *testing.T) {
	cases := []struct {
		midi   int
		class  PitchClass
		octave int
	}{
		{60, C, 4},
		{40, E, 2},
		{0, C, -1},
		{127, G, 9},
		{-1, B, -2},
		{-12, C, -2},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("midi %d", c.midi), func(t *testing.T) {
			n := NoteFromMidi(c.midi)
			assert := assert.New(t)
			assert.Equal(c.class, n.Class)
			assert.Equal(c.octave, n.Octave)
			assert.Equal(c.midi, n.Midi)
			assert.Equal(n.Midi, (n.Octave+1)*12+n.Class.Index())
		})
	}
}

func TestTransposeInverse(t *testing.T) {
	for _, pc := range All() {
		for n := -30; n <= 30; n++ {
			assert.Equal(t, pc, Transpose(Transpose(pc, n), -n))
		}
	}
}

func TestTransposeNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(B, Transpose(C, -1))
	assert.Equal(A, Transpose(C, -15))
	assert.Equal(C, Transpose(B, 1))
}

func TestIntervalBetween(t *testing.T) {
	for _, a := range All() {
		assert.Equal(t, 0, IntervalBetween(a, a))
		for _, b := range All() {
			iv := IntervalBetween(a, b)
			assert.GreaterOrEqual(t, iv, 0)
			assert.Less(t, iv, 12)
			assert.Equal(t, b, Transpose(a, iv))
		}
	}
	assert.Equal(t, 4, IntervalBetween(C, E))
	assert.Equal(t, 8, IntervalBetween(E, C))
}

func TestParsePitchClass(t *testing.T) {
	assert := assert.New(t)
	for i, name := range []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"} {
		pc, err := ParsePitchClass(name)
		assert.NoError(err)
		assert.Equal(PitchClass(i), pc)
		assert.Equal(name, pc.String())
	}

	pc, err := ParsePitchClass("bb")
	assert.NoError(err)
	assert.Equal(ASharp, pc)

	_, err = ParsePitchClass("H")
	assert.True(errors.Is(err, ErrUnknownPitch))
}

func TestParseNoteName(t *testing.T) {
	cases := map[string]int{
		"C4":  60,
		"c4":  60,
		"F#3": 54,
		"Bb2": 46,
		"E2":  40,
		"C-1": 0,
		"Cb4": 59,
		"B#3": 60,
		"64":  64,
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			n, err := ParseNoteName(in)
			require.NoError(t, err)
			require.Equal(t, want, n.Midi)
		})
	}

	for _, bad := range []string{"", "C", "X4", "C#x"} {
		_, err := ParseNoteName(bad)
		assert.Error(t, err, bad)
	}
}

func TestNoteString(t *testing.T) {
	assert.Equal(t, "C#4", NoteFromMidi(61).String())
	assert.Equal(t, "E2", NoteFromMidi(40).String())
}

func TestClassesKeepsFirstAppearance(t *testing.T) {
	notes := []Note{NoteFromMidi(67), NoteFromMidi(60), NoteFromMidi(72), NoteFromMidi(64)}
	assert.Equal(t, []PitchClass{G, C, E}, Classes(notes))
}
