package chord

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordlens/pitch"
	"github.com/stretchr/testify/assert"
)

func notes(midis ...int) []pitch.Note {
	var res []pitch.Note
	for _, m := range midis {
		res = append(res, pitch.NoteFromMidi(m))
	}
	return res
}

func TestDetectsCMajor(t *testing.T) {
	res, ok := Detect(notes(60, 64, 67))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(Result{Root: pitch.C, Quality: Major, Name: "C Major"}, res)
}

func TestPrefersMoreSpecificShape(t *testing.T) {
	res, ok := Detect(notes(60, 64, 67, 71))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(Maj7, res.Quality)
	assert.Equal("C Maj7", res.Name)
}

func TestFewerThanThreeNotesIsNoChord(t *testing.T) {
	cases := [][]pitch.Note{
		nil,
		notes(60),
		notes(60, 64),
		notes(60, 64, 64, 60),
	}
	for _, c := range cases {
		_, ok := Detect(c)
		assert.False(t, ok)
	}
}

func TestNoMatchingShape(t *testing.T) {
	_, ok := Detect(notes(60, 62, 66))
	assert.False(t, ok)
}

func TestOctavesCollapseToPitchClasses(t *testing.T) {
	res, ok := Detect(notes(48, 64, 79, 72))
	assert.True(t, ok)
	assert.Equal(t, "C Major", res.Name)
}

func TestExtraNotesAreTolerated(t *testing.T) {
	// C E G plus F#: only the triad matches
	res, ok := Detect(notes(60, 64, 66, 67))
	assert.True(t, ok)
	assert.Equal(t, "C Major", res.Name)
}

func TestLowestNoteWinsTies(t *testing.T) {
	// C6 and Am7 share the same four pitch classes
	res, ok := Detect(notes(60, 64, 67, 69))
	assert.True(t, ok)
	assert.Equal(t, "C 6", res.Name)

	res, ok = Detect(notes(57, 60, 64, 67))
	assert.True(t, ok)
	assert.Equal(t, "A min7", res.Name)
}

func TestDetectIgnoresInputOrder(t *testing.T) {
	a, _ := Detect(notes(67, 64, 60, 69))
	b, _ := Detect(notes(60, 64, 67, 69))
	assert.Equal(t, a, b)
}

func TestDetectsEveryShapeFromItsRoot(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(string(shape.Quality), func(t *testing.T) {
			spelled := GetChordNotes(pitch.D, shape.Quality, 3)
			res, ok := Detect(spelled)
			assert.True(t, ok)
			assert.Equal(t, len(shape.Intervals), len(lookupOrFail(t, res.Quality).Intervals))
		})
	}
}

func lookupOrFail(t *testing.T, q Quality) Shape {
	s, ok := lookup(q)
	if !ok {
		t.Fatalf("no shape %q", q)
	}
	return s
}

func TestGetChordNotes(t *testing.T) {
	assert := assert.New(t)
	got := GetChordNotes(pitch.C, Maj7, 4)
	assert.Equal(notes(60, 64, 67, 71), got)

	got = GetChordNotes(pitch.A, Minor, 3)
	assert.Equal(notes(57, 60, 64), got)

	assert.Nil(GetChordNotes(pitch.C, Quality("13#11"), 4))
}

func TestParseQuality(t *testing.T) {
	q, err := ParseQuality("maj7")
	assert.NoError(t, err)
	assert.Equal(t, Maj7, q)

	q, err = ParseQuality("m6")
	assert.NoError(t, err)
	assert.Equal(t, MinSixth, q)

	_, err = ParseQuality("13#11")
	assert.True(t, errors.Is(err, ErrUnknownQuality))
}

func TestShapesIsACopy(t *testing.T) {
	s := Shapes()
	s[0].Intervals[0] = 99
	assert.Equal(t, 0, Shapes()[0].Intervals[0])
	assert.Len(t, s, 20)
}

func TestCreateChordKey(t *testing.T) {
	in := []int{67, 60, 64}
	assert.Equal(t, "60-64-67", CreateChordKey(in))
	assert.Equal(t, []int{67, 60, 64}, in)
	assert.Equal(t, "", CreateChordKey(nil))
}
