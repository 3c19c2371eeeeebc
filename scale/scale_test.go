package scale

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordlens/pitch"
	"github.com/stretchr/testify/assert"
)

func TestGenerateLengths(t *testing.T) {
	for _, root := range pitch.All() {
		for _, typ := range Diatonic {
			assert.Len(t, Generate(root, typ).Notes, 7, "%v %v", root, typ)
		}
		for _, typ := range Pentatonic {
			assert.Len(t, Generate(root, typ).Notes, 5, "%v %v", root, typ)
		}
	}
}

func TestGenerateKeepsTemplateOrder(t *testing.T) {
	s := Generate(pitch.A, Minor)

	assert := assert.New(t)
	assert.Equal(pitch.A, s.Root)
	assert.Equal(Minor, s.Type)
	assert.Equal([]pitch.PitchClass{pitch.A, pitch.B, pitch.C, pitch.D, pitch.E, pitch.F, pitch.G}, s.Notes)
	assert.Equal("A Minor", s.Name())
}

func TestGenerateTemplates(t *testing.T) {
	cases := map[Type][]pitch.PitchClass{
		Major:           {pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B},
		HarmonicMinor:   {pitch.C, pitch.D, pitch.DSharp, pitch.F, pitch.G, pitch.GSharp, pitch.B},
		Lydian:          {pitch.C, pitch.D, pitch.E, pitch.FSharp, pitch.G, pitch.A, pitch.B},
		Locrian:         {pitch.C, pitch.CSharp, pitch.DSharp, pitch.F, pitch.FSharp, pitch.GSharp, pitch.ASharp},
		MinorPentatonic: {pitch.C, pitch.DSharp, pitch.F, pitch.G, pitch.ASharp},
	}
	for typ, want := range cases {
		t.Run(string(typ), func(t *testing.T) {
			assert.Equal(t, want, Generate(pitch.C, typ).Notes)
		})
	}
}

func TestIonianAndAeolianAliases(t *testing.T) {
	assert.Equal(t, Generate(pitch.G, Major).Notes, Generate(pitch.G, Ionian).Notes)
	assert.Equal(t, Generate(pitch.G, Minor).Notes, Generate(pitch.G, Aeolian).Notes)
}

func TestGenerateUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Generate(pitch.C, Type("Bebop")) })
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("harmonic minor")
	assert.NoError(t, err)
	assert.Equal(t, HarmonicMinor, typ)

	_, err = ParseType("Bebop")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestContains(t *testing.T) {
	s := Generate(pitch.C, MajorPentatonic)
	assert.True(t, s.Contains(pitch.A))
	assert.False(t, s.Contains(pitch.F))
}

func TestCompatibleTypes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]Type{Major, Lydian, Mixolydian, MajorPentatonic}, CompatibleTypes("Maj7"))
	assert.Contains(CompatibleTypes("min7"), Dorian)
	assert.Equal([]Type{Locrian, HarmonicMinor}, CompatibleTypes("m7b5"))
	assert.Equal(Types(), CompatibleTypes("Sus4"))
}
