package chord

import (
	"testing"

	"github.com/jsphweid/chordlens/pitch"
	"github.com/stretchr/testify/assert"
)

func TestEstimateParentKey(t *testing.T) {
	cases := []struct {
		root    pitch.PitchClass
		quality Quality
		want    pitch.PitchClass
	}{
		{pitch.A, Minor, pitch.C},
		{pitch.B, Dim, pitch.C},
		{pitch.G, Dom7, pitch.C},
		{pitch.C, Maj7, pitch.C},
		{pitch.D, Min7, pitch.F},
		{pitch.B, HalfDim7, pitch.C},
		{pitch.B, Dim7, pitch.C},
		{pitch.E, Dom7Sharp9, pitch.A},
		{pitch.F, Sus4, pitch.F},
		{pitch.D, Quality("unlisted"), pitch.D},
	}

	for _, c := range cases {
		t.Run(string(c.quality), func(t *testing.T) {
			got := EstimateParentKey(NewResult(c.root, c.quality))
			assert.Equal(t, c.want, got)
		})
	}
}
