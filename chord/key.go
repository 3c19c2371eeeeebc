package chord

import "github.com/jsphweid/chordlens/pitch"

// Offsets to the assumed major key, by the degree each quality is taken to
// sit on: I for major colours, vi for minor, V for dominant, vii for
// diminished. Anything unlisted is treated as the tonic.
var parentOffsets = map[Quality]int{
	Major: 0, Maj7: 0, Maj9: 0, Sixth: 0, Add9: 0,
	Minor: 3, Min7: 3, MinSixth: 3, Min9: 3, MinAdd9: 3,
	Dom7: 5, Dom9: 5, Dom7Flat9: 5, Dom7Sharp9: 5,
	Dim: 1, Dim7: 1,
	HalfDim7: 1,
	Aug:      0, Sus2: 0, Sus4: 0,
}

// EstimateParentKey guesses the major key a chord belongs to from its
// quality alone.
func EstimateParentKey(r Result) pitch.PitchClass {
	return pitch.Transpose(r.Root, parentOffsets[r.Quality])
}
