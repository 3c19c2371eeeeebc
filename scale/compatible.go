package scale

var (
	majorFamily    = []Type{Major, Lydian, Mixolydian, MajorPentatonic}
	minorFamily    = []Type{Minor, Dorian, Phrygian, Aeolian, HarmonicMinor, MelodicMinor, MinorPentatonic}
	dominantFamily = []Type{Mixolydian, Major, MajorPentatonic}
	dimFamily      = []Type{Locrian, HarmonicMinor}
)

// CompatibleTypes suggests scale types that fit a chord quality. Qualities
// with no clear home return every type.
func CompatibleTypes(quality string) []Type {
	var res []Type
	switch quality {
	case "Major", "Maj7", "Maj9", "6", "add9":
		res = majorFamily
	case "Minor", "min7", "m6", "min9", "m(add9)":
		res = minorFamily
	case "Dom7", "9":
		res = dominantFamily
	case "m7b5", "Dim":
		res = dimFamily
	default:
		res = Types()
	}
	return append([]Type(nil), res...)
}
