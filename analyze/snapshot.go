package analyze

import (
	"sort"

	"github.com/jsphweid/chordlens/chord"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/pitch"
	"github.com/jsphweid/chordlens/scale"
)

// Snapshot analyzes a set of held notes: the chord they form, the major key
// that chord most likely belongs to, and a scale of type st rooted on the
// chord root (or on the lowest note when there is no chord).
func Snapshot(notes []pitch.Note, st scale.Type) model.Snapshot {
	sorted := append([]pitch.Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Midi < sorted[j].Midi
	})
	snap := model.Snapshot{Notes: sorted}
	if len(sorted) == 0 {
		snap.Notes = []pitch.Note{}
		return snap
	}

	root := sorted[0].Class
	var compatible []string
	if res, ok := chord.Detect(sorted); ok {
		root = res.Root
		key := chord.EstimateParentKey(res)
		snap.Chord = &model.ChordInfo{Root: res.Root, Quality: string(res.Quality), Name: res.Name}
		snap.ParentKey = &key
		for _, t := range scale.CompatibleTypes(string(res.Quality)) {
			compatible = append(compatible, string(t))
		}
	}

	s := scale.Generate(root, st)
	snap.Scale = &model.ScaleInfo{
		Root:       s.Root,
		Type:       string(s.Type),
		Notes:      s.Notes,
		Compatible: compatible,
	}
	return snap
}

// NotesFromMidi converts raw MIDI numbers, dropping duplicates.
func NotesFromMidi(midis []int) []pitch.Note {
	seen := make(map[int]bool, len(midis))
	var res []pitch.Note
	for _, m := range midis {
		if seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, pitch.NoteFromMidi(m))
	}
	return res
}
