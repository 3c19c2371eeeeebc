package analyze

import (
	"math"
	"sort"

	"github.com/jsphweid/chordlens/chord"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/pitch"
)

// NoChord labels samples where nothing matched.
const NoChord = "N.C."

const (
	// DefaultStep is the sampling interval in seconds. Shorter steps catch
	// quick changes but also passing tones.
	DefaultStep = 0.25
	// DefaultMaxDuration bounds how far into a file we look, in seconds.
	DefaultMaxDuration = 600.0
	// DefaultMaxIterations is a hard cap on samples regardless of duration.
	DefaultMaxIterations = 10000

	// Steps outside [MinStep, MaxStep] are clamped.
	MinStep = 0.05
	MaxStep = 1.0
)

type Options struct {
	Step          float64
	MaxDuration   float64
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{
		Step:          DefaultStep,
		MaxDuration:   DefaultMaxDuration,
		MaxIterations: DefaultMaxIterations,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Step > 0 && !math.IsInf(o.Step, 0) {
		d.Step = math.Max(MinStep, math.Min(o.Step, MaxStep))
	}
	if o.MaxDuration > 0 {
		d.MaxDuration = o.MaxDuration
	}
	if o.MaxIterations > 0 {
		d.MaxIterations = o.MaxIterations
	}
	return d
}

// AnalyzeNotes segments a note timeline with the default options.
func AnalyzeNotes(events []model.NoteEvent) []model.ChordEvent {
	return Analyze(events, DefaultOptions())
}

// Analyze samples the timeline every opts.Step seconds, labels each sample
// with the detected chord and merges runs of the same label into one event.
// Spans with no chord are dropped from the result.
func Analyze(events []model.NoteEvent, opts Options) []model.ChordEvent {
	res := []model.ChordEvent{}
	if len(events) == 0 {
		return res
	}
	opts = opts.withDefaults()

	sorted := append([]model.NoteEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	duration := Duration(sorted, opts.MaxDuration)
	if duration <= 0 {
		return res
	}

	var open *model.ChordEvent
	for i := 0; i < opts.MaxIterations; i++ {
		t := float64(i) * opts.Step
		if t >= duration {
			break
		}

		label := Label(ActiveNotes(sorted, t))
		if open != nil && open.ChordName == label {
			open.EndTime = t + opts.Step
			continue
		}
		if open != nil {
			open.EndTime = t
			res = append(res, *open)
		}
		open = &model.ChordEvent{StartTime: t, EndTime: t + opts.Step, ChordName: label}
	}
	if open != nil {
		res = append(res, *open)
	}

	return dropNoChord(res)
}

// Duration is the latest note end, clamped to ceiling. Garbage such as NaN
// or a negative end yields 0.
func Duration(events []model.NoteEvent, ceiling float64) float64 {
	var end float64
	for _, e := range events {
		if e.End() > end {
			end = e.End()
		}
	}
	if math.IsNaN(end) || end <= 0 {
		return 0
	}
	return math.Min(end, ceiling)
}

// ActiveNotes returns the notes sounding at t, one per MIDI number.
// events must be sorted by start time.
func ActiveNotes(events []model.NoteEvent, t float64) []pitch.Note {
	seen := make(map[int]bool)
	var res []pitch.Note
	for _, e := range events {
		if e.Start > t {
			break
		}
		if !e.ActiveAt(t) || seen[e.Midi] {
			continue
		}
		seen[e.Midi] = true
		res = append(res, pitch.NoteFromMidi(e.Midi))
	}
	return res
}

// Label names the chord formed by notes, or NoChord.
func Label(notes []pitch.Note) string {
	res, ok := chord.Detect(notes)
	if !ok {
		return NoChord
	}
	return res.Name
}

func dropNoChord(events []model.ChordEvent) []model.ChordEvent {
	res := make([]model.ChordEvent, 0, len(events))
	for _, e := range events {
		if e.ChordName != NoChord {
			res = append(res, e)
		}
	}
	return res
}
