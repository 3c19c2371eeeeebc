package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jsphweid/chordlens/analyze"
	"github.com/jsphweid/chordlens/chord"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/midi"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/pitch"
	"github.com/jsphweid/chordlens/scale"
)

const maxFrets = 36

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleShapes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chord.Shapes())
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, constants.MaxUploadBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("could not decode request body: %w", err)
	}
	return nil
}

func parseScaleType(s string) (scale.Type, error) {
	if s == "" {
		s = constants.GetDefaultScale()
	}
	return scale.ParseType(s)
}

// HandleChord analyzes a set of held MIDI notes.
func HandleChord(w http.ResponseWriter, r *http.Request) {
	var input model.ChordRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, n := range input.Notes {
		if n < 0 || n > 127 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("note %d is out of MIDI range", n))
			return
		}
	}
	st, err := parseScaleType(input.ScaleType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analyze.Snapshot(analyze.NotesFromMidi(input.Notes), st))
}

var stepRangeMessage = fmt.Sprintf("step must be between %g and %g", analyze.MinStep, analyze.MaxStep)

func validStep(step float64) bool {
	return step >= analyze.MinStep && step <= analyze.MaxStep
}

// HandleAnalyze segments a list of note events into a chord timeline.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Step != 0 && !validStep(input.Step) {
		writeError(w, http.StatusBadRequest, stepRangeMessage)
		return
	}
	if len(input.Notes) > constants.MaxEvents {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d notes per request", constants.MaxEvents))
		return
	}
	for _, e := range input.Notes {
		if e.Duration < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("note %d has a negative duration", e.Midi))
			return
		}
	}
	opts := analyze.DefaultOptions()
	if input.Step > 0 {
		opts.Step = input.Step
	}
	writeJSON(w, http.StatusOK, model.AnalyzeResponse{Events: analyze.Analyze(input.Notes, opts)})
}

// HandleAnalyzeMidi takes a raw standard MIDI file as the body.
func HandleAnalyzeMidi(w http.ResponseWriter, r *http.Request) {
	opts := analyze.DefaultOptions()
	if raw := r.URL.Query().Get("step"); raw != "" {
		step, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validStep(step) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("bad step %q: %s", raw, stepRangeMessage))
			return
		}
		opts.Step = step
	}
	s, err := midi.ReadMidi(http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events := midi.NoteEvents(s)
	if len(events) > constants.MaxEvents {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d notes per file", constants.MaxEvents))
		return
	}
	writeJSON(w, http.StatusOK, model.AnalyzeResponse{Events: analyze.Analyze(events, opts)})
}

// HandleScale generates the scale named by the root and type query params.
func HandleScale(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	root, err := pitch.ParsePitchClass(q.Get("root"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	st, err := parseScaleType(q.Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s := scale.Generate(root, st)
	writeJSON(w, http.StatusOK, model.ScaleInfo{Root: s.Root, Type: string(s.Type), Notes: s.Notes})
}

// HandleFretboard returns the note grid of an instrument.
func HandleFretboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("tuning")
	if name == "" {
		name = "guitar"
	}
	tuning, err := fretboard.ParseTuning(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	frets := fretboard.DefaultFrets
	if raw := q.Get("frets"); raw != "" {
		frets, err = strconv.Atoi(raw)
		if err != nil || frets < 0 || frets > maxFrets {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("frets must be between 0 and %d", maxFrets))
			return
		}
	}
	writeJSON(w, http.StatusOK, model.FretboardResponse{
		Tuning: tuning,
		Frets:  frets,
		Grid:   fretboard.Generate(tuning, frets),
	})
}
