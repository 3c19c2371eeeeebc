package model

import "github.com/jsphweid/chordlens/pitch"

// NoteEvent is one sounding note from a file, recording or transcription.
type NoteEvent struct {
	Midi     int     `json:"midi"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

func (e NoteEvent) End() float64 {
	return e.Start + e.Duration
}

// ActiveAt reports whether the note sounds at t. The end is exclusive.
func (e NoteEvent) ActiveAt(t float64) bool {
	return e.Start <= t && t < e.End()
}

// ChordEvent is a maximal span with a constant chord label.
type ChordEvent struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	ChordName string  `json:"chord_name"`
}

func (e ChordEvent) Duration() float64 {
	return e.EndTime - e.StartTime
}

// Snapshot is the analysis of whatever is held down right now.
type Snapshot struct {
	Notes     []pitch.Note      `json:"notes"`
	Chord     *ChordInfo        `json:"chord,omitempty"`
	ParentKey *pitch.PitchClass `json:"parent_key,omitempty"`
	Scale     *ScaleInfo        `json:"scale,omitempty"`
}

type ChordInfo struct {
	Root    pitch.PitchClass `json:"root"`
	Quality string           `json:"quality"`
	Name    string           `json:"name"`
}

type ScaleInfo struct {
	Root       pitch.PitchClass   `json:"root"`
	Type       string             `json:"type"`
	Notes      []pitch.PitchClass `json:"notes"`
	Compatible []string           `json:"compatible,omitempty"`
}

type MidiMetadata struct {
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
	Year    uint   `json:"year,omitempty"`
}

// FileAnalysis is the chord timeline of one MIDI file.
type FileAnalysis struct {
	Path     string        `json:"path"`
	Duration float64       `json:"duration"`
	Notes    int           `json:"notes"`
	Events   []ChordEvent  `json:"events"`
	Metadata *MidiMetadata `json:"metadata,omitempty"`
}
