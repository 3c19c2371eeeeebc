package model

import "github.com/jsphweid/chordlens/fretboard"

type ChordRequestBody struct {
	Notes     []int  `json:"notes"`
	ScaleType string `json:"scale_type"`
}

type AnalyzeRequestBody struct {
	Notes []NoteEvent `json:"notes"`
	Step  float64     `json:"step"`
}

type AnalyzeResponse struct {
	Events []ChordEvent `json:"events"`
}

type FretboardResponse struct {
	Tuning []int                  `json:"tuning"`
	Frets  int                    `json:"frets"`
	Grid   [][]fretboard.Position `json:"grid"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
