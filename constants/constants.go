package constants

import (
	"os"
	"strconv"

	"github.com/jsphweid/chordlens/analyze"
	"github.com/jsphweid/chordlens/scale"
)

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// GetAnalysisStep is the segmenter sampling step in seconds.
func GetAnalysisStep() float64 {
	return getFloat("ANALYSIS_STEP", analyze.DefaultStep)
}

func GetMaxDuration() float64 {
	return getFloat("MAX_DURATION", analyze.DefaultMaxDuration)
}

func GetDefaultScale() string {
	return getEnv("DEFAULT_SCALE", string(scale.Major))
}

// Metadata lookups are off unless a table is named.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataRegion() string {
	return getEnv("METADATA_REGION", "us-east-1")
}

// Lowest and highest keys drawn on the piano.
const (
	PianoStart = 40
	PianoEnd   = 88
)

// LiveDebounce is how long the held-note set must stay still before it is
// re-analyzed, in milliseconds.
const LiveDebounce = 30

// MaxUploadBytes caps MIDI uploads to the HTTP API.
const MaxUploadBytes = 8 * 1024 * 1024

// MaxEvents caps the note events one analyze request may carry.
const MaxEvents = 20000
