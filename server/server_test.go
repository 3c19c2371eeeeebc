package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/chordlens/chord"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func do(t *testing.T, method, target string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)
	return w.Result()
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthHasRequestID(t *testing.T) {
	resp := do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc")
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Result().Header.Get(requestIDHeader))
}

func TestCorsPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/chord", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestShapes(t *testing.T) {
	var shapes []chord.Shape
	decode(t, do(t, http.MethodGet, "/shapes", nil), &shapes)
	assert.Equal(t, chord.Shapes(), shapes)
}

func TestChord(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		notes []int
		name  string
		key   string
	}{
		{[]int{60, 64, 67}, "C Major", "C"},
		{[]int{57, 60, 64, 67}, "A min7", "C"},
		{[]int{60, 64, 67, 69}, "C 6", "C"},
		{[]int{67, 71, 74, 77}, "G Dom7", "C"},
	}
	for _, c := range cases {
		var snap model.Snapshot
		resp := do(t, http.MethodPost, "/chord", jsonBody(t, model.ChordRequestBody{Notes: c.notes}))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &snap)
		require.NotNil(t, snap.Chord)
		assert.Equal(c.name, snap.Chord.Name)
		require.NotNil(t, snap.ParentKey)
		assert.Equal(c.key, snap.ParentKey.String())
		assert.Len(snap.Notes, len(c.notes))
	}
}

func TestChordNoChordStillSuggestsScale(t *testing.T) {
	var snap model.Snapshot
	body := jsonBody(t, model.ChordRequestBody{Notes: []int{62, 64}, ScaleType: "dorian"})
	decode(t, do(t, http.MethodPost, "/chord", body), &snap)
	assert.Nil(t, snap.Chord)
	require.NotNil(t, snap.Scale)
	assert.Equal(t, pitch.D, snap.Scale.Root)
	assert.Equal(t, "Dorian", snap.Scale.Type)
}

func TestChordBadInput(t *testing.T) {
	cases := map[string]io.Reader{
		"out of range":  jsonBody(t, model.ChordRequestBody{Notes: []int{60, 200}}),
		"unknown scale": jsonBody(t, model.ChordRequestBody{Notes: []int{60}, ScaleType: "bebop"}),
		"not json":      strings.NewReader("{"),
		"unknown field": strings.NewReader(`{"chords": [[60]]}`),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := do(t, http.MethodPost, "/chord", body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var e model.ErrorResponse
			decode(t, resp, &e)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestAnalyze(t *testing.T) {
	body := jsonBody(t, model.AnalyzeRequestBody{Notes: []model.NoteEvent{
		{Midi: 60, Start: 0, Duration: 1},
		{Midi: 64, Start: 0, Duration: 1},
		{Midi: 67, Start: 0, Duration: 1},
		{Midi: 65, Start: 1, Duration: 1},
		{Midi: 69, Start: 1, Duration: 1},
		{Midi: 72, Start: 1, Duration: 1},
	}})
	var res model.AnalyzeResponse
	resp := do(t, http.MethodPost, "/analyze", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &res)

	assert.Equal(t, []model.ChordEvent{
		{StartTime: 0, EndTime: 1, ChordName: "C Major"},
		{StartTime: 1, EndTime: 2, ChordName: "F Major"},
	}, res.Events)
}

func TestAnalyzeEmptyIsEmptyList(t *testing.T) {
	resp := do(t, http.MethodPost, "/analyze", strings.NewReader(`{"notes": []}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"events": []}`, string(data))
}

func TestAnalyzeRejectsStepOutOfRange(t *testing.T) {
	for _, step := range []string{"-1", "0.001", "30"} {
		resp := do(t, http.MethodPost, "/analyze", strings.NewReader(`{"notes": [], "step": `+step+`}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, step)
	}
	resp := do(t, http.MethodPost, "/analyze/midi?step=0.0001", strings.NewReader(""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["detail"], "step must be between")
}

func TestAnalyzeCapsNoteCount(t *testing.T) {
	notes := make([]model.NoteEvent, constants.MaxEvents+1)
	for i := range notes {
		notes[i] = model.NoteEvent{Midi: 60, Start: float64(i), Duration: 1}
	}
	resp := do(t, http.MethodPost, "/analyze", jsonBody(t, model.AnalyzeRequestBody{Notes: notes}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestAnalyzeMidi(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for _, n := range []uint8{57, 60, 64} {
		tr.Add(0, midi.NoteOn(0, n, 100))
	}
	tr.Add(192, midi.NoteOff(0, 57))
	tr.Add(0, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(96)
	require.NoError(t, s.Add(tr))
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	var res model.AnalyzeResponse
	resp := do(t, http.MethodPost, "/analyze/midi?step=0.5", &buf)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &res)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "A Minor", res.Events[0].ChordName)
	assert.InDelta(t, 1.0, res.Events[0].EndTime, 1e-6)

	resp = do(t, http.MethodPost, "/analyze/midi", strings.NewReader("nope"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScale(t *testing.T) {
	var info model.ScaleInfo
	resp := do(t, http.MethodGet, "/scale?root=Eb&type=minor+pentatonic", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &info)
	assert.Equal(t, pitch.DSharp, info.Root)
	assert.Equal(t, []pitch.PitchClass{pitch.DSharp, pitch.FSharp, pitch.GSharp, pitch.ASharp, pitch.CSharp}, info.Notes)

	resp = do(t, http.MethodGet, "/scale?root=H&type=major", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFretboard(t *testing.T) {
	var fb model.FretboardResponse
	resp := do(t, http.MethodGet, "/fretboard?tuning=bass4&frets=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &fb)
	assert.Equal(t, []int{28, 33, 38, 43}, fb.Tuning)
	require.Len(t, fb.Grid, 4)
	require.Len(t, fb.Grid[0], 6)
	assert.Equal(t, 33, fb.Grid[0][5].Note.Midi)

	for _, q := range []string{"frets=-1", "frets=abc", "tuning=banjo"} {
		resp := do(t, http.MethodGet, "/fretboard?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestNotFound(t *testing.T) {
	resp := do(t, http.MethodGet, "/search", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
