package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordlens/model"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoNotes = errors.New("no notes found")

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

// ReadMidi parses a standard MIDI file. gomidi can panic on malformed
// input, so panics come back as errors.
// https://github.com/gomidi/midi/issues/20
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

type noteKey struct {
	track   int
	channel uint8
	key     uint8
}

// NoteEvents flattens every track into notes with absolute start times and
// durations in seconds, ordered by start then pitch. A note-on with velocity
// 0 counts as a note-off. Notes still held when their track ends are closed
// at the track's last event.
func NoteEvents(s *smf.SMF) []model.NoteEvent {
	var res []model.NoteEvent

	for trackNum, events := range s.Tracks {
		pressed := make(map[noteKey]int64)
		var absTicks int64
		var absTime int64

		release := func(k noteKey, at int64) {
			start := pressed[k]
			delete(pressed, k)
			res = append(res, model.NoteEvent{
				Midi:     int(k.key),
				Start:    micros(start),
				Duration: micros(at - start),
			})
		}

		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime = s.TimeAt(absTicks)

			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				k := noteKey{trackNum, channel, key}
				if _, ok := pressed[k]; ok {
					logrus.WithFields(logrus.Fields{"track": trackNum, "channel": channel, "key": key}).
						Warn("note pressed twice, ignoring")
					continue
				}
				pressed[k] = absTime
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				k := noteKey{trackNum, channel, key}
				if _, ok := pressed[k]; !ok {
					logrus.WithFields(logrus.Fields{"track": trackNum, "channel": channel, "key": key}).
						Debug("note released without being pressed")
					continue
				}
				release(k, absTime)
			}
		}

		for k := range pressed {
			logrus.WithFields(logrus.Fields{"track": trackNum, "channel": k.channel, "key": k.key}).
				Warn("note never released, closing at end of track")
			release(k, absTime)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Start != res[j].Start {
			return res[i].Start < res[j].Start
		}
		return res[i].Midi < res[j].Midi
	})
	return res
}

// LoadNoteEvents reads a MIDI file and flattens it into note events.
func LoadNoteEvents(path string) ([]model.NoteEvent, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	events := NoteEvents(s)
	if len(events) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoNotes)
	}
	return events, nil
}

func micros(us int64) float64 {
	return float64(us) / 1e6
}
