package live

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordlens/analyze"
	"github.com/jsphweid/chordlens/chord"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/scale"
	"github.com/jsphweid/chordlens/util"
	"github.com/sirupsen/logrus"
)

// Session tracks the notes currently held on an input and re-analyzes them
// when they settle. It is safe for use from the MIDI listener goroutine and
// the UI at the same time.
type Session struct {
	mu        sync.Mutex
	held      map[int]bool
	scaleType scale.Type
	lastKey   string
	published bool
	current   model.Snapshot

	debounced func(func())
	onChange  func(model.Snapshot)
}

// NewSession creates a session that calls onChange with a fresh snapshot
// whenever the set of held notes changes. A zero delay analyzes on every
// event instead of waiting for the input to settle.
func NewSession(st scale.Type, delay time.Duration, onChange func(model.Snapshot)) *Session {
	s := &Session{
		held:      make(map[int]bool),
		scaleType: st,
		current:   analyze.Snapshot(nil, st),
		onChange:  onChange,
	}
	if delay > 0 {
		s.debounced = debounce.New(delay)
	}
	return s
}

func (s *Session) NoteOn(key int) {
	s.mu.Lock()
	s.held[key] = true
	s.mu.Unlock()
	s.schedule()
}

// NoteOff ignores keys that are not held.
func (s *Session) NoteOff(key int) {
	s.mu.Lock()
	_, ok := s.held[key]
	delete(s.held, key)
	s.mu.Unlock()
	if ok {
		s.schedule()
	}
}

// Toggle flips a key and reports whether it is now held. Used by the
// computer keyboard, which has no key release events.
func (s *Session) Toggle(key int) bool {
	s.mu.Lock()
	on := !s.held[key]
	if on {
		s.held[key] = true
	} else {
		delete(s.held, key)
	}
	s.mu.Unlock()
	s.schedule()
	return on
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.held = make(map[int]bool)
	s.mu.Unlock()
	s.schedule()
}

// SetScaleType changes the scale suggested with each snapshot and forces a
// new one out.
func (s *Session) SetScaleType(st scale.Type) {
	s.mu.Lock()
	s.scaleType = st
	s.published = false
	s.mu.Unlock()
	s.schedule()
}

func (s *Session) ScaleType() scale.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scaleType
}

// Held returns the held MIDI numbers in ascending order.
func (s *Session) Held() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return util.GetKeys(s.held)
}

// Snapshot returns the last published analysis.
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) schedule() {
	if s.debounced == nil {
		s.Flush()
		return
	}
	s.debounced(s.Flush)
}

// Flush analyzes the held notes right away. Nothing is published when the
// chord key has not changed since the last snapshot.
func (s *Session) Flush() {
	s.mu.Lock()
	keys := util.GetKeys(s.held)
	chordKey := chord.CreateChordKey(keys)
	if s.published && chordKey == s.lastKey {
		s.mu.Unlock()
		return
	}
	s.lastKey = chordKey
	s.published = true
	snap := analyze.Snapshot(analyze.NotesFromMidi(keys), s.scaleType)
	s.current = snap
	onChange := s.onChange
	s.mu.Unlock()

	name := ""
	if snap.Chord != nil {
		name = snap.Chord.Name
	}
	logrus.WithFields(logrus.Fields{"notes": chordKey, "chord": name}).Debug("held notes changed")
	if onChange != nil {
		onChange(snap)
	}
}
