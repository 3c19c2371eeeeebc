package live

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

var ErrNoPort = errors.New("midi input port not found")

// Ports lists the names of the available MIDI inputs. A driver has to be
// registered by the caller.
func Ports() []string {
	var res []string
	for _, in := range midi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

// Listen feeds note messages from the given input port into s until stop
// is called.
func Listen(portIndex int, s *Session) (stop func(), err error) {
	in, err := midi.InPort(portIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: index %d: %v", ErrNoPort, portIndex, err)
	}
	logrus.WithField("port", in.String()).Info("listening for notes")

	return midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		HandleMessage(s, msg)
	}, midi.HandleError(func(err error) {
		logrus.WithError(err).Warn("midi listener error")
	}))
}

// HandleMessage applies one MIDI message to the session. Anything other
// than a note start or end is ignored.
func HandleMessage(s *Session, msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		s.NoteOn(int(key))
	case msg.GetNoteEnd(&ch, &key):
		s.NoteOff(int(key))
	}
}
