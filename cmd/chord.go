package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/chordlens/analyze"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/pitch"
	"github.com/jsphweid/chordlens/render"
	"github.com/jsphweid/chordlens/scale"
	"github.com/spf13/cobra"
)

var (
	chordScale string
	chordJSON  bool
)

func init() {
	chordCmd.Flags().StringVar(&chordScale, "scale", "", "scale type to suggest (default from DEFAULT_SCALE, else Major)")
	chordCmd.Flags().BoolVar(&chordJSON, "json", false, "print JSON")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <note>...",
	Short: "Names the chord formed by some notes",
	Long: `Names the chord formed by some notes, given as names (C4 E4 G4) or MIDI
numbers (60 64 67), along with its likely key and a scale to play over it.`,
	Example: "  chordlens chord C4 E4 G4 B4\n  chordlens chord 57 60 64 --scale dorian",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		st, err := scaleTypeOrDefault(chordScale)
		if err != nil {
			return err
		}

		snap := analyze.Snapshot(notes, st)
		if chordJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(snap)
		}
		show(cmd, render.Snapshot(snap))
		show(cmd, "")
		show(cmd, render.Piano(constants.PianoStart, constants.PianoEnd, render.HighlightFor(snap)))
		return nil
	},
}

func parseNotes(args []string) ([]pitch.Note, error) {
	seen := make(map[int]bool)
	var res []pitch.Note
	for _, a := range args {
		n, err := pitch.ParseNoteName(a)
		if err != nil {
			return nil, err
		}
		if n.Midi < 0 || n.Midi > 127 {
			return nil, fmt.Errorf("%s is out of MIDI range", a)
		}
		if !seen[n.Midi] {
			seen[n.Midi] = true
			res = append(res, n)
		}
	}
	return res, nil
}

func scaleTypeOrDefault(s string) (scale.Type, error) {
	if s == "" {
		s = constants.GetDefaultScale()
	}
	return scale.ParseType(s)
}

// notesHighlight is used by commands that only have bare notes.
func notesHighlight(notes []pitch.Note) fretboard.Highlight {
	return render.HighlightFor(analyze.Snapshot(notes, scale.Major))
}
