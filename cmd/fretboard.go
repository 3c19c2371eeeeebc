package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/render"
	"github.com/spf13/cobra"
)

var (
	fretTuning string
	fretCount  int
	fretNotes  string
	fretJSON   bool
)

func init() {
	fretboardCmd.Flags().StringVar(&fretTuning, "tuning", "guitar",
		"preset ("+strings.Join(fretboard.PresetNames(), ", ")+") or comma separated open strings, lowest first")
	fretboardCmd.Flags().IntVar(&fretCount, "frets", 15, "number of frets")
	fretboardCmd.Flags().StringVar(&fretNotes, "notes", "", "comma separated notes to mark, e.g. C4,E4,G4")
	fretboardCmd.Flags().BoolVar(&fretJSON, "json", false, "print the note grid as JSON")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Draws a fretboard, optionally marking notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := fretboard.ParseTuning(fretTuning)
		if err != nil {
			return err
		}
		if fretCount < 0 {
			return fmt.Errorf("--frets must not be negative, got %d", fretCount)
		}
		board := fretboard.Generate(tuning, fretCount)
		if fretJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(board)
		}

		var h fretboard.Highlight
		if fretNotes != "" {
			notes, err := parseNotes(strings.Split(fretNotes, ","))
			if err != nil {
				return err
			}
			h = notesHighlight(notes)
		}
		show(cmd, render.Fretboard(board, h))
		return nil
	},
}
