package cmd

import (
	"strings"

	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/fretboard"
	"github.com/jsphweid/chordlens/pitch"
	"github.com/jsphweid/chordlens/render"
	"github.com/jsphweid/chordlens/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [type]",
	Short: "Prints the notes of a scale",
	Long: `Prints the notes of a scale and where they fall on the piano. Quote
multi-word types, e.g. "minor pentatonic". With no type every known type is listed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pitch.ParsePitchClass(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			for _, t := range scale.Types() {
				show(cmd, scaleLine(scale.Generate(root, t)))
			}
			return nil
		}

		st, err := scale.ParseType(args[1])
		if err != nil {
			return err
		}
		s := scale.Generate(root, st)
		show(cmd, scaleLine(s))
		show(cmd, "")
		show(cmd, render.Piano(constants.PianoStart, constants.PianoEnd, fretboard.Highlight{Scale: &s}))
		return nil
	},
}

func scaleLine(s scale.Scale) string {
	names := make([]string, len(s.Notes))
	for i, pc := range s.Notes {
		names[i] = pc.String()
	}
	return render.BoldStyle.Render(s.Name()) + ": " + strings.Join(names, " ")
}
