package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jsphweid/chordlens/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Lists the chord shapes that can be detected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "QUALITY\tINTERVALS")
		for _, s := range chord.Shapes() {
			fmt.Fprintf(w, "%s\t%v\n", s.Quality, s.Intervals)
		}
		return w.Flush()
	},
}
