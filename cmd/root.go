package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chordlens",
	Short: "Chord and scale analysis for MIDI",
	Long: `chordlens names the chords in MIDI files, held notes and live input,
and shows where they sit on a piano or fretboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			logLevel = constants.GetLogLevel()
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("bad --log-level: %w", err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL, else info)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styled(os.Stderr, render.RenderError(err)))
		os.Exit(1)
	}
}

// styled keeps escape codes only when w is a terminal.
func styled(w io.Writer, s string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return s
	}
	return render.Plain(s)
}

func show(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), styled(cmd.OutOrStdout(), s))
}
