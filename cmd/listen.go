package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/live"
	"github.com/jsphweid/chordlens/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenPort     int
	listenScale    string
	listenKeyboard bool
	listenList     bool
	listenLogFile  string
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port-index", 0, "MIDI input port to listen on")
	listenCmd.Flags().StringVar(&listenScale, "scale", "", "scale type to suggest (default from DEFAULT_SCALE, else Major)")
	listenCmd.Flags().BoolVar(&listenKeyboard, "keyboard", false, "play with the computer keyboard instead of a MIDI device")
	listenCmd.Flags().BoolVar(&listenList, "list", false, "list MIDI input ports and exit")
	listenCmd.Flags().StringVar(&listenLogFile, "log-file", "", "append logs to this file while the live view runs (default discards them)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Shows the chord being played live",
	Long: `Shows the chord being played on a MIDI input, with its key, a scale to play
over it and where the notes sit on a piano and fretboard.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()

		if listenList {
			for i, name := range live.Ports() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, name)
			}
			return nil
		}

		st, err := scaleTypeOrDefault(listenScale)
		if err != nil {
			return err
		}

		updates := make(chan model.Snapshot, 16)
		session := live.NewSession(st, constants.LiveDebounce*time.Millisecond, live.Publish(updates))

		if !listenKeyboard {
			stop, err := live.Listen(listenPort, session)
			if err != nil {
				return fmt.Errorf("%w (try --list or --keyboard)", err)
			}
			defer stop()
		}

		// the alt screen owns the terminal, keep logs out of it
		out, closeLog, err := liveLogOutput(listenLogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		prev := logrus.StandardLogger().Out
		logrus.SetOutput(out)
		defer logrus.SetOutput(prev)

		p := tea.NewProgram(live.NewModel(session, updates, listenKeyboard), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// liveLogOutput is where logs go while the live view owns the terminal.
func liveLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	return f, f.Close, nil
}
