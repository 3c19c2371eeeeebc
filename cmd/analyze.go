package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jsphweid/chordlens/analyze"
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/db"
	"github.com/jsphweid/chordlens/midi"
	"github.com/jsphweid/chordlens/model"
	"github.com/jsphweid/chordlens/render"
	"github.com/jsphweid/chordlens/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	analyzeStep   float64
	analyzeJSON   bool
	analyzeMaxNum int
)

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeStep, "step", 0, "sampling step in seconds (default from ANALYSIS_STEP, else 0.25)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print JSON instead of a table")
	analyzeCmd.Flags().IntVar(&analyzeMaxNum, "max", 0, "analyze at most this many files (0 is no limit)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir>",
	Short: "Prints the chord timeline of MIDI files",
	Long: `Prints the chord timeline of a MIDI file, or of every .mid/.midi file
under a directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := AnalyzePath(args[0], analyzeOptions(), analyzeMaxNum)
		if err != nil {
			return err
		}
		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		for _, fa := range results {
			show(cmd, fileHeader(fa))
			show(cmd, render.Timeline(fa.Events))
			show(cmd, "")
		}
		return nil
	},
}

func analyzeOptions() analyze.Options {
	opts := analyze.DefaultOptions()
	opts.Step = constants.GetAnalysisStep()
	if analyzeStep > 0 {
		opts.Step = analyzeStep
	}
	opts.MaxDuration = constants.GetMaxDuration()
	return opts
}

// AnalyzePath analyzes one file or every MIDI file under a directory. In a
// directory, files that cannot be read are logged and skipped.
func AnalyzePath(path string, opts analyze.Options, maxNum int) ([]model.FileAnalysis, error) {
	paths, err := util.GatherAllMidiPaths(path, maxNum)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no MIDI files found at %s", path)
	}
	single := len(paths) == 1 && paths[0] == path

	metas := lookupMetadata(paths)
	results := make([]model.FileAnalysis, 0, len(paths))
	for _, p := range paths {
		events, err := midi.LoadNoteEvents(p)
		if err != nil {
			if single {
				return nil, err
			}
			entry := logrus.WithField("path", p)
			if errors.Is(err, midi.ErrNoNotes) {
				entry.Info("no notes, skipping")
			} else {
				entry.WithError(err).Warn("could not read, skipping")
			}
			continue
		}

		fa := model.FileAnalysis{
			Path:     p,
			Duration: analyze.Duration(events, opts.MaxDuration),
			Notes:    len(events),
			Events:   analyze.Analyze(events, opts),
		}
		if meta, ok := metas[filepath.Base(p)]; ok {
			fa.Metadata = &meta
		}
		results = append(results, fa)
	}
	return results, nil
}

// lookupMetadata is best effort: without a configured table, or when the
// lookup fails, files are simply shown without metadata. Records are keyed by
// file name, so names shared by several files in the tree are not looked up.
func lookupMetadata(paths []string) map[string]model.MidiMetadata {
	res := make(map[string]model.MidiMetadata)
	table := constants.GetMetadataTable()
	if table == "" {
		return res
	}
	store, err := db.NewMetadataStore(db.Config{
		Table:    table,
		Region:   constants.GetMetadataRegion(),
		Endpoint: constants.GetMetadataEndpoint(),
	})
	if err != nil {
		logrus.WithError(err).Warn("metadata lookup disabled")
		return res
	}

	names := uniqueBasenames(paths)
	for start := 0; start < len(names); start += db.MaxBatch {
		end := util.Min(start+db.MaxBatch, len(names))
		found, err := store.GetMidiMetadatas(names[start:end])
		if err != nil {
			logrus.WithError(err).Warn("metadata lookup failed")
		}
		for k, v := range found {
			res[k] = v
		}
	}
	return res
}

// uniqueBasenames returns the file names that occur exactly once in paths,
// in order.
func uniqueBasenames(paths []string) []string {
	counts := make(map[string]int, len(paths))
	for _, p := range paths {
		counts[filepath.Base(p)]++
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		switch counts[name] {
		case 1:
			names = append(names, name)
		case 0:
		default:
			logrus.WithField("name", name).WithField("files", counts[name]).
				Warn("file name is ambiguous, skipping metadata")
			counts[name] = 0
		}
	}
	return names
}

func fileHeader(fa model.FileAnalysis) string {
	title := fa.Path
	if m := fa.Metadata; m != nil && m.Title != "" {
		title = fmt.Sprintf("%s - %s (%s)", m.Artist, m.Title, filepath.Base(fa.Path))
	}
	return render.BoldStyle.Render(title) +
		render.SubtleStyle.Render(fmt.Sprintf("  %d notes, %.1fs", fa.Notes, fa.Duration))
}
