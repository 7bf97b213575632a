package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator/internal/analysis"
	"github.com/SeamusWaldron/gocube_animator/internal/journal"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

var (
	historyLimit int
	historyStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List journaled runs, or the moves of one run",
	Long: `Without arguments, list the most recent journaled runs.
With a run ID (or a unique prefix of one), list that run's moves.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of runs to list")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Summarize the run instead of listing its moves")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	runs := journal.NewRunRepository(db)

	if len(args) == 0 {
		list, err := runs.List(historyLimit)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(out, "No runs recorded. Use --journal to record one.")
			return nil
		}
		fmt.Fprintf(out, "%-8s  %-19s  %-6s  %5s  %s\n", "RUN", "STARTED", "MODE", "MOVES", "SOLVED")
		for _, r := range list {
			solved := "-"
			if r.Solved != nil {
				solved = fmt.Sprintf("%v", *r.Solved)
			}
			fmt.Fprintf(out, "%-8s  %-19s  %-6s  %5d  %s\n",
				r.RunID[:8], r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.SourceMode, r.MoveCount, solved)
		}
		return nil
	}

	runID, err := resolveRunID(runs, args[0])
	if err != nil {
		return err
	}
	recs, err := journal.NewMoveRepository(db).ListByRun(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Run %s: %d moves\n", runID, len(recs))
	if historyStats {
		printStats(out, recs)
		return nil
	}
	for _, rec := range recs {
		fmt.Fprintf(out, "%5d  %8.2fs  %-3s  %s\n",
			rec.Index+1, float64(rec.TsMs)/1000, rec.Notation, notation.Describe(rec.Move))
	}
	return nil
}

// resolveRunID expands a unique run ID prefix among recent runs.
func resolveRunID(runs *journal.RunRepository, prefix string) (string, error) {
	if r, err := runs.Get(prefix); err != nil {
		return "", err
	} else if r != nil {
		return r.RunID, nil
	}

	list, err := runs.List(1000)
	if err != nil {
		return "", err
	}
	var match string
	for _, r := range list {
		if strings.HasPrefix(r.RunID, prefix) {
			if match != "" {
				return "", fmt.Errorf("run ID prefix %q is ambiguous", prefix)
			}
			match = r.RunID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no run matching %q", prefix)
	}
	return match, nil
}

func printStats(out io.Writer, recs []journal.MoveRecord) {
	s := analysis.Summarize(recs)
	fmt.Fprintf(out, "Quarter turns:   %d\n", s.QuarterTurns)
	fmt.Fprintf(out, "Duration:        %.1fs (%.2f moves/s)\n", float64(s.DurationMs)/1000, s.MovesPerSecond)
	fmt.Fprintf(out, "Gap between moves: avg %.0fms, longest %dms\n", s.AvgGapMs, s.LongestGapMs)
	fmt.Fprintf(out, "Repeated faces:  %d\n", s.RepeatedFaces)

	fmt.Fprint(out, "Faces:          ")
	for _, f := range types.Faces {
		fmt.Fprintf(out, " %s=%d", f, s.FaceCounts[f])
	}
	fmt.Fprintln(out)

	moves := make([]types.Move, len(recs))
	for i, rec := range recs {
		moves[i] = rec.Move
	}
	report := analysis.MineNGrams(moves, 2, 4, 3)
	for n := 2; n <= 4; n++ {
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(out, "Repeated %d-gram: %-14s x%d\n", n, strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
}
